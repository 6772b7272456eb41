package actions

import (
	"context"
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Nevmen9Iemm/BOT/logger"
	"github.com/Nevmen9Iemm/BOT/menu"
)

// MakeOrder оформлює замовлення з поточного кошика користувача.
type MakeOrder struct {
	Name     string
	Client   tgbotapi.BotAPI
	Resolver *menu.Resolver
}

func NewMakeOrderHandler(client tgbotapi.BotAPI, resolver *menu.Resolver) *MakeOrder {
	return &MakeOrder{
		Name:     "make-order",
		Client:   client,
		Resolver: resolver,
	}
}

func (m MakeOrder) Run(update tgbotapi.Update) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	callback := update.CallbackQuery

	summary, err := m.Resolver.PlaceOrder(ctx, callback.From.ID)
	if errors.Is(err, menu.ErrEmptyCart) {
		_, err = m.Client.Request(tgbotapi.CallbackConfig{
			CallbackQueryID: callback.ID,
			Text:            "Ваш кошик порожній!",
			ShowAlert:       true,
		})
		return err
	}
	if err != nil {
		logger.GetLogger().Error("Place order for user %d: %v", callback.From.ID, err)
		_, answerErr := m.Client.Request(tgbotapi.CallbackConfig{
			CallbackQueryID: callback.ID,
			Text:            "Сталася помилка. Спробуйте ще раз пізніше.",
			ShowAlert:       true,
		})
		if answerErr != nil {
			return answerErr
		}
		return err
	}

	message := tgbotapi.NewMessage(callback.Message.Chat.ID, summary.Text)
	message.ParseMode = "HTML"
	if _, err := m.Client.Send(message); err != nil {
		return err
	}

	_, err = m.Client.Request(tgbotapi.CallbackConfig{
		CallbackQueryID: callback.ID,
		Text:            "Замовлення сформовано!",
		ShowAlert:       true,
	})
	return err
}

func (m MakeOrder) GetName() string {
	return m.Name
}
