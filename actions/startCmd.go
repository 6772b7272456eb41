package actions

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Nevmen9Iemm/BOT/menu"
)

// Start обробляє команду /start: реєструє користувача і показує
// головне меню.
type Start struct {
	Name     string
	Client   tgbotapi.BotAPI
	Resolver *menu.Resolver
	Store    menu.Store
}

func NewStartHandler(client tgbotapi.BotAPI, resolver *menu.Resolver, store menu.Store) *Start {
	return &Start{
		Name:     "start-cmd",
		Client:   client,
		Resolver: resolver,
		Store:    store,
	}
}

func (s Start) Run(update tgbotapi.Update) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	from := update.Message.From
	if err := s.Store.AddUser(ctx, from.ID, from.FirstName, from.LastName, ""); err != nil {
		return err
	}

	payload, keyboard, err := s.Resolver.Resolve(ctx, menu.Request{
		Level:    menu.LevelMain,
		MenuName: "main",
		UserID:   from.ID,
	})
	if err != nil {
		return err
	}

	markup := keyboardMarkup(keyboard)

	if payload.Image == "" {
		message := tgbotapi.NewMessage(update.Message.Chat.ID, payloadText(payload))
		message.ParseMode = "HTML"
		message.ReplyMarkup = markup
		_, err = s.Client.Send(message)
		return err
	}

	photo := tgbotapi.NewPhoto(update.Message.Chat.ID, tgbotapi.FileID(payload.Image))
	photo.Caption = payload.Caption
	photo.ParseMode = "HTML"
	photo.ReplyMarkup = markup
	_, err = s.Client.Send(photo)
	return err
}

func (s Start) GetName() string {
	return s.Name
}
