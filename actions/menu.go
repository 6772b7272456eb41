package actions

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Nevmen9Iemm/BOT/filters"
	"github.com/Nevmen9Iemm/BOT/logger"
	"github.com/Nevmen9Iemm/BOT/menu"
)

// Menu обробляє натискання навігаційних кнопок: розбирає токен дії,
// просить резолвер зібрати екран і перемальовує повідомлення на місці.
type Menu struct {
	Name     string
	Client   tgbotapi.BotAPI
	Resolver *menu.Resolver
	Store    menu.Store
}

func NewMenuHandler(client tgbotapi.BotAPI, resolver *menu.Resolver, store menu.Store) *Menu {
	return &Menu{
		Name:     "menu",
		Client:   client,
		Resolver: resolver,
		Store:    store,
	}
}

func (m Menu) Run(update tgbotapi.Update) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	callback := update.CallbackQuery

	action, err := menu.ActionFromParams(filters.ParseCallbackData(callback.Data))
	if err != nil {
		logger.GetLogger().Warning("Bad menu callback %q: %v", callback.Data, err)
		_, err = m.Client.Request(tgbotapi.CallbackConfig{
			CallbackQueryID: callback.ID,
			Text:            "Такої сторінки не існує.",
		})
		return err
	}

	if action.MenuName == menu.AddToCartName {
		return m.addToCart(ctx, callback, action)
	}

	payload, keyboard, err := m.Resolver.Resolve(ctx, menu.Request{
		Level:     action.Level,
		MenuName:  action.MenuName,
		Category:  action.Category,
		Page:      action.Page,
		ProductID: action.ProductID,
		UserID:    callback.From.ID,
	})
	if err != nil {
		logger.GetLogger().Error("Resolve menu callback %q: %v", callback.Data, err)
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

	if err := m.render(callback, payload, keyboard); err != nil {
		return err
	}

	_, err = m.Client.Request(tgbotapi.CallbackConfig{CallbackQueryID: callback.ID})
	return err
}

// addToCart перехоплюється до диспетчеризації за рівнем: реєструє
// користувача, додає товар і відповідає тостом без перемальовування.
func (m Menu) addToCart(ctx context.Context, callback *tgbotapi.CallbackQuery, action menu.Action) error {
	from := callback.From
	if err := m.Store.AddUser(ctx, from.ID, from.FirstName, from.LastName, ""); err != nil {
		return err
	}

	if _, err := m.Store.AddToCart(ctx, from.ID, action.ProductID); err != nil {
		logger.GetLogger().Error("Add product %d to cart: %v", action.ProductID, err)
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

	_, err := m.Client.Request(tgbotapi.CallbackConfig{
		CallbackQueryID: callback.ID,
		Text:            "Продукт додано в кошик.",
	})
	return err
}

// render перемальовує повідомлення меню на місці: для фото - медіа та
// підпис, для тексту - тіло повідомлення. Перехід між фото і текстом
// вимагає видалити старе повідомлення і надіслати нове.
func (m Menu) render(callback *tgbotapi.CallbackQuery, payload menu.Payload, keyboard menu.KeyboardSpec) error {
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID
	markup := keyboardMarkup(keyboard)
	messageIsPhoto := callback.Message.Caption != "" || len(callback.Message.Photo) > 0

	if payload.Image == "" {
		if !messageIsPhoto {
			edit := tgbotapi.NewEditMessageText(chatID, messageID, payloadText(payload))
			edit.ParseMode = "HTML"
			edit.ReplyMarkup = &markup
			_, err := m.Client.Send(edit)
			return err
		}

		m.Client.Send(tgbotapi.NewDeleteMessage(chatID, messageID))
		message := tgbotapi.NewMessage(chatID, payloadText(payload))
		message.ParseMode = "HTML"
		message.ReplyMarkup = markup
		_, err := m.Client.Send(message)
		return err
	}

	if messageIsPhoto {
		editMedia := tgbotapi.EditMessageMediaConfig{
			BaseEdit: tgbotapi.BaseEdit{
				ChatID:    chatID,
				MessageID: messageID,
			},
			Media: tgbotapi.NewInputMediaPhoto(tgbotapi.FileID(payload.Image)),
		}
		if _, err := m.Client.Send(editMedia); err != nil {
			return err
		}

		editCaption := tgbotapi.NewEditMessageCaption(chatID, messageID, payload.Caption)
		editCaption.ParseMode = "HTML"
		editCaption.ReplyMarkup = &markup
		_, err := m.Client.Send(editCaption)
		return err
	}

	m.Client.Send(tgbotapi.NewDeleteMessage(chatID, messageID))
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(payload.Image))
	photo.Caption = payload.Caption
	photo.ParseMode = "HTML"
	photo.ReplyMarkup = markup
	_, err := m.Client.Send(photo)
	return err
}

func (m Menu) GetName() string {
	return m.Name
}
