package actions

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Nevmen9Iemm/BOT/menu"
)

// keyboardMarkup перетворює KeyboardSpec резолвера на inline-клавіатуру
// Telegram. Кожна кнопка несе закодований токен дії.
func keyboardMarkup(spec menu.KeyboardSpec) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(spec.Rows))
	for _, specRow := range spec.Rows {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(specRow))
		for _, button := range specRow {
			data := button.Data()
			row = append(row, tgbotapi.InlineKeyboardButton{
				Text:         button.Label,
				CallbackData: &data,
			})
		}
		rows = append(rows, row)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// payloadText - текст повідомлення незалежно від того, чи це
// фото з підписом, чи простий текст.
func payloadText(payload menu.Payload) string {
	if payload.Image != "" {
		return payload.Caption
	}
	if payload.Text != "" {
		return payload.Text
	}
	return payload.Caption
}
