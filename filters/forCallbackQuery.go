package filters

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Nevmen9Iemm/BOT/menu"
)

var MenuFilter = func(update tgbotapi.Update, _ tgbotapi.BotAPI) bool {
	return strings.HasPrefix(update.CallbackQuery.Data, menu.CallbackPrefix+"?")
}

var PlaceOrderFilter = func(update tgbotapi.Update, _ tgbotapi.BotAPI) bool {
	return update.CallbackQuery.Data == menu.PlaceOrderCallback
}
