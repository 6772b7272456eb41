package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/Nevmen9Iemm/BOT/logger"
)

// Filter вирішує, чи обробляти апдейт конкретним хендлером.
type Filter func(update tgbotapi.Update, client tgbotapi.BotAPI) bool

// Callback - дія, яку виконує хендлер, що пройшов фільтри.
type Callback interface {
	Run(update tgbotapi.Update) error
	GetName() string
}

type Handler interface {
	checkType(update tgbotapi.Update) bool
	checkFilters(update tgbotapi.Update, client tgbotapi.BotAPI) bool
	run(update tgbotapi.Update, client tgbotapi.BotAPI) (bool, error)
	getId() uuid.UUID
	GetName() string
}

type BaseHandler struct {
	uuid      uuid.UUID
	queryType string
	callback  Callback
	filters   []Filter
}

func (h BaseHandler) GetName() string {
	return h.callback.GetName()
}

func (h BaseHandler) getId() uuid.UUID {
	return h.uuid
}

func (h BaseHandler) checkType(update tgbotapi.Update) bool {
	switch h.queryType {
	case messageType:
		return update.Message != nil
	case callbackQueryType:
		return update.CallbackQuery != nil
	case commandType:
		return update.Message != nil && update.Message.IsCommand()
	default:
		logger.GetLogger().Warning("Unsupported query type: %s", h.queryType)
		return false
	}
}

func (h BaseHandler) checkFilters(update tgbotapi.Update, client tgbotapi.BotAPI) bool {
	for _, f := range h.filters {
		if !f(update, client) {
			return false
		}
	}

	return true
}

func (h BaseHandler) run(update tgbotapi.Update, client tgbotapi.BotAPI) (bool, error) {
	if h.checkType(update) && h.checkFilters(update, client) {
		return true, h.callback.Run(update)
	}

	return false, nil
}

// ActiveHandlers - таблиця хендлерів. Заповнюється один раз на старті
// процесу і після цього не змінюється.
type ActiveHandlers struct {
	Handlers []Handler
}

type HandleResult struct {
	UUID    uuid.UUID
	Name    string
	IsActed bool
	Error   error
}

func (hl ActiveHandlers) HandleAll(update tgbotapi.Update, client tgbotapi.BotAPI) []HandleResult {
	result := make([]HandleResult, 0, len(hl.Handlers))

	for _, h := range hl.Handlers {
		runResult, err := h.run(update, client)

		result = append(result, HandleResult{
			UUID:    h.getId(),
			Name:    h.GetName(),
			IsActed: runResult,
			Error:   err,
		})
	}

	return result
}

type handlerProducer struct {
	handlerType string
}

func (p handlerProducer) Product(callback Callback, filters []Filter) BaseHandler {
	return BaseHandler{
		uuid:      uuid.New(),
		queryType: p.handlerType,
		callback:  callback,
		filters:   filters,
	}
}

const messageType = "message"
const commandType = "command"
const callbackQueryType = "callbackQuery"

var MessageHandler = handlerProducer{messageType}
var CommandHandler = handlerProducer{commandType}
var CallbackQueryHandler = handlerProducer{callbackQueryType}
