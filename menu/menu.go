package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level - екран меню, який зараз рендериться.
type Level int

const (
	LevelMain Level = iota
	LevelCatalog
	LevelProducts
	LevelCart
	LevelOrders
)

// CallbackPrefix - префікс callback data усіх навігаційних кнопок меню.
const CallbackPrefix = "menu"

// PlaceOrderCallback - окрема команда оформлення замовлення. Це інший
// намір користувача, тому вона не кодується як навігаційний Action.
const PlaceOrderCallback = "order"

// AddToCartName - ім'я меню, яке адаптер перехоплює до диспетчеризації
// за рівнем: додати товар у кошик і відповісти тостом.
const AddToCartName = "add_to_cart"

var ErrBadAction = errors.New("malformed menu callback")

// Action - закритий структурований токен кнопки: куди веде натискання.
// Кодується в callback data формату "menu?level=2&name=catalog&cat=1&page=3".
type Action struct {
	Level     Level
	MenuName  string
	Category  int
	Page      int
	ProductID int
}

func (a Action) Encode() string {
	var b strings.Builder
	b.WriteString(CallbackPrefix)
	b.WriteString("?level=")
	b.WriteString(strconv.Itoa(int(a.Level)))
	b.WriteString("&name=")
	b.WriteString(a.MenuName)
	if a.Category != 0 {
		b.WriteString("&cat=")
		b.WriteString(strconv.Itoa(a.Category))
	}
	if a.Page != 0 {
		b.WriteString("&page=")
		b.WriteString(strconv.Itoa(a.Page))
	}
	if a.ProductID != 0 {
		b.WriteString("&prod=")
		b.WriteString(strconv.Itoa(a.ProductID))
	}
	return b.String()
}

// ActionFromParams збирає Action з розібраних параметрів callback data.
// Відсутній або нечисловий level - ErrBadAction, решта параметрів
// необов'язкова.
func ActionFromParams(params map[string]string) (Action, error) {
	levelStr, ok := params["level"]
	if !ok {
		return Action{}, ErrBadAction
	}
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return Action{}, fmt.Errorf("%w: level %q", ErrBadAction, levelStr)
	}

	action := Action{Level: Level(level), MenuName: params["name"]}

	for key, dst := range map[string]*int{
		"cat":  &action.Category,
		"page": &action.Page,
		"prod": &action.ProductID,
	} {
		value, ok := params[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %s %q", ErrBadAction, key, value)
		}
		*dst = n
	}

	return action, nil
}

// Payload - те, що адаптер показує користувачу: фото з підписом
// або простий текст, коли Image порожній.
type Payload struct {
	Image   string
	Caption string
	Text    string
}

// Button - одна кнопка клавіатури. Або навігаційний Action,
// або окрема команда (Command непорожній).
type Button struct {
	Label   string
	Action  Action
	Command string
}

func (b Button) Data() string {
	if b.Command != "" {
		return b.Command
	}
	return b.Action.Encode()
}

// KeyboardSpec - упорядковані ряди кнопок під повідомленням.
type KeyboardSpec struct {
	Rows [][]Button
}
