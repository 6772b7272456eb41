package menu

import (
	"fmt"

	"github.com/Nevmen9Iemm/BOT/database/models"
)

func mainButtons() KeyboardSpec {
	return KeyboardSpec{Rows: [][]Button{
		{
			{Label: "Товари 🛍", Action: Action{Level: LevelCatalog, MenuName: "catalog"}},
			{Label: "Кошик 🛒", Action: Action{Level: LevelCart, MenuName: "cart"}},
		},
		{
			{Label: "Мої замовлення 📦", Action: Action{Level: LevelOrders, MenuName: "orders"}},
		},
		{
			{Label: "Про нас ℹ️", Action: Action{Level: LevelMain, MenuName: "about"}},
			{Label: "Оплата 💰", Action: Action{Level: LevelMain, MenuName: "payment"}},
			{Label: "Доставка ⛵️", Action: Action{Level: LevelMain, MenuName: "shipping"}},
		},
	}}
}

func catalogButtons(categories []models.Category) KeyboardSpec {
	spec := KeyboardSpec{}
	for _, category := range categories {
		spec.Rows = append(spec.Rows, []Button{{
			Label:  category.Name,
			Action: Action{Level: LevelProducts, MenuName: category.Name, Category: category.ID, Page: 1},
		}})
	}
	spec.Rows = append(spec.Rows, []Button{
		{Label: "Назад", Action: Action{Level: LevelMain, MenuName: "main"}},
		{Label: "Кошик 🛒", Action: Action{Level: LevelCart, MenuName: "cart"}},
	})
	return spec
}

func productButtons(p Paginator, category, productID int) KeyboardSpec {
	spec := KeyboardSpec{Rows: [][]Button{
		{
			{Label: "Назад", Action: Action{Level: LevelCatalog, MenuName: "catalog"}},
			{Label: "Кошик 🛒", Action: Action{Level: LevelCart, MenuName: "cart"}},
			{Label: "Купити 💵", Action: Action{Level: LevelProducts, MenuName: AddToCartName, Category: category, Page: p.Page(), ProductID: productID}},
		},
	}}

	pagination := []Button{}
	if p.HasPrevious() {
		pagination = append(pagination, Button{
			Label:  "◀ Попер.",
			Action: Action{Level: LevelProducts, MenuName: "previous", Category: category, Page: p.Page() - 1},
		})
	}
	if p.HasNext() {
		pagination = append(pagination, Button{
			Label:  "Слід. ▶",
			Action: Action{Level: LevelProducts, MenuName: "next", Category: category, Page: p.Page() + 1},
		})
	}
	if len(pagination) > 0 {
		spec.Rows = append(spec.Rows, pagination)
	}

	return spec
}

func emptyCartButtons() KeyboardSpec {
	return KeyboardSpec{Rows: [][]Button{
		{{Label: "На головну 🏠", Action: Action{Level: LevelMain, MenuName: "main"}}},
	}}
}

func cartButtons(p Paginator, productID int) KeyboardSpec {
	page := p.Page()
	spec := KeyboardSpec{Rows: [][]Button{
		{
			{Label: "Видалити", Action: Action{Level: LevelCart, MenuName: "delete", Page: page, ProductID: productID}},
			{Label: "-1", Action: Action{Level: LevelCart, MenuName: "decrement", Page: page, ProductID: productID}},
			{Label: "+1", Action: Action{Level: LevelCart, MenuName: "increment", Page: page, ProductID: productID}},
		},
	}}

	pagination := []Button{}
	if p.HasPrevious() {
		pagination = append(pagination, Button{
			Label:  "◀ Попер.",
			Action: Action{Level: LevelCart, MenuName: "previous", Page: page - 1},
		})
	}
	if p.HasNext() {
		pagination = append(pagination, Button{
			Label:  "Слід. ▶",
			Action: Action{Level: LevelCart, MenuName: "next", Page: page + 1},
		})
	}
	if len(pagination) > 0 {
		spec.Rows = append(spec.Rows, pagination)
	}

	spec.Rows = append(spec.Rows, []Button{
		{Label: "На головну 🏠", Action: Action{Level: LevelMain, MenuName: "main"}},
		{Label: "Замовити ✅", Command: PlaceOrderCallback},
	})

	return spec
}

func ordersButtons() KeyboardSpec {
	return KeyboardSpec{Rows: [][]Button{
		{{Label: "На головну 🏠", Action: Action{Level: LevelMain, MenuName: "main"}}},
	}}
}

func formatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
