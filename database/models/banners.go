package models

// Імена банерів прив'язані до пунктів меню. Набір закритий:
// main, about, cart, shipping, payment, catalog, order, orders, default.
type Banner struct {
	ID int `json:"id"`

	Name        string `pg:",unique" json:"name"`
	Image       string `pg:",default:null" json:"image"`
	Description string `json:"description"`
}
