package models

import "time"

// Order створюється атомарно з усіх рядків кошика користувача
// в момент оформлення.
type Order struct {
	tableName struct{} `pg:"orders,alias:ord"`

	ID int `json:"id"`

	UserID     int64     `json:"user_id"`
	TotalPrice float64   `pg:",use_zero" json:"total_price"`
	CreatedAt  time.Time `pg:",default:now()" json:"created_at"`

	Items []*OrderItem `pg:"rel:has-many,join_fk:order_id" json:"items"`
}

// OrderItem - позиція замовлення. Price - знімок ціни товару на момент
// оформлення, подальші зміни Product.Price його не зачіпають.
type OrderItem struct {
	ID int `json:"id"`

	OrderID   int     `json:"order_id"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `pg:",use_zero" json:"price"`

	Product *Product `pg:"rel:has-one,fk:product_id" json:"-"`
}
