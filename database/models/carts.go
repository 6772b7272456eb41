package models

// CartLine - кількість одного товару в кошику користувача до оформлення
// замовлення. Пара (user_id, product_id) унікальна; рядок з кількістю 0
// ніколи не зберігається - він видаляється.
type CartLine struct {
	ID int `json:"id"`

	UserID    int64 `pg:",unique:user_product" json:"user_id"`
	ProductID int   `pg:",unique:user_product" json:"product_id"`
	Quantity  int   `pg:",default:1" json:"quantity"`

	User    *User    `pg:"rel:has-one,fk:user_id" json:"-"`
	Product *Product `pg:"rel:has-one,fk:product_id" json:"-"`
}

// LineTotal - вартість рядка кошика (кількість x поточна ціна товару).
func (c *CartLine) LineTotal() float64 {
	if c.Product == nil {
		return 0
	}
	return float64(c.Quantity) * c.Product.Price
}
