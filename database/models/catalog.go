package models

// Category - категорія товарів. Заповнюється один раз при старті,
// бот її тільки читає.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	Products []*Product `pg:"rel:has-many,join_fk:category_id" json:"-"`
}

// Product - товар каталогу. Змінюється тільки адміністратором.
type Product struct {
	ID int `json:"id"`

	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `pg:",use_zero" json:"price"`
	Image       string  `pg:",default:null" json:"image"`
	CategoryID  int     `json:"category_id"`

	Category *Category `pg:"rel:has-one,fk:category_id" json:"-"`
}
