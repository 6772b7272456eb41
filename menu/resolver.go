package menu

import (
	"context"
	"fmt"

	"github.com/Nevmen9Iemm/BOT/database/models"
)

// Store - поверхня сховища, з якою працює резолвер. Реалізується
// database.Store; тести підставляють свою реалізацію в пам'яті.
type Store interface {
	GetBanner(ctx context.Context, name string) (*models.Banner, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetProducts(ctx context.Context, categoryID int) ([]models.Product, error)
	GetUserCart(ctx context.Context, userID int64) ([]models.CartLine, error)
	AddToCart(ctx context.Context, userID int64, productID int) (*models.CartLine, error)
	RemoveFromCart(ctx context.Context, userID int64, productID int) error
	DecrementCart(ctx context.Context, userID int64, productID int) (bool, error)
	Checkout(ctx context.Context, userID int64) (*models.Order, error)
	GetUserOrders(ctx context.Context, userID int64) ([]models.Order, error)
	AddUser(ctx context.Context, userID int64, firstName, lastName, phone string) error
}

// Request - параметри одного запиту на рендер екрана меню.
type Request struct {
	Level     Level
	MenuName  string
	Category  int
	Page      int
	ProductID int
	UserID    int64
}

// Resolver перетворює (рівень, параметри) на (Payload, KeyboardSpec),
// попередньо виконуючи мутації кошика, якщо їх вимагає ім'я меню.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) Resolve(ctx context.Context, req Request) (Payload, KeyboardSpec, error) {
	switch req.Level {
	case LevelMain:
		return r.mainMenu(ctx, req.MenuName)
	case LevelCatalog:
		return r.catalog(ctx, req.MenuName)
	case LevelProducts:
		return r.products(ctx, req.Category, req.Page)
	case LevelCart:
		return r.cart(ctx, req)
	case LevelOrders:
		return r.orders(ctx, req.UserID)
	default:
		return Payload{Text: "Такої сторінки не існує."}, KeyboardSpec{}, nil
	}
}

func (r *Resolver) mainMenu(ctx context.Context, menuName string) (Payload, KeyboardSpec, error) {
	banner, err := r.store.GetBanner(ctx, menuName)
	if err != nil {
		return Payload{}, KeyboardSpec{}, err
	}
	if banner == nil {
		return Payload{Text: "Інформація недоступна."}, KeyboardSpec{}, nil
	}

	payload := Payload{Image: banner.Image, Caption: banner.Description}
	return payload, mainButtons(), nil
}

func (r *Resolver) catalog(ctx context.Context, menuName string) (Payload, KeyboardSpec, error) {
	banner, err := r.store.GetBanner(ctx, menuName)
	if err != nil {
		return Payload{}, KeyboardSpec{}, err
	}
	if banner == nil {
		return Payload{Text: "Інформація недоступна."}, KeyboardSpec{}, nil
	}

	categories, err := r.store.GetCategories(ctx)
	if err != nil {
		return Payload{}, KeyboardSpec{}, err
	}

	payload := Payload{Image: banner.Image, Caption: banner.Description}
	return payload, catalogButtons(categories), nil
}

func (r *Resolver) products(ctx context.Context, category, page int) (Payload, KeyboardSpec, error) {
	products, err := r.store.GetProducts(ctx, category)
	if err != nil {
		return Payload{}, KeyboardSpec{}, err
	}

	if len(products) == 0 {
		payload := Payload{Text: "У цій категорії поки що немає товарів."}
		spec := KeyboardSpec{Rows: [][]Button{
			{{Label: "Назад", Action: Action{Level: LevelCatalog, MenuName: "catalog"}}},
		}}
		return payload, spec, nil
	}

	p := NewPaginator(len(products), page, 1)
	lo, _ := p.Bounds()
	product := products[lo]

	payload := Payload{
		Image: product.Image,
		Caption: fmt.Sprintf(
			"<strong>%s</strong>\n%s\nВартість: %s\n<strong>Продукт %d з %d</strong>",
			product.Name, product.Description, formatPrice(product.Price), p.Page(), p.Pages(),
		),
	}
	return payload, productButtons(p, category, product.ID), nil
}

// cart спершу застосовує мутацію, обрану ім'ям меню, і лише потім
// рендерить (можливо щойно змінений) кошик. Відкат сторінки на одну
// назад компенсує зсув кількості сторінок після видалення рядка.
func (r *Resolver) cart(ctx context.Context, req Request) (Payload, KeyboardSpec, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	switch req.MenuName {
	case "delete":
		if err := r.store.RemoveFromCart(ctx, req.UserID, req.ProductID); err != nil {
			return Payload{}, KeyboardSpec{}, err
		}
		if page > 1 {
			page--
		}
	case "decrement":
		survived, err := r.store.DecrementCart(ctx, req.UserID, req.ProductID)
		if err != nil {
			return Payload{}, KeyboardSpec{}, err
		}
		if !survived && page > 1 {
			page--
		}
	case "increment":
		if _, err := r.store.AddToCart(ctx, req.UserID, req.ProductID); err != nil {
			return Payload{}, KeyboardSpec{}, err
		}
	}

	lines, err := r.store.GetUserCart(ctx, req.UserID)
	if err != nil {
		return Payload{}, KeyboardSpec{}, err
	}

	if len(lines) == 0 {
		banner, err := r.store.GetBanner(ctx, "cart")
		if err != nil {
			return Payload{}, KeyboardSpec{}, err
		}
		if banner == nil {
			return Payload{Text: "Інформація недоступна."}, KeyboardSpec{}, nil
		}
		payload := Payload{
			Image:   banner.Image,
			Caption: fmt.Sprintf("<strong>%s</strong>", banner.Description),
		}
		return payload, emptyCartButtons(), nil
	}

	p := NewPaginator(len(lines), page, 1)
	lo, _ := p.Bounds()
	line := lines[lo]

	var totalPrice float64
	for i := range lines {
		totalPrice += lines[i].LineTotal()
	}

	payload := Payload{
		Image: line.Product.Image,
		Caption: fmt.Sprintf(
			"<strong>%s</strong>\n%s$ x %d = %s$\nПродукт %d з %d в кошику.\nЗагальна вартість товарів у кошику %s$",
			line.Product.Name, formatPrice(line.Product.Price), line.Quantity,
			formatPrice(line.LineTotal()), p.Page(), p.Pages(), formatPrice(totalPrice),
		),
	}
	return payload, cartButtons(p, line.ProductID), nil
}

func (r *Resolver) orders(ctx context.Context, userID int64) (Payload, KeyboardSpec, error) {
	orders, err := r.store.GetUserOrders(ctx, userID)
	if err != nil {
		return Payload{}, KeyboardSpec{}, err
	}

	if len(orders) == 0 {
		banner, err := r.store.GetBanner(ctx, "order")
		if err != nil {
			return Payload{}, KeyboardSpec{}, err
		}
		if banner == nil {
			return Payload{Text: "У вас немає замовлень."}, ordersButtons(), nil
		}
		payload := Payload{
			Image:   banner.Image,
			Caption: fmt.Sprintf("<strong>%s</strong>", banner.Description),
		}
		return payload, ordersButtons(), nil
	}

	text := "Ваші замовлення:\n\n"
	for i := range orders {
		text += fmt.Sprintf(
			"Замовлення №%d - %s$ (%s)\n",
			orders[i].ID, formatPrice(orders[i].TotalPrice), orders[i].CreatedAt.Format("2006-01-02"),
		)
	}

	return Payload{Text: text}, ordersButtons(), nil
}
