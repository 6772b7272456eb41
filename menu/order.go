package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Nevmen9Iemm/BOT/database/models"
)

// ErrEmptyCart - оформлення замовлення з порожнім кошиком.
// Для користувача це повідомлення, а не збій.
var ErrEmptyCart = errors.New("cart is empty")

// OrderSummary - сформоване замовлення разом із готовим текстом
// підсумку для користувача.
type OrderSummary struct {
	Order *models.Order
	Text  string
}

// PlaceOrder - окрема точка входу поза диспетчеризацією за рівнями:
// атомарно переносить кошик у замовлення і будує підсумок.
func (r *Resolver) PlaceOrder(ctx context.Context, userID int64) (*OrderSummary, error) {
	order, err := r.store.Checkout(ctx, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrEmptyCart
	}

	items := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		name := fmt.Sprintf("товар №%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, fmt.Sprintf(
			"%s (%d шт.) - %s$",
			name, item.Quantity, formatPrice(float64(item.Quantity)*item.Price),
		))
	}

	text := fmt.Sprintf(
		"Ваше замовлення №%d сформовано:\n\n%s\n\n<strong>Загальна сума:</strong> %s$\nДата створення: %s\n\nЗ вами зв'яжеться наш менеджер для уточнення деталей.",
		order.ID,
		strings.Join(items, "\n"),
		formatPrice(order.TotalPrice),
		order.CreatedAt.Format("2006-01-02 15:04:05"),
	)

	return &OrderSummary{Order: order, Text: text}, nil
}
