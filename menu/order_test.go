package menu

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Nevmen9Iemm/BOT/database/models"
)

func TestAddToCartQuantityEqualsCallCount(t *testing.T) {
	store := newMemStore()
	store.addProduct(models.Product{ID: 1, Name: "Сік", Price: 25, CategoryID: 1})
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		line, err := store.AddToCart(ctx, 10, 1)
		if err != nil {
			t.Fatalf("AddToCart #%d: %v", i, err)
		}
		if line.Quantity != i {
			t.Errorf("after %d calls quantity = %d, want %d", i, line.Quantity, i)
		}
	}
}

func TestDecrementCart(t *testing.T) {
	store := newMemStore()
	store.addProduct(models.Product{ID: 1, Name: "Сік", Price: 25, CategoryID: 1})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := store.AddToCart(ctx, 10, 1); err != nil {
			t.Fatal(err)
		}
	}

	survived, err := store.DecrementCart(ctx, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !survived {
		t.Error("decrement from 2 must keep the line")
	}

	survived, err = store.DecrementCart(ctx, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if survived {
		t.Error("decrement from 1 must remove the line")
	}

	lines, err := store.GetUserCart(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Errorf("cart has %d lines, want empty (no zero-quantity rows)", len(lines))
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	store := newMemStore()
	r := NewResolver(store)

	_, err := r.PlaceOrder(context.Background(), 10)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}

	orders, err := store.GetUserOrders(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 0 {
		t.Errorf("empty-cart checkout must leave the store unchanged, got %d orders", len(orders))
	}
}

func TestPlaceOrderSummary(t *testing.T) {
	store := newMemStore()
	store.addProduct(models.Product{ID: 1, Name: "Сік", Price: 25, CategoryID: 1})
	store.addProduct(models.Product{ID: 2, Name: "Вода", Price: 15, CategoryID: 1})
	r := NewResolver(store)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := store.AddToCart(ctx, 10, 1); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.AddToCart(ctx, 10, 2); err != nil {
		t.Fatal(err)
	}

	summary, err := r.PlaceOrder(ctx, 10)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if summary.Order.TotalPrice != 65 {
		t.Errorf("TotalPrice = %v, want 65", summary.Order.TotalPrice)
	}
	if len(summary.Order.Items) != 2 {
		t.Fatalf("order has %d items, want 2", len(summary.Order.Items))
	}
	for _, fragment := range []string{"Замовлення №1", "Сік (2 шт.) - 50.00$", "Вода (1 шт.) - 15.00$", "Загальна сума:</strong> 65.00$"} {
		if !strings.Contains(summary.Text, fragment) {
			t.Errorf("summary %q must contain %q", summary.Text, fragment)
		}
	}

	lines, err := store.GetUserCart(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Errorf("cart has %d lines after checkout, want empty", len(lines))
	}
}

func TestOrderItemPriceIsSnapshot(t *testing.T) {
	store := newMemStore()
	store.addProduct(models.Product{ID: 1, Name: "Сік", Price: 25, CategoryID: 1})
	r := NewResolver(store)
	ctx := context.Background()

	if _, err := store.AddToCart(ctx, 10, 1); err != nil {
		t.Fatal(err)
	}
	summary, err := r.PlaceOrder(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}

	// ціна товару змінюється після оформлення
	store.products[1].Price = 99

	orders, err := store.GetUserOrders(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if orders[0].Items[0].Price != 25 {
		t.Errorf("item price = %v, want snapshot 25", orders[0].Items[0].Price)
	}
	if summary.Order.TotalPrice != 25 {
		t.Errorf("total = %v, want 25", summary.Order.TotalPrice)
	}
}

func TestPlaceOrderNewestFirst(t *testing.T) {
	store := newMemStore()
	store.addProduct(models.Product{ID: 1, Name: "Сік", Price: 25, CategoryID: 1})
	r := NewResolver(store)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := store.AddToCart(ctx, 10, 1); err != nil {
			t.Fatal(err)
		}
		if _, err := r.PlaceOrder(ctx, 10); err != nil {
			t.Fatal(err)
		}
	}

	orders, err := store.GetUserOrders(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 || orders[0].ID != 2 {
		t.Errorf("orders = %+v, want newest first", orders)
	}
}
