package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/Nevmen9Iemm/BOT/database/models"
)

// Store - типізований доступ до таблиць магазину. Кожен метод - одна
// логічна транзакція; помилки сховища повертаються як є, нагору.
type Store struct {
	db *pg.DB
}

func NewStore(db *pg.DB) *Store {
	return &Store{db: db}
}

// GetBanner повертає банер за іменем сторінки. Відсутній банер - це
// очікуваний результат (nil, nil), а не помилка.
func (s *Store) GetBanner(ctx context.Context, name string) (*models.Banner, error) {
	banner := new(models.Banner)
	err := s.db.ModelContext(ctx, banner).Where("name = ?", name).Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get banner %q: %w", name, err)
	}
	return banner, nil
}

func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.ModelContext(ctx, &categories).Order("id ASC").Select()
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return categories, nil
}

// GetProducts повертає товари категорії в стабільному порядку,
// щоб пагінація не пропускала і не дублювала позиції.
func (s *Store) GetProducts(ctx context.Context, categoryID int) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.ModelContext(ctx, &products).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Select()
	if err != nil {
		return nil, fmt.Errorf("get products of category %d: %w", categoryID, err)
	}
	return products, nil
}

func (s *Store) GetUserCart(ctx context.Context, userID int64) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	err := s.db.ModelContext(ctx, &lines).
		Where("cart_line.user_id = ?", userID).
		Relation("Product").
		Order("cart_line.id ASC").
		Select()
	if err != nil {
		return nil, fmt.Errorf("get cart of user %d: %w", userID, err)
	}
	return lines, nil
}

// AddToCart - upsert: збільшує кількість, якщо пара вже є,
// інакше створює рядок з кількістю 1.
func (s *Store) AddToCart(ctx context.Context, userID int64, productID int) (*models.CartLine, error) {
	line := &models.CartLine{UserID: userID, ProductID: productID, Quantity: 1}

	err := s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		err := tx.ModelContext(ctx, line).
			Where("user_id = ?", userID).
			Where("product_id = ?", productID).
			For("UPDATE").
			Select()
		switch err {
		case nil:
			line.Quantity++
			_, err = tx.ModelContext(ctx, line).WherePK().Column("quantity").Update()
			return err
		case pg.ErrNoRows:
			line.Quantity = 1
			_, err = tx.ModelContext(ctx, line).Insert()
			return err
		default:
			return err
		}
	})
	if err != nil {
		return nil, fmt.Errorf("add product %d to cart of user %d: %w", productID, userID, err)
	}
	return line, nil
}

func (s *Store) RemoveFromCart(ctx context.Context, userID int64, productID int) error {
	_, err := s.db.ModelContext(ctx, (*models.CartLine)(nil)).
		Where("user_id = ?", userID).
		Where("product_id = ?", productID).
		Delete()
	if err != nil {
		return fmt.Errorf("remove product %d from cart of user %d: %w", productID, userID, err)
	}
	return nil
}

// DecrementCart зменшує кількість на 1. Повертає true, якщо рядок
// залишився, і false, якщо його видалено (кількість була 1) або його
// взагалі не було.
func (s *Store) DecrementCart(ctx context.Context, userID int64, productID int) (bool, error) {
	survived := false

	err := s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		line := new(models.CartLine)
		err := tx.ModelContext(ctx, line).
			Where("user_id = ?", userID).
			Where("product_id = ?", productID).
			For("UPDATE").
			Select()
		if err == pg.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}

		if line.Quantity > 1 {
			line.Quantity--
			_, err = tx.ModelContext(ctx, line).WherePK().Column("quantity").Update()
			survived = err == nil
			return err
		}

		_, err = tx.ModelContext(ctx, line).WherePK().Delete()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("decrement product %d in cart of user %d: %w", productID, userID, err)
	}
	return survived, nil
}

// Checkout переносить кошик користувача в замовлення: Order, позиції зі
// знімком поточних цін і очищення кошика - все в одній транзакції.
// Порожній кошик - (nil, nil), без жодних змін у сховищі.
func (s *Store) Checkout(ctx context.Context, userID int64) (*models.Order, error) {
	var order *models.Order

	err := s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		lines := []models.CartLine{}
		err := tx.ModelContext(ctx, &lines).
			Where("cart_line.user_id = ?", userID).
			Relation("Product").
			Order("cart_line.id ASC").
			Select()
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}

		var totalPrice float64
		for i := range lines {
			totalPrice += lines[i].LineTotal()
		}

		order = &models.Order{UserID: userID, TotalPrice: totalPrice, CreatedAt: time.Now()}
		if _, err := tx.ModelContext(ctx, order).Insert(); err != nil {
			return err
		}

		for i := range lines {
			item := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: lines[i].ProductID,
				Quantity:  lines[i].Quantity,
				Price:     lines[i].Product.Price,
				Product:   lines[i].Product,
			}
			if _, err := tx.ModelContext(ctx, item).Insert(); err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}

		_, err = tx.ModelContext(ctx, (*models.CartLine)(nil)).
			Where("user_id = ?", userID).
			Delete()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("checkout cart of user %d: %w", userID, err)
	}
	return order, nil
}

// GetUserOrders повертає замовлення користувача з позиціями,
// найновіші першими.
func (s *Store) GetUserOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.ModelContext(ctx, &orders).
		Where("ord.user_id = ?", userID).
		Relation("Items").
		Relation("Items.Product").
		Order("ord.created_at DESC").
		Select()
	if err != nil {
		return nil, fmt.Errorf("get orders of user %d: %w", userID, err)
	}
	return orders, nil
}

// AddUser - ідемпотентна реєстрація: якщо користувач вже є, нічого не робить.
func (s *Store) AddUser(ctx context.Context, userID int64, firstName, lastName, phone string) error {
	user := &models.User{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}
	_, err := s.db.ModelContext(ctx, user).
		OnConflict("(user_id) DO NOTHING").
		Insert()
	if err != nil {
		return fmt.Errorf("add user %d: %w", userID, err)
	}
	return nil
}
