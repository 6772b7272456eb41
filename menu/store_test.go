package menu

import (
	"context"

	"github.com/Nevmen9Iemm/BOT/database/models"
)

// memStore реалізує Store у пам'яті з тією ж семантикою, що й
// database.Store: upsert кошика, видалення рядка на нулі, атомарний
// checkout зі знімком цін.
type memStore struct {
	banners      map[string]*models.Banner
	categories   []models.Category
	products     map[int]*models.Product
	productOrder []int
	cart         map[int64][]*models.CartLine
	orders      map[int64][]models.Order
	users       map[int64]*models.User
	nextLineID  int
	nextOrderID int
}

func newMemStore() *memStore {
	return &memStore{
		banners:  map[string]*models.Banner{},
		products: map[int]*models.Product{},
		cart:     map[int64][]*models.CartLine{},
		orders:   map[int64][]models.Order{},
		users:    map[int64]*models.User{},
	}
}

func (s *memStore) addBanner(name, image, description string) {
	s.banners[name] = &models.Banner{Name: name, Image: image, Description: description}
}

func (s *memStore) addProduct(p models.Product) {
	copied := p
	s.products[p.ID] = &copied
	s.productOrder = append(s.productOrder, p.ID)

	found := false
	for _, c := range s.categories {
		if c.ID == p.CategoryID {
			found = true
		}
	}
	if !found {
		s.categories = append(s.categories, models.Category{ID: p.CategoryID, Name: "cat"})
	}
}

func (s *memStore) GetBanner(_ context.Context, name string) (*models.Banner, error) {
	return s.banners[name], nil
}

func (s *memStore) GetCategories(_ context.Context) ([]models.Category, error) {
	return s.categories, nil
}

func (s *memStore) GetProducts(_ context.Context, categoryID int) ([]models.Product, error) {
	products := []models.Product{}
	for _, id := range s.productOrder {
		if p := s.products[id]; p.CategoryID == categoryID {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (s *memStore) GetUserCart(_ context.Context, userID int64) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	for _, line := range s.cart[userID] {
		copied := *line
		lines = append(lines, copied)
	}
	return lines, nil
}

func (s *memStore) AddToCart(_ context.Context, userID int64, productID int) (*models.CartLine, error) {
	for _, line := range s.cart[userID] {
		if line.ProductID == productID {
			line.Quantity++
			return line, nil
		}
	}

	s.nextLineID++
	line := &models.CartLine{
		ID:        s.nextLineID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
		Product:   s.products[productID],
	}
	s.cart[userID] = append(s.cart[userID], line)
	return line, nil
}

func (s *memStore) RemoveFromCart(_ context.Context, userID int64, productID int) error {
	lines := s.cart[userID]
	for i, line := range lines {
		if line.ProductID == productID {
			s.cart[userID] = append(lines[:i:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memStore) DecrementCart(ctx context.Context, userID int64, productID int) (bool, error) {
	for _, line := range s.cart[userID] {
		if line.ProductID != productID {
			continue
		}
		if line.Quantity > 1 {
			line.Quantity--
			return true, nil
		}
		return false, s.RemoveFromCart(ctx, userID, productID)
	}
	return false, nil
}

func (s *memStore) Checkout(ctx context.Context, userID int64) (*models.Order, error) {
	lines := s.cart[userID]
	if len(lines) == 0 {
		return nil, nil
	}

	var totalPrice float64
	for _, line := range lines {
		totalPrice += line.LineTotal()
	}

	s.nextOrderID++
	order := models.Order{ID: s.nextOrderID, UserID: userID, TotalPrice: totalPrice}
	for _, line := range lines {
		product := *line.Product
		order.Items = append(order.Items, &models.OrderItem{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
			Product:   &product,
		})
	}

	// найновіші першими
	s.orders[userID] = append([]models.Order{order}, s.orders[userID]...)
	s.cart[userID] = nil

	return &order, nil
}

func (s *memStore) GetUserOrders(_ context.Context, userID int64) ([]models.Order, error) {
	return s.orders[userID], nil
}

func (s *memStore) AddUser(_ context.Context, userID int64, firstName, lastName, phone string) error {
	if _, ok := s.users[userID]; ok {
		return nil
	}
	s.users[userID] = &models.User{UserID: userID, FirstName: firstName, LastName: lastName, Phone: phone}
	return nil
}
