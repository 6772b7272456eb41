package database

import (
	"context"
	"fmt"

	"github.com/Nevmen9Iemm/BOT/database/models"
)

// Стартовий опис для кожного пункту меню. Картинки банерів
// підвантажує адміністратор окремо, через UpdateBannerImage.
var DefaultBanners = map[string]string{
	"main":     "Ласкаво просимо до нашого магазину!\nОбирайте товари та оформлюйте замовлення прямо в боті.",
	"about":    "Наш магазин.\nРежим роботи - цілодобово.",
	"cart":     "У кошику поки що порожньо!",
	"shipping": "Варіанти доставки:\nНова Пошта, Укрпошта, самовивіз.",
	"payment":  "Оплата:\nкарткою онлайн або при отриманні.",
	"catalog":  "Оберіть категорію:",
	"order":    "У вас поки що немає замовлень.",
	"orders":   "Ваші замовлення:",
	"default":  "Сторінка не знайдена.",
}

var DefaultCategories = []string{"Їжа", "Напої"}

// SeedBanners додає банери, якщо таблиця порожня. Повторний запуск
// нічого не змінює.
func (s *Store) SeedBanners(ctx context.Context, descriptions map[string]string) error {
	count, err := s.db.ModelContext(ctx, (*models.Banner)(nil)).Count()
	if err != nil {
		return fmt.Errorf("seed banners: %w", err)
	}
	if count > 0 {
		return nil
	}

	for name, description := range descriptions {
		banner := &models.Banner{Name: name, Description: description}
		if _, err := s.db.ModelContext(ctx, banner).Insert(); err != nil {
			return fmt.Errorf("seed banner %q: %w", name, err)
		}
	}
	return nil
}

func (s *Store) SeedCategories(ctx context.Context, names []string) error {
	count, err := s.db.ModelContext(ctx, (*models.Category)(nil)).Count()
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range names {
		category := &models.Category{Name: name}
		if _, err := s.db.ModelContext(ctx, category).Insert(); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	return nil
}

// UpdateBannerImage змінює картинку банера. Викликається адмінською
// частиною, коли банеру призначають Telegram file id.
func (s *Store) UpdateBannerImage(ctx context.Context, name, image string) error {
	_, err := s.db.ModelContext(ctx, (*models.Banner)(nil)).
		Set("image = ?", image).
		Where("name = ?", name).
		Update()
	if err != nil {
		return fmt.Errorf("update image of banner %q: %w", name, err)
	}
	return nil
}
