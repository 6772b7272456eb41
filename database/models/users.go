package models

import "time"

// User зберігає покупця за його Telegram ID.
// Створюється при першому зверненні і більше не видаляється.
type User struct {
	UserID int64 `pg:",pk" json:"user_id"`

	FirstName string `pg:",default:null" json:"first_name"`
	LastName  string `pg:",default:null" json:"last_name"`
	Phone     string `pg:",default:null" json:"phone"`

	CreatedAt time.Time `pg:",default:now()" json:"created_at"`
}
