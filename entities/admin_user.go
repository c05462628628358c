package entities

import "time"

// AdminUser backs the admin_users table. The login path currently checks a
// fixed credential pair and never reads this table; the row seeded at startup
// keeps the schema ready for a real credential store.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
