package entities

import "time"

type MenuItem struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Title        string   `gorm:"not null" json:"title"`
	Description  string   `gorm:"not null" json:"description"`
	CategoryID   *uint    `json:"category_id"`
	Price        *float64 `json:"price"`
	DisplayOrder int      `gorm:"default:0" json:"display_order"`
	// No gorm default tag: gorm would swap an explicit false for the tag
	// default on insert. The application default lives in the service.
	IsAvailable bool `json:"is_available"`

	Category *Category       `gorm:"foreignKey:CategoryID" json:"-"`
	Images   []MenuItemImage `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
