package entities

import "time"

type MenuItemImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MenuItemID   uint      `gorm:"not null;index" json:"menu_item_id"`
	ImagePath    string    `gorm:"not null" json:"image_path"`
	ImageAlt     string    `json:"image_alt"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
