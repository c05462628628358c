package entities

import "time"

type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`

	Items []MenuItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}
