package models

import "time"

type Product struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID      uint      `gorm:"not null;index" json:"category_id"`
	Category        *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SortOrder       int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	ImageURL        *string   `json:"image_url,omitempty"`
	PreparationTime *int      `json:"preparation_time,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
