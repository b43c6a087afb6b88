package models

import "time"

type TableGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	Tables    []Table   `gorm:"foreignKey:GroupID" json:"tables,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

type Table struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"type:varchar(100);not null" json:"name"`
	Capacity  int         `gorm:"not null;default:4" json:"capacity"`
	GroupID   *uint       `gorm:"index" json:"group_id,omitempty"`
	Group     *TableGroup `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	IsActive  bool        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
}
