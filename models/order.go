package models

import "time"

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Status       string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount  float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Note         string      `gorm:"type:text" json:"note"`
	CustomerName string      `gorm:"type:varchar(255)" json:"customer_name"`
	TableID      uint        `gorm:"not null;index" json:"table_id"`
	Table        *Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	StaffID      *uint       `gorm:"index" json:"staff_id,omitempty"`
	Staff        *Staff      `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}
