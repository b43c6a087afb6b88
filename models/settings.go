package models

import "time"

// Settings is a single-row table created by the setup wizard.
type Settings struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BusinessName   string    `gorm:"type:varchar(255);not null" json:"business_name"`
	Phone          string    `gorm:"type:varchar(32)" json:"phone"`
	Address        string    `gorm:"type:text" json:"address"`
	Description    string    `gorm:"type:text" json:"description"`
	Template       string    `gorm:"type:varchar(20)" json:"template"`
	PrimaryColor   string    `gorm:"type:varchar(16)" json:"primary_color"`
	SecondaryColor string    `gorm:"type:varchar(16)" json:"secondary_color"`
	LogoURL        *string   `json:"logo_url,omitempty"`
	Currency       string    `gorm:"type:varchar(8);default:'₺'" json:"currency"`
	WebhookURL     string    `gorm:"type:varchar(512)" json:"webhook_url"`
	AdminPassword  string    `gorm:"type:varchar(255)" json:"-"`
	IsSetupDone    bool      `gorm:"not null;default:false" json:"is_setup_done"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
