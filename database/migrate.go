package database

import (
	"github.com/adisyonqr/restaurant-app/models"
	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every model in dependency order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Settings{},
		&models.Staff{},
		&models.TableGroup{},
		&models.Table{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
}
