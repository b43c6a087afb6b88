package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database configured via DB_DSN (MySQL). When no DSN
// is set it falls back to a local SQLite file so the app can run
// without a database server.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "adisyon.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// BaseURL is the public URL customers reach the menu on, used when
// rendering table QR codes.
func BaseURL() string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base
}
