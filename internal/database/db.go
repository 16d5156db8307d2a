package database

import (
	"github.com/kbryant/sendlater/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection. The handle is passed down
// explicitly; there is no package-level DB.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the messages and items tables plus their secondary
// indexes: (owner, send_time) and (send_year_month_day, send_time).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Message{}, &models.Item{})
}
