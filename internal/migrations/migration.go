package migrations

import (
	"glass_office/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunMigrations creates or updates the documents table.
func RunMigrations(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	if err := db.AutoMigrate(&models.Document{}); err != nil {
		return err
	}

	log.Info("database migrations completed")
	return nil
}
