package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// AutoMigrate creates or updates the catalog schema
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}
