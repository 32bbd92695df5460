package query

import (
	"context"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// ImageMigrationStatusHandler reports how many primary images are still inline
type ImageMigrationStatusHandler struct {
	repo domain.ProductRepository
}

// NewImageMigrationStatusHandler creates a new migration status handler
func NewImageMigrationStatusHandler(repo domain.ProductRepository) *ImageMigrationStatusHandler {
	return &ImageMigrationStatusHandler{repo: repo}
}

// Handle executes the status query
func (h *ImageMigrationStatusHandler) Handle(ctx context.Context) (*domain.ImageStats, error) {
	stats, err := h.repo.ImageStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect image statistics: %w", err)
	}
	return stats, nil
}
