package command

import (
	"context"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/logger"
	"github.com/tair/catalog-service/pkg/storage"
)

// DefaultMigrationBatch is used when the batch size is absent or not positive
const DefaultMigrationBatch = 5

// MigrateProductImagesCommand moves a batch of inline images to object storage
type MigrateProductImagesCommand struct {
	Batch int
}

// MigrationError describes a product that could not be migrated
type MigrationError struct {
	ID    uint   `json:"id"`
	Error string `json:"error"`
}

// MigrationResult summarizes one batch
type MigrationResult struct {
	Migrated  int              `json:"migrated"`
	Processed int              `json:"processed"`
	Remaining int64            `json:"remaining"`
	Errors    []MigrationError `json:"errors,omitempty"`
}

// MigrateProductImagesHandler handles inline image migration. Only rows whose
// image is still a data URI are selected, so the command can be repeated
// until nothing remains.
type MigrateProductImagesHandler struct {
	store    storage.ImageStore
	products domain.ProductRepository
	events   domain.EventPublisher
}

// NewMigrateProductImagesHandler creates a new migration handler
func NewMigrateProductImagesHandler(store storage.ImageStore, products domain.ProductRepository, events domain.EventPublisher) *MigrateProductImagesHandler {
	return &MigrateProductImagesHandler{store: store, products: products, events: events}
}

// Handle executes one migration batch
func (h *MigrateProductImagesHandler) Handle(ctx context.Context, cmd MigrateProductImagesCommand) (*MigrationResult, error) {
	if !h.store.Remote() {
		return nil, fmt.Errorf("%w: object storage is not configured", domain.ErrUnavailable)
	}

	batch := cmd.Batch
	if batch <= 0 {
		batch = DefaultMigrationBatch
	}

	ids, err := h.products.FindInlineImageIDs(ctx, batch)
	if err != nil {
		return nil, err
	}

	result := &MigrationResult{}
	if len(ids) == 0 {
		return result, nil
	}

	for _, id := range ids {
		result.Processed++
		if err := h.migrate(ctx, id); err != nil {
			logger.Warn(ctx).Err(err).Uint("product_id", id).Msg("Image migration failed")
			result.Errors = append(result.Errors, MigrationError{ID: id, Error: err.Error()})
			continue
		}
		result.Migrated++
	}

	remaining, err := h.products.CountInlineImages(ctx)
	if err != nil {
		return nil, err
	}
	result.Remaining = remaining

	logger.Info(ctx).
		Int("migrated", result.Migrated).
		Int("processed", result.Processed).
		Int64("remaining", remaining).
		Msg("Image migration batch finished")
	return result, nil
}

func (h *MigrateProductImagesHandler) migrate(ctx context.Context, id uint) error {
	product, err := h.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product.Image == nil {
		return storage.ErrInvalidDataURI
	}

	contentType, data, err := storage.ParseDataURI(*product.Image)
	if err != nil {
		return err
	}

	ref, err := h.store.Save(ctx, storage.ProductPrefix(id), "", contentType, data)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	if err := h.products.UpdateImage(ctx, id, &ref); err != nil {
		return err
	}

	h.events.Publish(ctx, domain.NewEvent(domain.EventProductImageMigrated, id, map[string]string{"image": ref}))
	return nil
}
