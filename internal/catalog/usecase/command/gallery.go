package command

import (
	"context"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/storage"
)

// GalleryHandler manages the secondary product images
type GalleryHandler struct {
	store    storage.ImageStore
	products domain.ProductRepository
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(store storage.ImageStore, products domain.ProductRepository) *GalleryHandler {
	return &GalleryHandler{store: store, products: products}
}

// Add appends an image to the gallery, which holds at most MaxGalleryImages
func (h *GalleryHandler) Add(ctx context.Context, productID uint, upload ImageUpload) ([]string, error) {
	if err := upload.validate(); err != nil {
		return nil, err
	}
	product, err := h.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	images := product.Gallery()
	if len(images) >= domain.MaxGalleryImages {
		return nil, fmt.Errorf("%w: a product can have at most %d gallery images", domain.ErrValidation, domain.MaxGalleryImages)
	}

	ref, err := h.store.Save(ctx, storage.ProductGalleryPrefix(productID), upload.Filename, upload.ContentType, upload.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	images = append(images, ref)
	if err := h.products.UpdateGallery(ctx, productID, images); err != nil {
		h.store.Delete(ctx, ref)
		return nil, err
	}
	return images, nil
}

// Remove deletes the gallery image at index
func (h *GalleryHandler) Remove(ctx context.Context, productID uint, index int) ([]string, error) {
	product, err := h.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	images := product.Gallery()
	if index < 0 || index >= len(images) {
		return nil, fmt.Errorf("%w: invalid image index %d", domain.ErrValidation, index)
	}

	removed := images[index]
	remaining := make([]string, 0, len(images)-1)
	remaining = append(remaining, images[:index]...)
	remaining = append(remaining, images[index+1:]...)

	if err := h.products.UpdateGallery(ctx, productID, remaining); err != nil {
		return nil, err
	}
	h.store.Delete(ctx, removed)
	return remaining, nil
}

// Clear removes every gallery image
func (h *GalleryHandler) Clear(ctx context.Context, productID uint) error {
	product, err := h.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	images := product.Gallery()
	if err := h.products.UpdateGallery(ctx, productID, []string{}); err != nil {
		return err
	}
	for _, ref := range images {
		h.store.Delete(ctx, ref)
	}
	return nil
}
