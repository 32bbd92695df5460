package command

import (
	"context"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/storage"
)

// ImageUpload is an uploaded image file
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (u ImageUpload) validate() error {
	if len(u.Data) == 0 {
		return fmt.Errorf("%w: image file is required", domain.ErrValidation)
	}
	return nil
}

// ImageHandler sets and removes the primary image of brands, categories and
// products. Superseded images are deleted from storage on a best-effort basis.
type ImageHandler struct {
	store      storage.ImageStore
	brands     domain.BrandRepository
	categories domain.CategoryRepository
	products   domain.ProductRepository
	cache      domain.ListingCache
	events     domain.EventPublisher
}

// NewImageHandler creates a new image handler
func NewImageHandler(
	store storage.ImageStore,
	brands domain.BrandRepository,
	categories domain.CategoryRepository,
	products domain.ProductRepository,
	cache domain.ListingCache,
	events domain.EventPublisher,
) *ImageHandler {
	return &ImageHandler{
		store:      store,
		brands:     brands,
		categories: categories,
		products:   products,
		cache:      cache,
		events:     events,
	}
}

// SetBrandImage stores the upload as the brand logo
func (h *ImageHandler) SetBrandImage(ctx context.Context, id uint, upload ImageUpload) (*domain.Brand, error) {
	if err := upload.validate(); err != nil {
		return nil, err
	}
	brand, err := h.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, err := h.save(ctx, storage.BrandPrefix(id), upload)
	if err != nil {
		return nil, err
	}

	previous := brand.ImageURL
	brand.ImageURL = &ref
	if err := h.brands.Update(ctx, brand); err != nil {
		return nil, err
	}
	h.discard(ctx, previous)

	h.cache.InvalidatePrefix(ctx, domain.CacheBrands)
	h.events.Publish(ctx, domain.NewEvent(domain.EventBrandUpdated, brand.ID, brand))
	return brand, nil
}

// RemoveBrandImage clears the brand logo
func (h *ImageHandler) RemoveBrandImage(ctx context.Context, id uint) error {
	brand, err := h.brands.FindByID(ctx, id)
	if err != nil {
		return err
	}

	previous := brand.ImageURL
	brand.ImageURL = nil
	if err := h.brands.Update(ctx, brand); err != nil {
		return err
	}
	h.discard(ctx, previous)

	h.cache.InvalidatePrefix(ctx, domain.CacheBrands)
	h.events.Publish(ctx, domain.NewEvent(domain.EventBrandUpdated, brand.ID, brand))
	return nil
}

// SetCategoryImage stores the upload as the category image
func (h *ImageHandler) SetCategoryImage(ctx context.Context, id uint, upload ImageUpload) (*domain.Category, error) {
	if err := upload.validate(); err != nil {
		return nil, err
	}
	category, err := h.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, err := h.save(ctx, storage.CategoryPrefix(id), upload)
	if err != nil {
		return nil, err
	}

	previous := category.ImageURL
	category.ImageURL = &ref
	if err := h.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	h.discard(ctx, previous)

	h.cache.InvalidatePrefix(ctx, domain.CacheCategories)
	h.events.Publish(ctx, domain.NewEvent(domain.EventCategoryUpdated, category.ID, category))
	return category, nil
}

// RemoveCategoryImage clears the category image
func (h *ImageHandler) RemoveCategoryImage(ctx context.Context, id uint) error {
	category, err := h.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}

	previous := category.ImageURL
	category.ImageURL = nil
	if err := h.categories.Update(ctx, category); err != nil {
		return err
	}
	h.discard(ctx, previous)

	h.cache.InvalidatePrefix(ctx, domain.CacheCategories)
	h.events.Publish(ctx, domain.NewEvent(domain.EventCategoryUpdated, category.ID, category))
	return nil
}

// SetProductImage stores the upload as the primary product image and
// returns the new reference
func (h *ImageHandler) SetProductImage(ctx context.Context, id uint, upload ImageUpload) (string, error) {
	if err := upload.validate(); err != nil {
		return "", err
	}
	product, err := h.products.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	ref, err := h.save(ctx, storage.ProductPrefix(id), upload)
	if err != nil {
		return "", err
	}

	if err := h.products.UpdateImage(ctx, id, &ref); err != nil {
		return "", err
	}
	h.discard(ctx, product.Image)

	h.events.Publish(ctx, domain.NewEvent(domain.EventProductUpdated, id, map[string]string{"image": ref}))
	return ref, nil
}

// RemoveProductImage clears the primary product image
func (h *ImageHandler) RemoveProductImage(ctx context.Context, id uint) error {
	product, err := h.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := h.products.UpdateImage(ctx, id, nil); err != nil {
		return err
	}
	h.discard(ctx, product.Image)

	h.events.Publish(ctx, domain.NewEvent(domain.EventProductUpdated, id, map[string]any{"image": nil}))
	return nil
}

func (h *ImageHandler) save(ctx context.Context, prefix string, upload ImageUpload) (string, error) {
	ref, err := h.store.Save(ctx, prefix, upload.Filename, upload.ContentType, upload.Data)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return ref, nil
}

func (h *ImageHandler) discard(ctx context.Context, ref *string) {
	if ref != nil && *ref != "" {
		h.store.Delete(ctx, *ref)
	}
}
