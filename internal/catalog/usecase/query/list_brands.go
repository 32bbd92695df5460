package query

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/cache"
)

// ListBrandsQuery represents the query to list brands
type ListBrandsQuery struct {
	IncludeInactive bool
}

// ListBrandsHandler handles brand listing
type ListBrandsHandler struct {
	repo  domain.BrandRepository
	cache domain.ListingCache
}

// NewListBrandsHandler creates a new list brands handler
func NewListBrandsHandler(repo domain.BrandRepository, cache domain.ListingCache) *ListBrandsHandler {
	return &ListBrandsHandler{repo: repo, cache: cache}
}

// Handle executes the list brands query
func (h *ListBrandsHandler) Handle(ctx context.Context, q ListBrandsQuery) ([]domain.Brand, error) {
	key := cache.Key(domain.CacheBrands, strconv.FormatBool(q.IncludeInactive))

	var brands []domain.Brand
	if h.cache.Get(ctx, key, &brands) {
		return brands, nil
	}

	brands, err := h.repo.List(ctx, q.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	h.cache.Set(ctx, key, brands)
	return brands, nil
}

// GetBrandQuery represents the query to get a brand
type GetBrandQuery struct {
	ID uint
}

// GetBrandHandler handles single brand lookups
type GetBrandHandler struct {
	repo domain.BrandRepository
}

// NewGetBrandHandler creates a new get brand handler
func NewGetBrandHandler(repo domain.BrandRepository) *GetBrandHandler {
	return &GetBrandHandler{repo: repo}
}

// Handle executes the get brand query
func (h *GetBrandHandler) Handle(ctx context.Context, q GetBrandQuery) (*domain.Brand, error) {
	return h.repo.FindByID(ctx, q.ID)
}
