package query

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/cache"
)

// ListCategoriesQuery represents the query to list categories
type ListCategoriesQuery struct {
	Flat            bool
	IncludeInactive bool
}

// ListCategoriesHandler handles category listing
type ListCategoriesHandler struct {
	repo  domain.CategoryRepository
	cache domain.ListingCache
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository, cache domain.ListingCache) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo, cache: cache}
}

// Handle returns the flat list or the nested forest
func (h *ListCategoriesHandler) Handle(ctx context.Context, q ListCategoriesQuery) (any, error) {
	if q.Flat {
		return h.Flat(ctx, q.IncludeInactive)
	}
	return h.Tree(ctx, q.IncludeInactive)
}

// Flat returns categories ordered by name
func (h *ListCategoriesHandler) Flat(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	key := cache.Key(domain.CacheCategories, "flat", strconv.FormatBool(includeInactive))

	var categories []domain.Category
	if h.cache.Get(ctx, key, &categories) {
		return categories, nil
	}

	categories, err := h.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	h.cache.Set(ctx, key, categories)
	return categories, nil
}

// Tree returns the category forest
func (h *ListCategoriesHandler) Tree(ctx context.Context, includeInactive bool) ([]*CategoryNode, error) {
	key := cache.Key(domain.CacheCategories, "tree", strconv.FormatBool(includeInactive))

	var tree []*CategoryNode
	if h.cache.Get(ctx, key, &tree) {
		return tree, nil
	}

	categories, err := h.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	tree = BuildCategoryTree(categories)
	h.cache.Set(ctx, key, tree)
	return tree, nil
}

// GetCategoryQuery represents the query to get a category
type GetCategoryQuery struct {
	ID uint
}

// GetCategoryHandler handles single category lookups, inactive included
type GetCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(repo domain.CategoryRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle executes the get category query
func (h *GetCategoryHandler) Handle(ctx context.Context, q GetCategoryQuery) (*domain.Category, error) {
	return h.repo.FindByID(ctx, q.ID)
}
