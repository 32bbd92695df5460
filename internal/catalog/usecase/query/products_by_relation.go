package query

import (
	"context"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// DefaultRelationLimit applies to by-category and by-brand listings
const DefaultRelationLimit = 20

// ProductsByRelationQuery pages the products of one category or brand
type ProductsByRelationQuery struct {
	ID     uint
	Limit  *int
	Offset *int
}

func (q ProductsByRelationQuery) window() domain.Window {
	w := domain.Window{Limit: DefaultRelationLimit}
	if q.Limit != nil {
		w.Limit = *q.Limit
	}
	if q.Offset != nil {
		w.Offset = *q.Offset
	}
	return w
}

// ProductsByCategoryHandler lists the products associated with a category
type ProductsByCategoryHandler struct {
	products     domain.ProductRepository
	associations domain.ProductCategoryRepository
}

// NewProductsByCategoryHandler creates a new products by category handler
func NewProductsByCategoryHandler(products domain.ProductRepository, associations domain.ProductCategoryRepository) *ProductsByCategoryHandler {
	return &ProductsByCategoryHandler{products: products, associations: associations}
}

// Handle executes the query. Total counts the associations, including any
// that point at products which no longer exist.
func (h *ProductsByCategoryHandler) Handle(ctx context.Context, q ProductsByRelationQuery) (*Page, error) {
	ids, err := h.associations.ProductIDsByCategory(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category members: %w", err)
	}
	if len(ids) == 0 {
		return &Page{Products: []ProductView{}}, nil
	}

	products, err := h.products.FindByIDs(ctx, ids, q.window())
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	return &Page{Products: NewProductViews(products), Total: int64(len(ids))}, nil
}

// ProductsByBrandHandler lists the products of a brand
type ProductsByBrandHandler struct {
	products domain.ProductRepository
}

// NewProductsByBrandHandler creates a new products by brand handler
func NewProductsByBrandHandler(products domain.ProductRepository) *ProductsByBrandHandler {
	return &ProductsByBrandHandler{products: products}
}

// Handle executes the query
func (h *ProductsByBrandHandler) Handle(ctx context.Context, q ProductsByRelationQuery) (*Page, error) {
	pred := domain.Equals{Column: domain.ColumnBrandID, Value: q.ID}

	products, err := h.products.Find(ctx, pred, q.window())
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	total, err := h.products.Count(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	return &Page{Products: NewProductViews(products), Total: total}, nil
}
