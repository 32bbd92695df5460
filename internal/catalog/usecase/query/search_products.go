package query

import (
	"context"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// SearchProductsHandler runs an advanced product search
type SearchProductsHandler struct {
	products     domain.ProductRepository
	associations domain.ProductCategoryRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(products domain.ProductRepository, associations domain.ProductCategoryRepository) *SearchProductsHandler {
	return &SearchProductsHandler{products: products, associations: associations}
}

// Handle counts and pages the predicate matches, then narrows the page to
// the requested category. With a category filter the total is the size of
// the narrowed page, not the number of matches across all pages; clients
// rely on that.
func (h *SearchProductsHandler) Handle(ctx context.Context, q SearchProductsQuery) (*Page, error) {
	pred, window := BuildProductPredicate(q)

	total, err := h.products.Count(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	rows, err := h.products.Find(ctx, pred, window)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	if categoryID, ok := q.categoryFilter(); ok {
		ids, err := h.associations.ProductIDsByCategory(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load category members: %w", err)
		}
		members := make(map[uint]struct{}, len(ids))
		for _, id := range ids {
			members[id] = struct{}{}
		}

		filtered := make([]domain.Product, 0, len(rows))
		for _, p := range rows {
			if _, ok := members[p.ID]; ok {
				filtered = append(filtered, p)
			}
		}
		rows = filtered
		total = int64(len(filtered))
	}

	return &Page{Products: NewProductViews(rows), Total: total}, nil
}
