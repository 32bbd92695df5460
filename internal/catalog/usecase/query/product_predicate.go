package query

import "github.com/tair/catalog-service/internal/catalog/domain"

// DefaultSearchLimit applies when no positive limit is supplied
const DefaultSearchLimit = 50

// SearchProductsQuery is an advanced product search request. Empty strings
// and zero ids mean "not supplied"; EnMercadolibre is a pointer so that an
// explicit zero still filters.
type SearchProductsQuery struct {
	Query          string `json:"query"`
	Name           string `json:"name"`
	Barcode        string `json:"barcode"`
	BrandID        *uint  `json:"brandId"`
	CategoryID     *uint  `json:"categoryId"`
	EnMercadolibre *int   `json:"enMercadolibre"`
	Limit          *int   `json:"limit"`
	Offset         *int   `json:"offset"`
}

// categoryFilter returns the requested category, if any
func (q SearchProductsQuery) categoryFilter() (uint, bool) {
	if q.CategoryID == nil || *q.CategoryID == 0 {
		return 0, false
	}
	return *q.CategoryID, true
}

// BuildProductPredicate translates a search request into a filter over the
// products table and the pagination window. The combined query term takes
// precedence over the discrete name and barcode filters. The category filter
// is not part of the predicate; SearchProductsHandler applies it to the page.
func BuildProductPredicate(q SearchProductsQuery) (domain.Predicate, domain.Window) {
	var conds domain.AllOf

	if q.Query != "" {
		conds = append(conds, domain.AnyOf{
			domain.Contains{Column: domain.ColumnName, Term: q.Query},
			domain.Contains{Column: domain.ColumnBarcode, Term: q.Query},
		})
	} else {
		if q.Name != "" {
			conds = append(conds, domain.Contains{Column: domain.ColumnName, Term: q.Name})
		}
		if q.Barcode != "" {
			conds = append(conds, domain.Contains{Column: domain.ColumnBarcode, Term: q.Barcode})
		}
	}

	if q.BrandID != nil && *q.BrandID != 0 {
		conds = append(conds, domain.Equals{Column: domain.ColumnBrandID, Value: *q.BrandID})
	}
	if q.EnMercadolibre != nil {
		conds = append(conds, domain.Equals{Column: domain.ColumnEnMercadolibre, Value: *q.EnMercadolibre})
	}

	window := domain.Window{Limit: DefaultSearchLimit}
	if q.Limit != nil && *q.Limit != 0 {
		window.Limit = *q.Limit
	}
	if q.Offset != nil {
		window.Offset = *q.Offset
	}

	if len(conds) == 0 {
		return nil, window
	}
	return conds, window
}
