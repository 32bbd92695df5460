package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

func ptr[T any](v T) *T { return &v }

func TestBuildProductPredicate(t *testing.T) {
	nameOrBarcode := func(term string) domain.Predicate {
		return domain.AnyOf{
			domain.Contains{Column: domain.ColumnName, Term: term},
			domain.Contains{Column: domain.ColumnBarcode, Term: term},
		}
	}

	tests := []struct {
		name       string
		query      SearchProductsQuery
		wantPred   domain.Predicate
		wantWindow domain.Window
	}{
		{
			name:       "empty request matches everything",
			query:      SearchProductsQuery{},
			wantPred:   nil,
			wantWindow: domain.Window{Limit: 50, Offset: 0},
		},
		{
			name:       "combined term",
			query:      SearchProductsQuery{Query: "123"},
			wantPred:   domain.AllOf{nameOrBarcode("123")},
			wantWindow: domain.Window{Limit: 50},
		},
		{
			name:       "combined term overrides discrete filters",
			query:      SearchProductsQuery{Query: "123", Name: "foo", Barcode: "bar"},
			wantPred:   domain.AllOf{nameOrBarcode("123")},
			wantWindow: domain.Window{Limit: 50},
		},
		{
			name:  "discrete filters are conjoined",
			query: SearchProductsQuery{Name: "foo", Barcode: "bar"},
			wantPred: domain.AllOf{
				domain.Contains{Column: domain.ColumnName, Term: "foo"},
				domain.Contains{Column: domain.ColumnBarcode, Term: "bar"},
			},
			wantWindow: domain.Window{Limit: 50},
		},
		{
			name:  "brand and explicit zero visibility",
			query: SearchProductsQuery{BrandID: ptr(uint(3)), EnMercadolibre: ptr(0)},
			wantPred: domain.AllOf{
				domain.Equals{Column: domain.ColumnBrandID, Value: uint(3)},
				domain.Equals{Column: domain.ColumnEnMercadolibre, Value: 0},
			},
			wantWindow: domain.Window{Limit: 50},
		},
		{
			name:       "zero brand is no restriction",
			query:      SearchProductsQuery{BrandID: ptr(uint(0))},
			wantPred:   nil,
			wantWindow: domain.Window{Limit: 50},
		},
		{
			name:       "category is not part of the predicate",
			query:      SearchProductsQuery{CategoryID: ptr(uint(7))},
			wantPred:   nil,
			wantWindow: domain.Window{Limit: 50},
		},
		{
			name:       "explicit window",
			query:      SearchProductsQuery{Limit: ptr(10), Offset: ptr(20)},
			wantPred:   nil,
			wantWindow: domain.Window{Limit: 10, Offset: 20},
		},
		{
			name:       "zero limit falls back to default",
			query:      SearchProductsQuery{Limit: ptr(0)},
			wantPred:   nil,
			wantWindow: domain.Window{Limit: 50},
		},
		{
			name:       "negative window passes through",
			query:      SearchProductsQuery{Limit: ptr(-1), Offset: ptr(-5)},
			wantPred:   nil,
			wantWindow: domain.Window{Limit: -1, Offset: -5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, window := BuildProductPredicate(tt.query)
			assert.Equal(t, tt.wantPred, pred)
			assert.Equal(t, tt.wantWindow, window)
		})
	}
}
