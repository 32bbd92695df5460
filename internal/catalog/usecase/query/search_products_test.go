package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/catalogtest"
	"github.com/tair/catalog-service/internal/catalog/domain"
)

func viewIDs(views []ProductView) []uint {
	ids := []uint{}
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

func newSearchHandler(db *gorm.DB) *SearchProductsHandler {
	repos := catalogtest.NewRepos(db)
	return NewSearchProductsHandler(repos.Products, repos.ProductCategories)
}

func TestSearchProducts_CombinedTermMatchesNameOrBarcode(t *testing.T) {
	db := catalogtest.NewDB(t)
	byBarcode := catalogtest.Product(t, db, "Widget", "0000123")
	byName := catalogtest.Product(t, db, "Item 123", "999")
	catalogtest.Product(t, db, "Other", "456")

	page, err := newSearchHandler(db).Handle(context.Background(), SearchProductsQuery{
		Query: "123",
		Name:  "does-not-exist",
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{byBarcode.ID, byName.ID}, viewIDs(page.Products))
	assert.Equal(t, int64(2), page.Total)
}

func TestSearchProducts_TotalIgnoresPagination(t *testing.T) {
	db := catalogtest.NewDB(t)
	for _, bc := range []string{"1", "2", "3", "4", "5"} {
		catalogtest.Product(t, db, "Item "+bc, bc)
	}

	page, err := newSearchHandler(db).Handle(context.Background(), SearchProductsQuery{
		Name:   "Item",
		Limit:  ptr(2),
		Offset: ptr(2),
	})
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, int64(5), page.Total)
}

func TestSearchProducts_VisibilityZeroFilters(t *testing.T) {
	db := catalogtest.NewDB(t)
	hidden := catalogtest.Product(t, db, "hidden", "1")
	catalogtest.Product(t, db, "listed", "2", func(p *domain.Product) { p.EnMercadolibre = 1 })

	page, err := newSearchHandler(db).Handle(context.Background(), SearchProductsQuery{EnMercadolibre: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, []uint{hidden.ID}, viewIDs(page.Products))

	page, err = newSearchHandler(db).Handle(context.Background(), SearchProductsQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
}

func TestSearchProducts_CategoryTotalIsPageSize(t *testing.T) {
	db := catalogtest.NewDB(t)
	require.NoError(t, db.Create(&domain.Category{ID: 7, Name: "Seven", Slug: "seven", IsActive: domain.StatusActive}).Error)

	p1 := catalogtest.Product(t, db, "a", "1")
	p2 := catalogtest.Product(t, db, "b", "2")
	p3 := catalogtest.Product(t, db, "c", "3")
	catalogtest.Associate(t, db, 7, p1.ID, p2.ID, p3.ID)

	page, err := newSearchHandler(db).Handle(context.Background(), SearchProductsQuery{
		CategoryID: ptr(uint(7)),
		Limit:      ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{p1.ID, p2.ID}, viewIDs(page.Products))
	assert.Equal(t, int64(2), page.Total, "total reflects the filtered page, not all three members")
}

func TestSearchProducts_CategoryFilterNarrowsPage(t *testing.T) {
	db := catalogtest.NewDB(t)
	category := catalogtest.Category(t, db, "Tools", "tools", nil)

	catalogtest.Product(t, db, "a", "1")
	member := catalogtest.Product(t, db, "b", "2")
	catalogtest.Product(t, db, "c", "3")
	outsidePage := catalogtest.Product(t, db, "d", "4")
	catalogtest.Associate(t, db, category.ID, member.ID, outsidePage.ID)

	page, err := newSearchHandler(db).Handle(context.Background(), SearchProductsQuery{
		CategoryID: &category.ID,
		Limit:      ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{member.ID}, viewIDs(page.Products))
	assert.Equal(t, int64(1), page.Total)
}

func TestSearchProducts_ViewShape(t *testing.T) {
	db := catalogtest.NewDB(t)
	catalogtest.Product(t, db, "a", "1")

	page, err := newSearchHandler(db).Handle(context.Background(), SearchProductsQuery{})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.NotNil(t, page.Products[0].Categories)
	assert.Equal(t, "9.99", page.Products[0].SalePrice.Decimal.String())
}
