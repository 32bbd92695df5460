// Package catalogtest provides fixtures for tests that need a catalog schema.
package catalogtest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/internal/catalog/repository"
	"github.com/tair/catalog-service/pkg/database"
)

// NewDB opens a private in-memory SQLite database with the catalog schema
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	opts := database.Options()
	opts.Logger = gormlogger.Discard
	db, err := gorm.Open(sqlite.Open(":memory:"), opts)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

// Repos bundles the GORM repositories over one database
type Repos struct {
	Products          *repository.GormProductRepository
	ProductCategories *repository.GormProductCategoryRepository
	Brands            *repository.GormBrandRepository
	Categories        *repository.GormCategoryRepository
	Users             *repository.GormUserRepository
}

// NewRepos builds every repository over db
func NewRepos(db *gorm.DB) Repos {
	return Repos{
		Products:          repository.NewGormProductRepository(db),
		ProductCategories: repository.NewGormProductCategoryRepository(db),
		Brands:            repository.NewGormBrandRepository(db),
		Categories:        repository.NewGormCategoryRepository(db),
		Users:             repository.NewGormUserRepository(db),
	}
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// Product inserts a product with the given name and barcode
func Product(t *testing.T, db *gorm.DB, name, barcode string, mutate ...func(*domain.Product)) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:         Ptr(name),
		Barcode:      Ptr(barcode),
		Cost:         decimal.Zero,
		SalePrice:    decimal.NewNullDecimal(decimal.RequireFromString("9.99")),
		StorehouseID: Ptr(domain.DefaultStorehouseID),
	}
	for _, m := range mutate {
		m(p)
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

// Brand inserts an active brand
func Brand(t *testing.T, db *gorm.DB, name, slug string) *domain.Brand {
	t.Helper()
	b := &domain.Brand{Name: name, Slug: slug, IsActive: domain.StatusActive, IsVisibleWeb: 1}
	require.NoError(t, db.Create(b).Error)
	return b
}

// Category inserts an active category under parent (nil for a root)
func Category(t *testing.T, db *gorm.DB, name, slug string, parent *uint) *domain.Category {
	t.Helper()
	c := &domain.Category{Name: name, Slug: slug, ParentID: parent, IsActive: domain.StatusActive}
	require.NoError(t, db.Create(c).Error)
	return c
}

// Associate links products to a category
func Associate(t *testing.T, db *gorm.DB, categoryID uint, productIDs ...uint) {
	t.Helper()
	for _, id := range productIDs {
		require.NoError(t, db.Create(&domain.ProductCategory{ProductID: id, CategoryID: categoryID}).Error)
	}
}

// User inserts a user
func User(t *testing.T, db *gorm.DB, email, password, role string) *domain.User {
	t.Helper()
	u := &domain.User{Name: "Test " + role, Email: email, Password: password, Role: Ptr(role)}
	require.NoError(t, db.Create(u).Error)
	return u
}
