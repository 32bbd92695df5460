package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// GormProductCategoryRepository implements domain.ProductCategoryRepository
type GormProductCategoryRepository struct {
	db *gorm.DB
}

// NewGormProductCategoryRepository creates a new association repository
func NewGormProductCategoryRepository(db *gorm.DB) *GormProductCategoryRepository {
	return &GormProductCategoryRepository{db: db}
}

func (r *GormProductCategoryRepository) ProductIDsByCategory(ctx context.Context, categoryID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).
		Model(&domain.ProductCategory{}).
		Where("category_id = ?", categoryID).
		Order("product_id").
		Pluck("product_id", &ids).Error
	return ids, translate(err, "products of category %d", categoryID)
}

func (r *GormProductCategoryRepository) CategoryIDsByProduct(ctx context.Context, productID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).
		Model(&domain.ProductCategory{}).
		Where("product_id = ?", productID).
		Order("category_id").
		Pluck("category_id", &ids).Error
	return ids, translate(err, "categories of product %d", productID)
}

// Add inserts the missing associations; existing pairs are left alone
func (r *GormProductCategoryRepository) Add(ctx context.Context, productID uint, categoryIDs []uint) error {
	return add(r.db.WithContext(ctx), productID, categoryIDs)
}

func (r *GormProductCategoryRepository) Remove(ctx context.Context, productID, categoryID uint) error {
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND category_id = ?", productID, categoryID).
		Delete(&domain.ProductCategory{}).Error
	return translate(err, "remove category %d from product %d", categoryID, productID)
}

// Replace swaps the whole association set of a product
func (r *GormProductCategoryRepository) Replace(ctx context.Context, productID uint, categoryIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&domain.ProductCategory{}).Error; err != nil {
			return translate(err, "clear categories of product %d", productID)
		}
		return add(tx, productID, categoryIDs)
	})
}

func add(tx *gorm.DB, productID uint, categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	rows := make([]domain.ProductCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		rows = append(rows, domain.ProductCategory{ProductID: productID, CategoryID: id})
	}
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	return translate(err, "add categories to product %d", productID)
}
