package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// GormCategoryRepository implements domain.CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new category repository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return translate(r.db.WithContext(ctx).Create(category).Error, "category %q", category.Slug)
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err, "category %d", id)
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translate(err, "category %q", slug)
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Category, error) {
	categories := []domain.Category{}
	if len(ids) == 0 {
		return categories, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name").Order("id").Find(&categories).Error
	return categories, translate(err, "find categories by ids")
}

func (r *GormCategoryRepository) List(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	categories := []domain.Category{}
	tx := r.db.WithContext(ctx)
	if !includeInactive {
		tx = tx.Where("is_active = ?", domain.StatusActive)
	}
	err := tx.Order("name").Order("id").Find(&categories).Error
	return categories, translate(err, "list categories")
}

func (r *GormCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return translate(r.db.WithContext(ctx).Save(category).Error, "category %q", category.Slug)
}
