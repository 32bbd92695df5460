package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// GormBrandRepository implements domain.BrandRepository
type GormBrandRepository struct {
	db *gorm.DB
}

// NewGormBrandRepository creates a new brand repository
func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

func (r *GormBrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	return translate(r.db.WithContext(ctx).Create(brand).Error, "brand %q", brand.Slug)
}

func (r *GormBrandRepository) FindByID(ctx context.Context, id uint) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.db.WithContext(ctx).First(&brand, id).Error; err != nil {
		return nil, translate(err, "brand %d", id)
	}
	return &brand, nil
}

func (r *GormBrandRepository) FindBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&brand).Error; err != nil {
		return nil, translate(err, "brand %q", slug)
	}
	return &brand, nil
}

func (r *GormBrandRepository) List(ctx context.Context, includeInactive bool) ([]domain.Brand, error) {
	brands := []domain.Brand{}
	tx := r.db.WithContext(ctx)
	if !includeInactive {
		tx = tx.Where("is_active = ?", domain.StatusActive)
	}
	err := tx.Order("name").Order("id").Find(&brands).Error
	return brands, translate(err, "list brands")
}

func (r *GormBrandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	return translate(r.db.WithContext(ctx).Save(brand).Error, "brand %q", brand.Slug)
}
