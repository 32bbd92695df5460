package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// GormProductRepository implements domain.ProductRepository with GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return translate(r.db.WithContext(ctx).Create(product).Error, "product")
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err, "product %d", id)
	}
	return &product, nil
}

func (r *GormProductRepository) FindByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error; err != nil {
		return nil, translate(err, "product with barcode %q", barcode)
	}
	return &product, nil
}

func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uint, window domain.Window) ([]domain.Product, error) {
	products := []domain.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Limit(window.Limit).
		Offset(window.Offset).
		Find(&products).Error
	return products, translate(err, "find products by ids")
}

func (r *GormProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	err := r.db.WithContext(ctx).Order("name").Order("id").Find(&products).Error
	return products, translate(err, "list products")
}

func (r *GormProductRepository) Find(ctx context.Context, pred domain.Predicate, window domain.Window) ([]domain.Product, error) {
	tx, err := where(r.db.WithContext(ctx).Model(&domain.Product{}), pred)
	if err != nil {
		return nil, err
	}
	products := []domain.Product{}
	err = tx.Order("id").Limit(window.Limit).Offset(window.Offset).Find(&products).Error
	return products, translate(err, "search products")
}

func (r *GormProductRepository) Count(ctx context.Context, pred domain.Predicate) (int64, error) {
	tx, err := where(r.db.WithContext(ctx).Model(&domain.Product{}), pred)
	if err != nil {
		return 0, err
	}
	var count int64
	err = tx.Count(&count).Error
	return count, translate(err, "count products")
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return translate(r.db.WithContext(ctx).Save(product).Error, "product %d", product.ID)
}

func (r *GormProductRepository) UpdateImage(ctx context.Context, id uint, ref *string) error {
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Update("image_512", ref).Error
	return translate(err, "update image of product %d", id)
}

func (r *GormProductRepository) UpdateGallery(ctx context.Context, id uint, images []string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Product{ID: id}).
		Select("Images").
		Updates(&domain.Product{Images: images}).Error
	return translate(err, "update gallery of product %d", id)
}

func (r *GormProductRepository) FindInlineImageIDs(ctx context.Context, limit int) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("image_512 LIKE ?", "data:%").
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, translate(err, "find inline images")
}

func (r *GormProductRepository) CountInlineImages(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("image_512 LIKE ?", "data:%").Count(&count).Error
	return count, translate(err, "count inline images")
}

func (r *GormProductRepository) ImageStats(ctx context.Context) (*domain.ImageStats, error) {
	stats := &domain.ImageStats{ProductIDsWithBase64: []uint{}}
	db := r.db.WithContext(ctx).Model(&domain.Product{})

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.Total, "1 = 1", nil},
		{&stats.WithBase64, "image_512 LIKE ?", []any{"data:%"}},
		{&stats.WithR2URL, "image_512 LIKE ?", []any{"http%"}},
		{&stats.WithoutImage, "image_512 IS NULL OR image_512 = ''", nil},
	}
	for _, c := range counts {
		if err := db.Session(&gorm.Session{}).Where(c.query, c.args...).Count(c.dest).Error; err != nil {
			return nil, translate(err, "image statistics")
		}
	}

	err := db.Session(&gorm.Session{}).
		Where("image_512 LIKE ?", "data:%").
		Order("id").
		Pluck("id", &stats.ProductIDsWithBase64).Error
	if err != nil {
		return nil, translate(err, "image statistics")
	}
	if stats.ProductIDsWithBase64 == nil {
		stats.ProductIDsWithBase64 = []uint{}
	}
	return stats, nil
}
