package domain

import "context"

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)
	FindByIDs(ctx context.Context, ids []uint, window Window) ([]Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	Find(ctx context.Context, pred Predicate, window Window) ([]Product, error)
	Count(ctx context.Context, pred Predicate) (int64, error)
	Update(ctx context.Context, product *Product) error
	UpdateImage(ctx context.Context, id uint, ref *string) error
	UpdateGallery(ctx context.Context, id uint, images []string) error

	// Inline image migration
	FindInlineImageIDs(ctx context.Context, limit int) ([]uint, error)
	CountInlineImages(ctx context.Context) (int64, error)
	ImageStats(ctx context.Context) (*ImageStats, error)
}

// ProductCategoryRepository manages product/category associations
type ProductCategoryRepository interface {
	ProductIDsByCategory(ctx context.Context, categoryID uint) ([]uint, error)
	CategoryIDsByProduct(ctx context.Context, productID uint) ([]uint, error)
	Add(ctx context.Context, productID uint, categoryIDs []uint) error
	Remove(ctx context.Context, productID, categoryID uint) error
	Replace(ctx context.Context, productID uint, categoryIDs []uint) error
}

// BrandRepository defines the contract for brand data access
type BrandRepository interface {
	Create(ctx context.Context, brand *Brand) error
	FindByID(ctx context.Context, id uint) (*Brand, error)
	FindBySlug(ctx context.Context, slug string) (*Brand, error)
	List(ctx context.Context, includeInactive bool) ([]Brand, error)
	Update(ctx context.Context, brand *Brand) error
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Category, error)
	List(ctx context.Context, includeInactive bool) ([]Category, error)
	Update(ctx context.Context, category *Category) error
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id uint, password string) error
}

// ListingCache caches read-mostly listings. Implementations treat every
// failure as a miss.
type ListingCache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
	InvalidatePrefix(ctx context.Context, prefix string)
}
