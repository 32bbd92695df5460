package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are serialized as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Status is the lifecycle state of brands and categories. Deactivation only
// flips the flag; rows are never removed.
type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

// IsActive reports whether the status is Active
func (s Status) IsActive() bool {
	return s == StatusActive
}

// RoleAdmin is the only role allowed to log in to the dashboard
const RoleAdmin = "admin"

// Cache key namespaces for the listing cache
const (
	CacheBrands     = "catalog:brands"
	CacheCategories = "catalog:categories"
)

// MaxGalleryImages bounds Product.Images
const MaxGalleryImages = 4

// DefaultStorehouseID is assigned to products created without one
const DefaultStorehouseID uint = 1

// Product represents the product entity
type Product struct {
	ID                uint                `json:"id" gorm:"primaryKey"`
	Barcode           *string             `json:"barcode" gorm:"uniqueIndex"`
	Name              *string             `json:"name" gorm:"index"`
	StockQuantity     int                 `json:"stockQuantity" gorm:"not null"`
	Cost              decimal.Decimal     `json:"cost" gorm:"type:decimal(12,2);not null"`
	SalePrice         decimal.NullDecimal `json:"salePrice" gorm:"type:decimal(12,2)"`
	InternalReference *string             `json:"internalReference"`
	StorehouseID      *uint               `json:"storehouseId"`
	Image             *string             `json:"image" gorm:"column:image_512"`
	Brand             *string             `json:"brand"`
	BrandID           *uint               `json:"brandId" gorm:"index"`
	EnMercadolibre    int                 `json:"enMercadolibre" gorm:"column:en_mercadolibre;not null"`
	VisibleEcommerce  int                 `json:"visibleEcommerce" gorm:"not null"`
	Images            []string            `json:"images" gorm:"serializer:json;type:text"`
	CreatedBy         *string             `json:"createdBy,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Gallery returns the gallery images, never nil
func (p *Product) Gallery() []string {
	if p.Images == nil {
		return []string{}
	}
	return p.Images
}

// Brand represents a product brand
type Brand struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Slug         string    `json:"slug" gorm:"not null;uniqueIndex"`
	ImageURL     *string   `json:"imageUrl" gorm:"column:image_url"`
	IsActive     Status    `json:"isActive" gorm:"column:is_active;not null"`
	IsVisibleWeb int       `json:"isVisibleWeb" gorm:"column:is_visible_web;not null"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName specifies the table name
func (Brand) TableName() string {
	return "brands"
}

// Category is a node of the category forest. A nil ParentID marks a root.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex"`
	ImageURL  *string   `json:"imageUrl" gorm:"column:image_url"`
	ParentID  *uint     `json:"parentId" gorm:"index"`
	IsActive  Status    `json:"isActive" gorm:"column:is_active;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// ProductCategory is the product/category join row
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName specifies the table name
func (ProductCategory) TableName() string {
	return "product_categories"
}

// User is a dashboard account
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"`
	Role      *string   `json:"role"`
	Pin       *string   `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// RoleName returns the role or an empty string
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return *u.Role
}

// Models lists every persisted entity for schema migration
func Models() []any {
	return []any{&User{}, &Brand{}, &Category{}, &Product{}, &ProductCategory{}}
}

// ImageStats summarizes where primary product images live
type ImageStats struct {
	Total                int64  `json:"total"`
	WithBase64           int64  `json:"withBase64"`
	WithR2URL            int64  `json:"withR2Url"`
	WithoutImage         int64  `json:"withoutImage"`
	ProductIDsWithBase64 []uint `json:"productIdsWithBase64"`
}
