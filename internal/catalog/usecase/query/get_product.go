package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// BrandInfo is the brand summary embedded in product details
type BrandInfo struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

// CategoryRef is the category summary embedded in product details
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductDetail is the full representation of a product
type ProductDetail struct {
	ID                uint                `json:"id"`
	Name              *string             `json:"name"`
	Barcode           *string             `json:"barcode"`
	SalePrice         decimal.NullDecimal `json:"salePrice"`
	StockQuantity     int                 `json:"stockQuantity"`
	Image             *string             `json:"image"`
	BrandID           *uint               `json:"brandId"`
	BrandInfo         *BrandInfo          `json:"brandInfo"`
	Categories        []CategoryRef       `json:"categories"`
	InternalReference *string             `json:"internalReference"`
	StorehouseID      *uint               `json:"storehouseId"`
	EnMercadolibre    int                 `json:"enMercadolibre"`
	VisibleEcommerce  int                 `json:"visibleEcommerce"`
	Images            []string            `json:"images"`
}

// GetProductQuery represents the query to get a product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler assembles product details
type GetProductHandler struct {
	products     domain.ProductRepository
	brands       domain.BrandRepository
	categories   domain.CategoryRepository
	associations domain.ProductCategoryRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(
	products domain.ProductRepository,
	brands domain.BrandRepository,
	categories domain.CategoryRepository,
	associations domain.ProductCategoryRepository,
) *GetProductHandler {
	return &GetProductHandler{
		products:     products,
		brands:       brands,
		categories:   categories,
		associations: associations,
	}
}

// Handle executes the get product query. A dangling brand reference yields
// a nil BrandInfo rather than an error.
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*ProductDetail, error) {
	product, err := h.products.FindByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetail{
		ID:                product.ID,
		Name:              product.Name,
		Barcode:           product.Barcode,
		SalePrice:         product.SalePrice,
		StockQuantity:     product.StockQuantity,
		Image:             product.Image,
		BrandID:           product.BrandID,
		Categories:        []CategoryRef{},
		InternalReference: product.InternalReference,
		StorehouseID:      product.StorehouseID,
		EnMercadolibre:    product.EnMercadolibre,
		VisibleEcommerce:  product.VisibleEcommerce,
		Images:            product.Gallery(),
	}

	if product.BrandID != nil {
		brand, err := h.brands.FindByID(ctx, *product.BrandID)
		switch {
		case err == nil:
			detail.BrandInfo = &BrandInfo{ID: brand.ID, Name: brand.Name, ImageURL: brand.ImageURL}
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("failed to load brand: %w", err)
		}
	}

	categoryIDs, err := h.associations.CategoryIDsByProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product categories: %w", err)
	}
	categories, err := h.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load product categories: %w", err)
	}
	for _, c := range categories {
		detail.Categories = append(detail.Categories, CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}

	return detail, nil
}

// GetGalleryHandler returns a product's gallery images
type GetGalleryHandler struct {
	repo domain.ProductRepository
}

// NewGetGalleryHandler creates a new get gallery handler
func NewGetGalleryHandler(repo domain.ProductRepository) *GetGalleryHandler {
	return &GetGalleryHandler{repo: repo}
}

// Handle executes the gallery query
func (h *GetGalleryHandler) Handle(ctx context.Context, q GetProductQuery) ([]string, error) {
	product, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	return product.Gallery(), nil
}
