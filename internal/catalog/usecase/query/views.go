package query

import (
	"github.com/shopspring/decimal"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// ProductView is the list representation of a product
type ProductView struct {
	ID                uint                `json:"id"`
	Name              *string             `json:"name"`
	Barcode           *string             `json:"barcode"`
	Brand             *string             `json:"brand"`
	BrandID           *uint               `json:"brandId"`
	Categories        []uint              `json:"categories"`
	SalePrice         decimal.NullDecimal `json:"salePrice"`
	StockQuantity     int                 `json:"stockQuantity"`
	Image             *string             `json:"image"`
	InternalReference *string             `json:"internalReference"`
	StorehouseID      *uint               `json:"storehouseId"`
	EnMercadolibre    int                 `json:"enMercadolibre"`
	VisibleEcommerce  int                 `json:"visibleEcommerce"`
}

// NewProductView maps a product and its category ids
func NewProductView(p domain.Product, categoryIDs []uint) ProductView {
	if categoryIDs == nil {
		categoryIDs = []uint{}
	}
	return ProductView{
		ID:                p.ID,
		Name:              p.Name,
		Barcode:           p.Barcode,
		Brand:             p.Brand,
		BrandID:           p.BrandID,
		Categories:        categoryIDs,
		SalePrice:         p.SalePrice,
		StockQuantity:     p.StockQuantity,
		Image:             p.Image,
		InternalReference: p.InternalReference,
		StorehouseID:      p.StorehouseID,
		EnMercadolibre:    p.EnMercadolibre,
		VisibleEcommerce:  p.VisibleEcommerce,
	}
}

// NewProductViews maps products without category ids
func NewProductViews(products []domain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p, nil))
	}
	return views
}

// Page is a slice of products plus the reported total
type Page struct {
	Products []ProductView
	Total    int64
}
