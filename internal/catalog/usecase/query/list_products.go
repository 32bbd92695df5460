package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// NameSearchLimit caps simple name searches
const NameSearchLimit = 20

// ListProductsHandler lists every product ordered by name
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context) ([]ProductView, error) {
	products, err := h.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return NewProductViews(products), nil
}

// SimpleSearchQuery searches by exact barcode or by name substring.
// Barcode wins when both are given.
type SimpleSearchQuery struct {
	Barcode string
	Name    string
}

// SimpleSearchResult holds either the barcode match or the name matches
type SimpleSearchResult struct {
	ByBarcode bool
	Product   *ProductView
	Products  []ProductView
}

// SimpleSearchHandler handles the barcode/name search
type SimpleSearchHandler struct {
	products     domain.ProductRepository
	associations domain.ProductCategoryRepository
}

// NewSimpleSearchHandler creates a new simple search handler
func NewSimpleSearchHandler(products domain.ProductRepository, associations domain.ProductCategoryRepository) *SimpleSearchHandler {
	return &SimpleSearchHandler{products: products, associations: associations}
}

// Handle executes the simple search. A barcode miss is not an error; the
// result then carries a nil Product.
func (h *SimpleSearchHandler) Handle(ctx context.Context, q SimpleSearchQuery) (*SimpleSearchResult, error) {
	switch {
	case q.Barcode != "":
		product, err := h.products.FindByBarcode(ctx, q.Barcode)
		if errors.Is(err, domain.ErrNotFound) {
			return &SimpleSearchResult{ByBarcode: true}, nil
		}
		if err != nil {
			return nil, err
		}

		categoryIDs, err := h.associations.CategoryIDsByProduct(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		view := NewProductView(*product, categoryIDs)
		return &SimpleSearchResult{ByBarcode: true, Product: &view}, nil

	case q.Name != "":
		pred := domain.Contains{Column: domain.ColumnName, Term: q.Name}
		products, err := h.products.Find(ctx, pred, domain.Window{Limit: NameSearchLimit})
		if err != nil {
			return nil, err
		}
		return &SimpleSearchResult{Products: NewProductViews(products)}, nil

	default:
		return nil, fmt.Errorf("%w: barcode or name is required", domain.ErrValidation)
	}
}

// BarcodeCheck reports whether a barcode is taken
type BarcodeCheck struct {
	Exists    bool  `json:"exists"`
	ProductID *uint `json:"productId"`
}

// CheckBarcodeHandler handles barcode availability checks
type CheckBarcodeHandler struct {
	repo domain.ProductRepository
}

// NewCheckBarcodeHandler creates a new check barcode handler
func NewCheckBarcodeHandler(repo domain.ProductRepository) *CheckBarcodeHandler {
	return &CheckBarcodeHandler{repo: repo}
}

// Handle executes the barcode check
func (h *CheckBarcodeHandler) Handle(ctx context.Context, barcode string) (*BarcodeCheck, error) {
	product, err := h.repo.FindByBarcode(ctx, barcode)
	if errors.Is(err, domain.ErrNotFound) {
		return &BarcodeCheck{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &BarcodeCheck{Exists: true, ProductID: &product.ID}, nil
}
