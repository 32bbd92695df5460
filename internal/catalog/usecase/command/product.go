package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/internal/catalog/usecase/query"
	"github.com/tair/catalog-service/pkg/logger"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	Name              string
	Barcode           string
	SalePrice         *decimal.Decimal
	Cost              *decimal.Decimal
	StockQuantity     int
	Brand             *string
	BrandID           *uint
	Image             *string
	InternalReference *string
	StorehouseID      *uint
	EnMercadolibre    int
	VisibleEcommerce  int
	CategoryIDs       []uint
	CreatedBy         string
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	products     domain.ProductRepository
	associations domain.ProductCategoryRepository
	events       domain.EventPublisher
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(
	products domain.ProductRepository,
	associations domain.ProductCategoryRepository,
	events domain.EventPublisher,
) *CreateProductHandler {
	return &CreateProductHandler{products: products, associations: associations, events: events}
}

// Handle executes the create product command. Category associations are
// written after the product row and are not rolled back with it.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*query.ProductView, error) {
	if cmd.Name == "" || cmd.Barcode == "" {
		return nil, fmt.Errorf("%w: name and barcode are required", domain.ErrValidation)
	}

	if _, err := h.products.FindByBarcode(ctx, cmd.Barcode); err == nil {
		return nil, fmt.Errorf("%w: a product with barcode %q already exists", domain.ErrConflict, cmd.Barcode)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	product := &domain.Product{
		Name:              &cmd.Name,
		Barcode:           &cmd.Barcode,
		StockQuantity:     cmd.StockQuantity,
		Cost:              decimal.Zero,
		SalePrice:         decimal.NewNullDecimal(decimal.Zero),
		Brand:             cmd.Brand,
		BrandID:           cmd.BrandID,
		Image:             cmd.Image,
		InternalReference: cmd.InternalReference,
		StorehouseID:      cmd.StorehouseID,
		EnMercadolibre:    cmd.EnMercadolibre,
		VisibleEcommerce:  cmd.VisibleEcommerce,
	}
	if cmd.SalePrice != nil {
		product.SalePrice = decimal.NewNullDecimal(*cmd.SalePrice)
	}
	if cmd.Cost != nil {
		product.Cost = *cmd.Cost
	}
	if product.StorehouseID == nil {
		storehouse := domain.DefaultStorehouseID
		product.StorehouseID = &storehouse
	}
	if cmd.CreatedBy != "" {
		product.CreatedBy = &cmd.CreatedBy
	}

	if err := h.products.Create(ctx, product); err != nil {
		return nil, err
	}

	categoryIDs := uniqueIDs(cmd.CategoryIDs)
	if len(categoryIDs) > 0 {
		if err := h.associations.Add(ctx, product.ID, categoryIDs); err != nil {
			logger.Error(ctx).Err(err).Uint("product_id", product.ID).Msg("Product created without its categories")
			return nil, err
		}
	}

	event := domain.NewEvent(domain.EventProductCreated, product.ID, product)
	event.Actor = cmd.CreatedBy
	h.events.Publish(ctx, event)

	view := query.NewProductView(*product, categoryIDs)
	return &view, nil
}

// ProductPatch lists the product fields a partial update may touch
type ProductPatch struct {
	Name             domain.Optional[string]
	SalePrice        domain.Optional[decimal.NullDecimal]
	StockQuantity    domain.Optional[int]
	BrandID          domain.Optional[*uint]
	Image            domain.Optional[*string]
	EnMercadolibre   domain.Optional[int]
	VisibleEcommerce domain.Optional[int]
	// CategoryIDs replaces the association set when set
	CategoryIDs domain.Optional[[]uint]
}

// UpdateProductCommand represents a partial product update
type UpdateProductCommand struct {
	ID    uint
	Patch ProductPatch
	Actor string
}

// UpdateProductHandler handles partial product updates
type UpdateProductHandler struct {
	products     domain.ProductRepository
	associations domain.ProductCategoryRepository
	events       domain.EventPublisher
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(
	products domain.ProductRepository,
	associations domain.ProductCategoryRepository,
	events domain.EventPublisher,
) *UpdateProductHandler {
	return &UpdateProductHandler{products: products, associations: associations, events: events}
}

// Handle applies the supplied fields and returns the stored product
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*query.ProductView, error) {
	product, err := h.products.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch
	if name, ok := patch.Name.Get(); ok {
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		product.Name = &name
	}
	patch.SalePrice.Apply(&product.SalePrice)
	patch.StockQuantity.Apply(&product.StockQuantity)
	patch.BrandID.Apply(&product.BrandID)
	patch.Image.Apply(&product.Image)
	patch.EnMercadolibre.Apply(&product.EnMercadolibre)
	patch.VisibleEcommerce.Apply(&product.VisibleEcommerce)

	if err := h.products.Update(ctx, product); err != nil {
		return nil, err
	}

	if ids, ok := patch.CategoryIDs.Get(); ok {
		if err := h.associations.Replace(ctx, product.ID, uniqueIDs(ids)); err != nil {
			return nil, err
		}
	}

	categoryIDs, err := h.associations.CategoryIDsByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	event := domain.NewEvent(domain.EventProductUpdated, product.ID, product)
	event.Actor = cmd.Actor
	h.events.Publish(ctx, event)

	view := query.NewProductView(*product, categoryIDs)
	return &view, nil
}

// AddProductCategoriesCommand associates a product with categories
type AddProductCategoriesCommand struct {
	ProductID   uint
	CategoryIDs []uint
}

// ProductCategoriesHandler handles association changes
type ProductCategoriesHandler struct {
	products     domain.ProductRepository
	associations domain.ProductCategoryRepository
}

// NewProductCategoriesHandler creates a new association handler
func NewProductCategoriesHandler(products domain.ProductRepository, associations domain.ProductCategoryRepository) *ProductCategoriesHandler {
	return &ProductCategoriesHandler{products: products, associations: associations}
}

// Add inserts the associations that are not already present and returns
// the resulting category ids
func (h *ProductCategoriesHandler) Add(ctx context.Context, cmd AddProductCategoriesCommand) ([]uint, error) {
	ids := uniqueIDs(cmd.CategoryIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: categoryIds cannot be empty", domain.ErrValidation)
	}
	if _, err := h.products.FindByID(ctx, cmd.ProductID); err != nil {
		return nil, err
	}
	if err := h.associations.Add(ctx, cmd.ProductID, ids); err != nil {
		return nil, err
	}
	return h.associations.CategoryIDsByProduct(ctx, cmd.ProductID)
}

// Remove drops one association. Removing a missing association is not an error.
func (h *ProductCategoriesHandler) Remove(ctx context.Context, productID, categoryID uint) error {
	return h.associations.Remove(ctx, productID, categoryID)
}

// uniqueIDs drops zeros and duplicates, keeping the first occurrence order
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
