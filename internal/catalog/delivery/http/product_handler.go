package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/internal/catalog/usecase/command"
	"github.com/tair/catalog-service/internal/catalog/usecase/query"
)

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.queries.ListProducts.Handle(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	h.metrics.setTotalProducts(len(products))
	respondData(w, http.StatusOK, products)
}

// SearchProductsSimple handles GET /products/search
func (h *CatalogHandler) SearchProductsSimple(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.SimpleSearch.Handle(r.Context(), query.SimpleSearchQuery{
		Barcode: r.URL.Query().Get("barcode"),
		Name:    r.URL.Query().Get("name"),
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	if result.ByBarcode {
		if result.Product == nil {
			respondJSON(w, http.StatusOK, nullData{Success: true})
			return
		}
		respondData(w, http.StatusOK, result.Product)
		return
	}
	respondData(w, http.StatusOK, result.Products)
}

// CheckBarcode handles GET /products/check-barcode/{barcode}
func (h *CatalogHandler) CheckBarcode(w http.ResponseWriter, r *http.Request) {
	check, err := h.queries.CheckBarcode.Handle(r.Context(), mux.Vars(r)["barcode"])
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"exists":    check.Exists,
		"productId": check.ProductID,
	})
}

// SearchProducts handles POST /products/search-advanced
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	var req query.SearchProductsQuery
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	page, err := h.queries.SearchProducts.Handle(r.Context(), req)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondPage(w, page.Products, page.Total)
}

type createProductRequest struct {
	Name              string           `json:"name" validate:"required"`
	Barcode           string           `json:"barcode" validate:"required"`
	Brand             *string          `json:"brand"`
	BrandID           *uint            `json:"brandId"`
	SalePrice         *decimal.Decimal `json:"salePrice"`
	StockQuantity     int              `json:"stockQuantity"`
	Image             *string          `json:"image"`
	InternalReference *string          `json:"internalReference"`
	StorehouseID      *uint            `json:"storehouseId"`
	EnMercadolibre    int              `json:"enMercadolibre"`
	VisibleEcommerce  int              `json:"visibleEcommerce"`
	CategoryIDs       []uint           `json:"categoryIds"`
}

// CreateProduct handles POST /productsTNT
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	principal, _ := PrincipalFromContext(r.Context())
	view, err := h.commands.CreateProduct.Handle(r.Context(), command.CreateProductCommand{
		Name:              req.Name,
		Barcode:           req.Barcode,
		SalePrice:         req.SalePrice,
		StockQuantity:     req.StockQuantity,
		Brand:             req.Brand,
		BrandID:           req.BrandID,
		Image:             req.Image,
		InternalReference: req.InternalReference,
		StorehouseID:      req.StorehouseID,
		EnMercadolibre:    req.EnMercadolibre,
		VisibleEcommerce:  req.VisibleEcommerce,
		CategoryIDs:       req.CategoryIDs,
		CreatedBy:         principal.Email,
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusCreated, view)
}

// productPatchRequest carries every patchable field; each route copies the
// subset it accepts
type productPatchRequest struct {
	Name             domain.Optional[string]              `json:"name"`
	SalePrice        domain.Optional[decimal.NullDecimal] `json:"salePrice"`
	StockQuantity    domain.Optional[int]                 `json:"stockQuantity"`
	BrandID          domain.Optional[*uint]               `json:"brandId"`
	Image            domain.Optional[*string]             `json:"image"`
	EnMercadolibre   domain.Optional[int]                 `json:"enMercadolibre"`
	VisibleEcommerce domain.Optional[int]                 `json:"visibleEcommerce"`
	CategoryIDs      domain.Optional[[]uint]              `json:"categoryIds"`
}

func (h *CatalogHandler) patchProduct(w http.ResponseWriter, r *http.Request, build func(productPatchRequest) command.ProductPatch) (*query.ProductView, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return nil, false
	}

	var req productPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return nil, false
	}

	principal, _ := PrincipalFromContext(r.Context())
	view, err := h.commands.UpdateProduct.Handle(r.Context(), command.UpdateProductCommand{
		ID:    id,
		Patch: build(req),
		Actor: principal.Email,
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return nil, false
	}
	return view, true
}

// EditProduct handles PUT /editProductTNT/{id}
func (h *CatalogHandler) EditProduct(w http.ResponseWriter, r *http.Request) {
	view, ok := h.patchProduct(w, r, func(req productPatchRequest) command.ProductPatch {
		return command.ProductPatch{
			Name:             req.Name,
			SalePrice:        req.SalePrice,
			StockQuantity:    req.StockQuantity,
			Image:            req.Image,
			EnMercadolibre:   req.EnMercadolibre,
			VisibleEcommerce: req.VisibleEcommerce,
		}
	})
	if ok {
		respondData(w, http.StatusOK, view)
	}
}

// UpdateProductFlags handles PUT /products/{id}
func (h *CatalogHandler) UpdateProductFlags(w http.ResponseWriter, r *http.Request) {
	_, ok := h.patchProduct(w, r, func(req productPatchRequest) command.ProductPatch {
		return command.ProductPatch{
			EnMercadolibre:   req.EnMercadolibre,
			VisibleEcommerce: req.VisibleEcommerce,
		}
	})
	if ok {
		respondJSON(w, http.StatusOK, Response{Success: true})
	}
}

// UpdateProduct handles PUT /v2/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	view, ok := h.patchProduct(w, r, func(req productPatchRequest) command.ProductPatch {
		return command.ProductPatch{
			Name:             req.Name,
			SalePrice:        req.SalePrice,
			StockQuantity:    req.StockQuantity,
			BrandID:          req.BrandID,
			Image:            req.Image,
			VisibleEcommerce: req.VisibleEcommerce,
			CategoryIDs:      req.CategoryIDs,
		}
	})
	if ok {
		respondData(w, http.StatusOK, view)
	}
}

// GetProduct handles GET /v2/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	detail, err := h.queries.GetProduct.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, detail)
}

func (h *CatalogHandler) relationQuery(r *http.Request, idVar string) (query.ProductsByRelationQuery, error) {
	id, err := pathID(r, idVar)
	if err != nil {
		return query.ProductsByRelationQuery{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return query.ProductsByRelationQuery{}, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return query.ProductsByRelationQuery{}, err
	}
	return query.ProductsByRelationQuery{ID: id, Limit: limit, Offset: offset}, nil
}

// ProductsByCategory handles GET /v2/products/by-category/{categoryId}
func (h *CatalogHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	q, err := h.relationQuery(r, "categoryId")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	page, err := h.queries.ProductsByCategory.Handle(r.Context(), q)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondPage(w, page.Products, page.Total)
}

// ProductsByBrand handles GET /v2/products/by-brand/{brandId}
func (h *CatalogHandler) ProductsByBrand(w http.ResponseWriter, r *http.Request) {
	q, err := h.relationQuery(r, "brandId")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	page, err := h.queries.ProductsByBrand.Handle(r.Context(), q)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondPage(w, page.Products, page.Total)
}

type addCategoriesRequest struct {
	CategoryIDs []uint `json:"categoryIds"`
}

// AddProductCategories handles POST /v2/products/{id}/categories
func (h *CatalogHandler) AddProductCategories(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	var req addCategoriesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	ids, err := h.commands.ProductCategories.Add(r.Context(), command.AddProductCategoriesCommand{
		ProductID:   id,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, map[string][]uint{"categories": ids})
}

// RemoveProductCategory handles DELETE /v2/products/{id}/categories/{categoryId}
func (h *CatalogHandler) RemoveProductCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	if err := h.commands.ProductCategories.Remove(r.Context(), id, categoryID); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondMessage(w, "category removed from product")
}
