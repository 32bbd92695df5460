package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/usecase/command"
	"github.com/tair/catalog-service/internal/catalog/usecase/query"
)

// Queries bundles the read side handlers
type Queries struct {
	ListProducts       *query.ListProductsHandler
	SimpleSearch       *query.SimpleSearchHandler
	CheckBarcode       *query.CheckBarcodeHandler
	SearchProducts     *query.SearchProductsHandler
	GetProduct         *query.GetProductHandler
	GetGallery         *query.GetGalleryHandler
	ProductsByCategory *query.ProductsByCategoryHandler
	ProductsByBrand    *query.ProductsByBrandHandler
	ListBrands         *query.ListBrandsHandler
	GetBrand           *query.GetBrandHandler
	ListCategories     *query.ListCategoriesHandler
	GetCategory        *query.GetCategoryHandler
	ImageStatus        *query.ImageMigrationStatusHandler
}

// Commands bundles the write side handlers
type Commands struct {
	Login              *command.LoginHandler
	CreateProduct      *command.CreateProductHandler
	UpdateProduct      *command.UpdateProductHandler
	ProductCategories  *command.ProductCategoriesHandler
	CreateBrand        *command.CreateBrandHandler
	UpdateBrand        *command.UpdateBrandHandler
	DeactivateBrand    *command.DeactivateBrandHandler
	CreateCategory     *command.CreateCategoryHandler
	UpdateCategory     *command.UpdateCategoryHandler
	DeactivateCategory *command.DeactivateCategoryHandler
	Images             *command.ImageHandler
	Gallery            *command.GalleryHandler
	MigrateImages      *command.MigrateProductImagesHandler
}

// CatalogHandler handles HTTP requests for the catalog
type CatalogHandler struct {
	queries  Queries
	commands Commands
	auth     func(http.HandlerFunc) http.HandlerFunc
	metrics  *Metrics
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(queries Queries, commands Commands, tokens TokenValidator, metrics *Metrics) *CatalogHandler {
	return &CatalogHandler{
		queries:  queries,
		commands: commands,
		auth:     AuthMiddleware(tokens),
		metrics:  metrics,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	public := func(path, method string, fn http.HandlerFunc) {
		router.HandleFunc(path, h.metrics.middleware(path, fn)).Methods(method)
	}
	private := func(path, method string, fn http.HandlerFunc) {
		router.HandleFunc(path, h.metrics.middleware(path, h.auth(fn))).Methods(method)
	}

	public("/", http.MethodGet, h.Root)
	public("/login", http.MethodPost, h.Login)

	// Legacy product routes; literal paths before {id}
	public("/products", http.MethodGet, h.ListProducts)
	public("/products/search", http.MethodGet, h.SearchProductsSimple)
	public("/products/check-barcode/{barcode}", http.MethodGet, h.CheckBarcode)
	public("/products/search-advanced", http.MethodPost, h.SearchProducts)
	private("/productsTNT", http.MethodPost, h.CreateProduct)
	private("/editProductTNT/{id}", http.MethodPut, h.EditProduct)
	private("/products/{id}", http.MethodPut, h.UpdateProductFlags)

	// Brands
	public("/v2/brands", http.MethodGet, h.ListBrands)
	public("/v2/brands/{id}", http.MethodGet, h.GetBrand)
	private("/v2/brands", http.MethodPost, h.CreateBrand)
	private("/v2/brands/{id}", http.MethodPut, h.UpdateBrand)
	private("/v2/brands/{id}", http.MethodDelete, h.DeactivateBrand)
	private("/v2/brands/{id}/image", http.MethodPost, h.UploadBrandImage)
	private("/v2/brands/{id}/image", http.MethodDelete, h.DeleteBrandImage)

	// Categories
	public("/v2/categories", http.MethodGet, h.ListCategories)
	public("/v2/categories/{id}", http.MethodGet, h.GetCategory)
	private("/v2/categories", http.MethodPost, h.CreateCategory)
	private("/v2/categories/{id}", http.MethodPut, h.UpdateCategory)
	private("/v2/categories/{id}", http.MethodDelete, h.DeactivateCategory)
	private("/v2/categories/{id}/image", http.MethodPost, h.UploadCategoryImage)
	private("/v2/categories/{id}/image", http.MethodDelete, h.DeleteCategoryImage)

	// Products v2
	public("/v2/products/by-category/{categoryId}", http.MethodGet, h.ProductsByCategory)
	public("/v2/products/by-brand/{brandId}", http.MethodGet, h.ProductsByBrand)
	public("/v2/products/{id}", http.MethodGet, h.GetProduct)
	private("/v2/products/{id}", http.MethodPut, h.UpdateProduct)
	private("/v2/products/{id}/categories", http.MethodPost, h.AddProductCategories)
	private("/v2/products/{id}/categories/{categoryId}", http.MethodDelete, h.RemoveProductCategory)
	private("/v2/products/{id}/image", http.MethodPost, h.UploadProductImage)
	private("/v2/products/{id}/image", http.MethodDelete, h.DeleteProductImage)
	public("/v2/products/{id}/images", http.MethodGet, h.GetGallery)
	private("/v2/products/{id}/images", http.MethodPost, h.AddGalleryImage)
	private("/v2/products/{id}/images", http.MethodDelete, h.ClearGallery)
	private("/v2/products/{id}/images/{index}", http.MethodDelete, h.RemoveGalleryImage)

	// Image migration
	private("/migrate/product-images", http.MethodPost, h.MigrateProductImages)
	private("/migrate/product-images/status", http.MethodGet, h.ImageMigrationStatus)
}

// Root handles GET /
func (h *CatalogHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"name":    "catalog-service",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"auth":       "/login",
			"products":   "/products, /productsTNT, /editProductTNT/{id}",
			"brands":     "/v2/brands",
			"categories": "/v2/categories",
			"productsV2": "/v2/products",
			"migration":  "/migrate/product-images",
		},
	})
}

// HealthCheck handles GET /health
func HealthCheck(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}
