package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Login godoc
// @Summary Dashboard login
// @Description Authenticate an administrator and get a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{success=bool,data=object{token=string,user=object}}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /login [post]
func (h *CatalogHandler) LoginDoc() {}

// SearchProductsSimple godoc
// @Summary Search products by barcode or name
// @Description Exact barcode match (data is null on a miss) or up to 20 name substring matches
// @Tags Products
// @Produce json
// @Param barcode query string false "Exact barcode"
// @Param name query string false "Name substring"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /products/search [get]
func (h *CatalogHandler) SearchProductsSimpleDoc() {}

// SearchProducts godoc
// @Summary Advanced product search
// @Description Filter by combined term, name, barcode, brand, category and marketplace flag
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{query=string,name=string,barcode=string,brandId=int,categoryId=int,enMercadolibre=int,limit=int,offset=int} true "Search filters"
// @Success 200 {object} object{success=bool,data=[]object,total=int}
// @Failure 400 {object} Response
// @Router /products/search-advanced [post]
func (h *CatalogHandler) SearchProductsDoc() {}

// CreateProduct godoc
// @Summary Create a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,barcode=string,salePrice=number,stockQuantity=int,brandId=int,categoryIds=[]int} true "Product data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /productsTNT [post]
func (h *CatalogHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Partially update a product
// @Description Only supplied fields change; categoryIds replaces the association set
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,salePrice=number,stockQuantity=int,brandId=int,image=string,visibleEcommerce=int,categoryIds=[]int} true "Fields to update"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /v2/products/{id} [put]
func (h *CatalogHandler) UpdateProductDoc() {}

// GetProduct godoc
// @Summary Get product details
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /v2/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// ProductsByCategory godoc
// @Summary List products of a category
// @Tags Products
// @Produce json
// @Param categoryId path int true "Category ID"
// @Param limit query int false "Limit (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=[]object,total=int}
// @Router /v2/products/by-category/{categoryId} [get]
func (h *CatalogHandler) ProductsByCategoryDoc() {}

// ListBrands godoc
// @Summary List brands
// @Tags Brands
// @Produce json
// @Param includeInactive query bool false "Include deactivated brands"
// @Success 200 {object} Response
// @Router /v2/brands [get]
func (h *CatalogHandler) ListBrandsDoc() {}

// CreateBrand godoc
// @Summary Create a brand
// @Description The slug is derived from the name when omitted
// @Tags Brands
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,slug=string} true "Brand data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Router /v2/brands [post]
func (h *CatalogHandler) CreateBrandDoc() {}

// ListCategories godoc
// @Summary List categories
// @Description Nested forest by default, flat list with flat=true
// @Tags Categories
// @Produce json
// @Param flat query bool false "Flat list"
// @Param includeInactive query bool false "Include deactivated categories"
// @Success 200 {object} Response
// @Router /v2/categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}

// UploadProductImage godoc
// @Summary Upload the primary product image
// @Tags Images
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /v2/products/{id}/image [post]
func (h *CatalogHandler) UploadProductImageDoc() {}

// MigrateProductImages godoc
// @Summary Migrate inline images to object storage
// @Description Processes one batch; repeat until remaining is 0
// @Tags Images
// @Security BearerAuth
// @Produce json
// @Param batch query int false "Batch size (default 5)"
// @Success 200 {object} object{success=bool,migrated=int,processed=int,remaining=int}
// @Failure 503 {object} Response
// @Router /migrate/product-images [post]
func (h *CatalogHandler) MigrateProductImagesDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *CatalogHandler) HealthCheckDoc() {}
