package http

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/catalogtest"
	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/internal/catalog/events"
	"github.com/tair/catalog-service/internal/catalog/usecase/command"
	"github.com/tair/catalog-service/internal/catalog/usecase/query"
	"github.com/tair/catalog-service/pkg/auth"
	"github.com/tair/catalog-service/pkg/cache"
	"github.com/tair/catalog-service/pkg/storage"
)

type testServer struct {
	handler http.Handler
	db      *gorm.DB
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := catalogtest.NewDB(t)
	repos := catalogtest.NewRepos(db)

	jwtManager, err := auth.NewJWTManager("http-test-secret", 0)
	require.NoError(t, err)

	var listings *cache.Cache
	publisher := events.NopPublisher{}
	store := storage.NewInlineStore()

	queries := Queries{
		ListProducts:       query.NewListProductsHandler(repos.Products),
		SimpleSearch:       query.NewSimpleSearchHandler(repos.Products, repos.ProductCategories),
		CheckBarcode:       query.NewCheckBarcodeHandler(repos.Products),
		SearchProducts:     query.NewSearchProductsHandler(repos.Products, repos.ProductCategories),
		GetProduct:         query.NewGetProductHandler(repos.Products, repos.Brands, repos.Categories, repos.ProductCategories),
		GetGallery:         query.NewGetGalleryHandler(repos.Products),
		ProductsByCategory: query.NewProductsByCategoryHandler(repos.Products, repos.ProductCategories),
		ProductsByBrand:    query.NewProductsByBrandHandler(repos.Products),
		ListBrands:         query.NewListBrandsHandler(repos.Brands, listings),
		GetBrand:           query.NewGetBrandHandler(repos.Brands),
		ListCategories:     query.NewListCategoriesHandler(repos.Categories, listings),
		GetCategory:        query.NewGetCategoryHandler(repos.Categories),
		ImageStatus:        query.NewImageMigrationStatusHandler(repos.Products),
	}
	commands := Commands{
		Login:              command.NewLoginHandler(repos.Users, jwtManager),
		CreateProduct:      command.NewCreateProductHandler(repos.Products, repos.ProductCategories, publisher),
		UpdateProduct:      command.NewUpdateProductHandler(repos.Products, repos.ProductCategories, publisher),
		ProductCategories:  command.NewProductCategoriesHandler(repos.Products, repos.ProductCategories),
		CreateBrand:        command.NewCreateBrandHandler(repos.Brands, listings, publisher),
		UpdateBrand:        command.NewUpdateBrandHandler(repos.Brands, listings, publisher),
		DeactivateBrand:    command.NewDeactivateBrandHandler(repos.Brands, listings, publisher),
		CreateCategory:     command.NewCreateCategoryHandler(repos.Categories, listings, publisher),
		UpdateCategory:     command.NewUpdateCategoryHandler(repos.Categories, listings, publisher),
		DeactivateCategory: command.NewDeactivateCategoryHandler(repos.Categories, listings, publisher),
		Images:             command.NewImageHandler(store, repos.Brands, repos.Categories, repos.Products, listings, publisher),
		Gallery:            command.NewGalleryHandler(store, repos.Products),
		MigrateImages:      command.NewMigrateProductImagesHandler(store, repos.Products, publisher),
	}

	h := NewCatalogHandler(queries, commands, jwtManager, NewMetrics(prometheus.NewRegistry()))
	router := NewRouter(h, RouterOptions{Health: HealthCheck(db)})

	token, err := jwtManager.GenerateToken(auth.Principal{ID: 1, Email: "admin@example.com", Role: auth.RoleAdmin})
	require.NoError(t, err)

	return &testServer{handler: router, db: db, token: token}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Total   *int64          `json:"total"`
}

func (s *testServer) do(t *testing.T, method, path, body string, authenticated bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	return s.serve(t, req)
}

func (s *testServer) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	hashed, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	catalogtest.User(t, s.db, "admin@example.com", hashed, "admin")
	catalogtest.User(t, s.db, "clerk@example.com", hashed, "cashier")

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"success", `{"email":"admin@example.com","password":"s3cret"}`, http.StatusOK},
		{"missing password", `{"email":"admin@example.com"}`, http.StatusBadRequest},
		{"bad password", `{"email":"admin@example.com","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"email":"ghost@example.com","password":"s3cret"}`, http.StatusUnauthorized},
		{"not admin", `{"email":"clerk@example.com","password":"s3cret"}`, http.StatusForbidden},
		{"malformed body", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(t, http.MethodPost, "/login", tt.body, false)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, env.Success)
			if tt.wantStatus == http.StatusOK {
				var data struct {
					Token string `json:"token"`
					User  struct {
						Email string `json:"email"`
					} `json:"user"`
				}
				require.NoError(t, json.Unmarshal(env.Data, &data))
				assert.NotEmpty(t, data.Token)
				assert.Equal(t, "admin@example.com", data.User.Email)
			} else {
				assert.NotEmpty(t, env.Error)
			}
		})
	}
}

func TestMutatingRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/v2/brands", `{"name":"Acme"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)

	req := httptest.NewRequest(http.MethodPost, "/v2/brands", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec, _ = s.serve(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// reads stay public
	rec, _ = s.do(t, http.MethodGet, "/v2/brands", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateBrand_SlugAndConflict(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/v2/brands", `{"name":"Acme"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	var brand domain.Brand
	require.NoError(t, json.Unmarshal(env.Data, &brand))
	assert.Equal(t, "acme", brand.Slug)

	rec, env = s.do(t, http.MethodPost, "/v2/brands", `{"name":"Acme"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "acme")
}

func TestSearchAdvanced_CombinedTerm(t *testing.T) {
	s := newTestServer(t)
	a := catalogtest.Product(t, s.db, "Widget", "0000123")
	b := catalogtest.Product(t, s.db, "Item 123", "999")
	catalogtest.Product(t, s.db, "Other", "555")

	rec, env := s.do(t, http.MethodPost, "/products/search-advanced", `{"query":"123","name":"nothing-matches"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []query.ProductView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	ids := []uint{}
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	assert.ElementsMatch(t, []uint{a.ID, b.ID}, ids)
	require.NotNil(t, env.Total)
	assert.Equal(t, int64(2), *env.Total)
}

func TestProductsByCategory_Total(t *testing.T) {
	s := newTestServer(t)
	category := catalogtest.Category(t, s.db, "Tools", "tools", nil)
	var ids []uint
	for i := 0; i < 3; i++ {
		ids = append(ids, catalogtest.Product(t, s.db, fmt.Sprintf("P%d", i), fmt.Sprintf("b%d", i)).ID)
	}
	catalogtest.Associate(t, s.db, category.ID, ids...)

	rec, env := s.do(t, http.MethodGet, fmt.Sprintf("/v2/products/by-category/%d?limit=2", category.ID), "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []query.ProductView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, 2)
	require.NotNil(t, env.Total)
	assert.Equal(t, int64(3), *env.Total)
}

func TestSimpleSearch_BarcodeMissIsNull(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/products/search?barcode=nope", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"success":true,"data":null}`, rec.Body.String())

	rec, _ = s.do(t, http.MethodGet, "/products/search", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckBarcode(t *testing.T) {
	s := newTestServer(t)
	p := catalogtest.Product(t, s.db, "Widget", "750")

	rec, _ := s.do(t, http.MethodGet, "/products/check-barcode/750", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"success":true,"exists":true,"productId":%d}`, p.ID), rec.Body.String())
}

func TestProductLifecycle(t *testing.T) {
	s := newTestServer(t)
	tools := catalogtest.Category(t, s.db, "Tools", "tools", nil)

	rec, env := s.do(t, http.MethodPost, "/productsTNT",
		fmt.Sprintf(`{"name":"Hammer","barcode":"h-1","salePrice":12.5,"categoryIds":[%d]}`, tools.ID), true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created query.ProductView
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, []uint{tools.ID}, created.Categories)

	rec, _ = s.do(t, http.MethodPost, "/productsTNT", `{"name":"Copy","barcode":"h-1"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/productsTNT", `{"name":"No barcode"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodPut, fmt.Sprintf("/products/%d", created.ID), `{"enMercadolibre":1}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec, env = s.do(t, http.MethodPut, fmt.Sprintf("/editProductTNT/%d", created.ID), `{"stockQuantity":4}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var edited query.ProductView
	require.NoError(t, json.Unmarshal(env.Data, &edited))
	assert.Equal(t, 4, edited.StockQuantity)
	assert.Equal(t, 1, edited.EnMercadolibre)
	assert.Equal(t, "Hammer", *edited.Name)

	rec, env = s.do(t, http.MethodPut, fmt.Sprintf("/v2/products/%d", created.ID), `{"categoryIds":[]}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated query.ProductView
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Empty(t, updated.Categories)

	rec, env = s.do(t, http.MethodGet, fmt.Sprintf("/v2/products/%d", created.ID), "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail query.ProductDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Nil(t, detail.BrandInfo)
	assert.Equal(t, []string{}, detail.Images)

	rec, _ = s.do(t, http.MethodPut, "/editProductTNT/9999", `{"name":"x"}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/v2/products/9999", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryRoutes(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/v2/categories", `{"name":"Tools"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	var root domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &root))

	rec, _ = s.do(t, http.MethodPost, "/v2/categories", fmt.Sprintf(`{"name":"Drills","parentId":%d}`, root.ID), true)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/v2/categories", `{"name":"Orphan","parentId":4242}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodPut, fmt.Sprintf("/v2/categories/%d", root.ID), fmt.Sprintf(`{"parentId":%d}`, root.ID), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, env = s.do(t, http.MethodGet, "/v2/categories", "", false)
	var tree []query.CategoryNode
	require.NoError(t, json.Unmarshal(env.Data, &tree))
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "drills", tree[0].Children[0].Slug)

	_, env = s.do(t, http.MethodGet, "/v2/categories?flat=true", "", false)
	var flat []domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &flat))
	assert.Len(t, flat, 2)

	rec, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/v2/categories/%d", root.ID), "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, fmt.Sprintf("/v2/categories/%d", root.ID), "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, env = s.do(t, http.MethodGet, "/v2/categories?flat=true", "", false)
	require.NoError(t, json.Unmarshal(env.Data, &flat))
	assert.Len(t, flat, 1)

	rec, _ = s.do(t, http.MethodDelete, "/v2/categories/4242", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func multipartImage(t *testing.T, path, token string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nrest"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestProductImageAndGallery(t *testing.T) {
	s := newTestServer(t)
	p := catalogtest.Product(t, s.db, "Rake", "r-1")

	rec, env := s.serve(t, multipartImage(t, fmt.Sprintf("/v2/products/%d/image", p.ID), s.token))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, strings.HasPrefix(data["image"], "data:image/png;base64,"))

	for i := 0; i < domain.MaxGalleryImages; i++ {
		rec, _ = s.serve(t, multipartImage(t, fmt.Sprintf("/v2/products/%d/images", p.ID), s.token))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec, _ = s.serve(t, multipartImage(t, fmt.Sprintf("/v2/products/%d/images", p.ID), s.token))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/v2/products/%d/images/9", p.ID), "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/v2/products/%d/images/0", p.ID), "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, env = s.do(t, http.MethodGet, fmt.Sprintf("/v2/products/%d/images", p.ID), "", false)
	var images []string
	require.NoError(t, json.Unmarshal(env.Data, &images))
	assert.Len(t, images, domain.MaxGalleryImages-1)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/v2/products/%d/image", p.ID), strings.NewReader("x"))
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec, _ = s.serve(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMigration_RequiresObjectStorage(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/migrate/product-images?batch=2", "", true)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, env.Success)

	rec, env = s.do(t, http.MethodGet, "/migrate/product-images/status", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats domain.ImageStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, []uint{}, stats.ProductIDsWithBase64)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/does-not-exist", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "route not found", env.Error)
}

func TestHealthAndHeaders(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: x", domain.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: x", domain.ErrConflict), http.StatusBadRequest},
		{fmt.Errorf("%w: x", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: x", domain.ErrUnauthenticated), http.StatusUnauthorized},
		{fmt.Errorf("%w: x", domain.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: x", domain.ErrUnavailable), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestRespondErr_HidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	respondErr(httptest.NewRequest(http.MethodGet, "/", nil).Context(), rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"internal server error"}`, rec.Body.String())
}
