package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/catalog-service/internal/catalog/catalogtest"
	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/storage"
)

func newImageHandler(t *testing.T, store storage.ImageStore) (*ImageHandler, catalogtest.Repos, *catalogTestData) {
	t.Helper()
	db := catalogtest.NewDB(t)
	repos := catalogtest.NewRepos(db)
	data := &catalogTestData{
		brand:    catalogtest.Brand(t, db, "Acme", "acme"),
		category: catalogtest.Category(t, db, "Tools", "tools", nil),
		product:  catalogtest.Product(t, db, "Rake", "r-1"),
	}
	h := NewImageHandler(store, repos.Brands, repos.Categories, repos.Products, noCache, &recordingPublisher{})
	return h, repos, data
}

type catalogTestData struct {
	brand    *domain.Brand
	category *domain.Category
	product  *domain.Product
}

func TestImageHandler_BrandReplacesPrevious(t *testing.T) {
	store := newMemoryStore(true)
	h, _, data := newImageHandler(t, store)
	ctx := context.Background()

	first, err := h.SetBrandImage(ctx, data.brand.ID, pngUpload)
	require.NoError(t, err)
	firstRef := *first.ImageURL
	assert.True(t, strings.HasPrefix(firstRef, "https://cdn.example.com/brands/"))

	second, err := h.SetBrandImage(ctx, data.brand.ID, pngUpload)
	require.NoError(t, err)
	assert.NotEqual(t, firstRef, *second.ImageURL)
	assert.Equal(t, []string{firstRef}, store.deleted)

	require.NoError(t, h.RemoveBrandImage(ctx, data.brand.ID))
	assert.Equal(t, []string{firstRef, *second.ImageURL}, store.deleted)
}

func TestImageHandler_InlineCategory(t *testing.T) {
	h, repos, data := newImageHandler(t, newMemoryStore(false))
	ctx := context.Background()

	category, err := h.SetCategoryImage(ctx, data.category.ID, pngUpload)
	require.NoError(t, err)
	assert.True(t, storage.IsDataURI(*category.ImageURL))

	require.NoError(t, h.RemoveCategoryImage(ctx, data.category.ID))
	stored, err := repos.Categories.FindByID(ctx, data.category.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ImageURL)
}

func TestImageHandler_Product(t *testing.T) {
	store := newMemoryStore(true)
	h, repos, data := newImageHandler(t, store)
	ctx := context.Background()

	ref, err := h.SetProductImage(ctx, data.product.ID, pngUpload)
	require.NoError(t, err)
	assert.Contains(t, ref, "/productos/")

	stored, err := repos.Products.FindByID(ctx, data.product.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Image)
	assert.Equal(t, ref, *stored.Image)

	require.NoError(t, h.RemoveProductImage(ctx, data.product.ID))
	stored, err = repos.Products.FindByID(ctx, data.product.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Image)
	assert.Equal(t, []string{ref}, store.deleted)
}

func TestImageHandler_Errors(t *testing.T) {
	store := newMemoryStore(true)
	h, _, data := newImageHandler(t, store)
	ctx := context.Background()

	_, err := h.SetBrandImage(ctx, data.brand.ID, ImageUpload{Filename: "empty.png"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.SetProductImage(ctx, 999, pngUpload)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, h.RemoveCategoryImage(ctx, 999), domain.ErrNotFound)

	store.fail = true
	_, err = h.SetCategoryImage(ctx, data.category.ID, pngUpload)
	assert.Error(t, err)
}

func TestGalleryHandler(t *testing.T) {
	db := catalogtest.NewDB(t)
	repos := catalogtest.NewRepos(db)
	p := catalogtest.Product(t, db, "Rake", "r-1")
	store := newMemoryStore(true)
	h := NewGalleryHandler(store, repos.Products)
	ctx := context.Background()

	var images []string
	for i := 0; i < domain.MaxGalleryImages; i++ {
		var err error
		images, err = h.Add(ctx, p.ID, pngUpload)
		require.NoError(t, err)
	}
	assert.Len(t, images, domain.MaxGalleryImages)

	_, err := h.Add(ctx, p.ID, pngUpload)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.Remove(ctx, p.ID, domain.MaxGalleryImages)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = h.Remove(ctx, p.ID, -1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	remaining, err := h.Remove(ctx, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{images[0], images[2], images[3]}, remaining)
	assert.Equal(t, []string{images[1]}, store.deleted)

	require.NoError(t, h.Clear(ctx, p.ID))
	stored, err := repos.Products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Gallery())
	assert.Len(t, store.deleted, 4)

	_, err = h.Add(ctx, 999, pngUpload)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
