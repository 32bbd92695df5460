package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/internal/catalog/usecase/command"
	"github.com/tair/catalog-service/internal/catalog/usecase/query"
)

// UploadBrandImage handles POST /v2/brands/{id}/image
func (h *CatalogHandler) UploadBrandImage(w http.ResponseWriter, r *http.Request) {
	id, upload, ok := h.imageRequest(w, r)
	if !ok {
		return
	}

	brand, err := h.commands.Images.SetBrandImage(r.Context(), id, upload)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]*string{"imageUrl": brand.ImageURL})
}

// DeleteBrandImage handles DELETE /v2/brands/{id}/image
func (h *CatalogHandler) DeleteBrandImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	if err := h.commands.Images.RemoveBrandImage(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondMessage(w, "image removed")
}

// UploadCategoryImage handles POST /v2/categories/{id}/image
func (h *CatalogHandler) UploadCategoryImage(w http.ResponseWriter, r *http.Request) {
	id, upload, ok := h.imageRequest(w, r)
	if !ok {
		return
	}

	category, err := h.commands.Images.SetCategoryImage(r.Context(), id, upload)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]*string{"imageUrl": category.ImageURL})
}

// DeleteCategoryImage handles DELETE /v2/categories/{id}/image
func (h *CatalogHandler) DeleteCategoryImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	if err := h.commands.Images.RemoveCategoryImage(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondMessage(w, "image removed")
}

// UploadProductImage handles POST /v2/products/{id}/image
func (h *CatalogHandler) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	id, upload, ok := h.imageRequest(w, r)
	if !ok {
		return
	}

	ref, err := h.commands.Images.SetProductImage(r.Context(), id, upload)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]string{"image": ref})
}

// DeleteProductImage handles DELETE /v2/products/{id}/image
func (h *CatalogHandler) DeleteProductImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	if err := h.commands.Images.RemoveProductImage(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondMessage(w, "image removed")
}

// GetGallery handles GET /v2/products/{id}/images
func (h *CatalogHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	images, err := h.queries.GetGallery.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, images)
}

// AddGalleryImage handles POST /v2/products/{id}/images
func (h *CatalogHandler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, upload, ok := h.imageRequest(w, r)
	if !ok {
		return
	}

	images, err := h.commands.Gallery.Add(r.Context(), id, upload)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, map[string][]string{"images": images})
}

// RemoveGalleryImage handles DELETE /v2/products/{id}/images/{index}
func (h *CatalogHandler) RemoveGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		respondErr(r.Context(), w, fmt.Errorf("%w: invalid image index", domain.ErrValidation))
		return
	}

	images, err := h.commands.Gallery.Remove(r.Context(), id, index)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, map[string][]string{"images": images})
}

// ClearGallery handles DELETE /v2/products/{id}/images
func (h *CatalogHandler) ClearGallery(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	if err := h.commands.Gallery.Clear(r.Context(), id); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondMessage(w, "gallery cleared")
}

// MigrateProductImages handles POST /migrate/product-images
func (h *CatalogHandler) MigrateProductImages(w http.ResponseWriter, r *http.Request) {
	batch, err := queryInt(r, "batch")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	cmd := command.MigrateProductImagesCommand{}
	if batch != nil {
		cmd.Batch = *batch
	}

	result, err := h.commands.MigrateImages.Handle(r.Context(), cmd)
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	h.metrics.recordMigration(result.Migrated, len(result.Errors))
	body := map[string]any{
		"success":   true,
		"migrated":  result.Migrated,
		"processed": result.Processed,
		"remaining": result.Remaining,
	}
	if len(result.Errors) > 0 {
		body["errors"] = result.Errors
	}
	respondJSON(w, http.StatusOK, body)
}

// ImageMigrationStatus handles GET /migrate/product-images/status
func (h *CatalogHandler) ImageMigrationStatus(w http.ResponseWriter, r *http.Request) {
	stats, err := h.queries.ImageStatus.Handle(r.Context())
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, stats)
}

// imageRequest parses the id path variable and the multipart image
func (h *CatalogHandler) imageRequest(w http.ResponseWriter, r *http.Request) (uint, command.ImageUpload, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return 0, command.ImageUpload{}, false
	}

	upload, err := readImage(r)
	if err != nil {
		respondErr(r.Context(), w, err)
		return 0, command.ImageUpload{}, false
	}
	return id, upload, true
}
