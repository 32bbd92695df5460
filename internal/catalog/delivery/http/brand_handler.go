package http

import (
	"net/http"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/internal/catalog/usecase/command"
	"github.com/tair/catalog-service/internal/catalog/usecase/query"
)

// ListBrands handles GET /v2/brands
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.queries.ListBrands.Handle(r.Context(), query.ListBrandsQuery{
		IncludeInactive: queryBool(r, "includeInactive"),
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, brands)
}

// GetBrand handles GET /v2/brands/{id}
func (h *CatalogHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	brand, err := h.queries.GetBrand.Handle(r.Context(), query.GetBrandQuery{ID: id})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, brand)
}

type createBrandRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug"`
}

// CreateBrand handles POST /v2/brands
func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req createBrandRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	brand, err := h.commands.CreateBrand.Handle(r.Context(), command.CreateBrandCommand{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusCreated, brand)
}

type updateBrandRequest struct {
	Name         domain.Optional[string] `json:"name"`
	Slug         domain.Optional[string] `json:"slug"`
	IsVisibleWeb domain.Optional[int]    `json:"isVisibleWeb"`
}

// UpdateBrand handles PUT /v2/brands/{id}
func (h *CatalogHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	var req updateBrandRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	brand, err := h.commands.UpdateBrand.Handle(r.Context(), command.UpdateBrandCommand{
		ID:           id,
		Name:         req.Name,
		Slug:         req.Slug,
		IsVisibleWeb: req.IsVisibleWeb,
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, brand)
}

// DeactivateBrand handles DELETE /v2/brands/{id}
func (h *CatalogHandler) DeactivateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	if err := h.commands.DeactivateBrand.Handle(r.Context(), command.DeactivateBrandCommand{ID: id}); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondMessage(w, "brand deactivated")
}
