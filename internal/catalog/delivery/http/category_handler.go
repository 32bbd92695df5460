package http

import (
	"net/http"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/internal/catalog/usecase/command"
	"github.com/tair/catalog-service/internal/catalog/usecase/query"
)

// ListCategories handles GET /v2/categories. The nested forest is returned
// unless flat=true.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.queries.ListCategories.Handle(r.Context(), query.ListCategoriesQuery{
		Flat:            queryBool(r, "flat"),
		IncludeInactive: queryBool(r, "includeInactive"),
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, categories)
}

// GetCategory handles GET /v2/categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	category, err := h.queries.GetCategory.Handle(r.Context(), query.GetCategoryQuery{ID: id})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, category)
}

type createCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Slug     string `json:"slug"`
	ParentID *uint  `json:"parentId"`
}

// CreateCategory handles POST /v2/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	category, err := h.commands.CreateCategory.Handle(r.Context(), command.CreateCategoryCommand{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusCreated, category)
}

type updateCategoryRequest struct {
	Name     domain.Optional[string] `json:"name"`
	Slug     domain.Optional[string] `json:"slug"`
	ParentID domain.Optional[*uint]  `json:"parentId"`
}

// UpdateCategory handles PUT /v2/categories/{id}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	var req updateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	category, err := h.commands.UpdateCategory.Handle(r.Context(), command.UpdateCategoryCommand{
		ID:       id,
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondData(w, http.StatusOK, category)
}

// DeactivateCategory handles DELETE /v2/categories/{id}
func (h *CatalogHandler) DeactivateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	if err := h.commands.DeactivateCategory.Handle(r.Context(), command.DeactivateCategoryCommand{ID: id}); err != nil {
		respondErr(r.Context(), w, err)
		return
	}

	respondMessage(w, "category deactivated")
}
