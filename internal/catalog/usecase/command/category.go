package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name     string
	Slug     string
	ParentID *uint
}

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	repo   domain.CategoryRepository
	cache  domain.ListingCache
	events domain.EventPublisher
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository, cache domain.ListingCache, events domain.EventPublisher) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo, cache: cache, events: events}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	slug, err := resolveSlug(cmd.Slug, cmd.Name)
	if err != nil {
		return nil, err
	}

	if _, err := h.repo.FindBySlug(ctx, slug); err == nil {
		return nil, fmt.Errorf("%w: a category with slug %q already exists", domain.ErrConflict, slug)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	parentID := cmd.ParentID
	if parentID != nil && *parentID == 0 {
		parentID = nil
	}
	if err := h.checkParent(ctx, parentID); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:     cmd.Name,
		Slug:     slug,
		ParentID: parentID,
		IsActive: domain.StatusActive,
	}
	if err := h.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	h.cache.InvalidatePrefix(ctx, domain.CacheCategories)
	h.events.Publish(ctx, domain.NewEvent(domain.EventCategoryCreated, category.ID, category))
	return category, nil
}

func (h *CreateCategoryHandler) checkParent(ctx context.Context, parentID *uint) error {
	return checkParent(ctx, h.repo, parentID)
}

// UpdateCategoryCommand represents a partial category update. ParentID set
// to nil moves the category to the root.
type UpdateCategoryCommand struct {
	ID       uint
	Name     domain.Optional[string]
	Slug     domain.Optional[string]
	ParentID domain.Optional[*uint]
}

// UpdateCategoryHandler handles category updates
type UpdateCategoryHandler struct {
	repo   domain.CategoryRepository
	cache  domain.ListingCache
	events domain.EventPublisher
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository, cache domain.ListingCache, events domain.EventPublisher) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo, cache: cache, events: events}
}

// Handle executes the update category command. A category cannot become its
// own parent; longer cycles are not detected here.
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	category, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if name, ok := cmd.Name.Get(); ok {
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		category.Name = name
	}

	if slug, ok := cmd.Slug.Get(); ok && slug != category.Slug {
		if slug == "" {
			return nil, fmt.Errorf("%w: slug cannot be empty", domain.ErrValidation)
		}
		if other, err := h.repo.FindBySlug(ctx, slug); err == nil && other.ID != category.ID {
			return nil, fmt.Errorf("%w: a category with slug %q already exists", domain.ErrConflict, slug)
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		category.Slug = slug
	}

	if parentID, ok := cmd.ParentID.Get(); ok {
		if parentID != nil && *parentID == 0 {
			parentID = nil
		}
		if parentID != nil && *parentID == category.ID {
			return nil, fmt.Errorf("%w: a category cannot be its own parent", domain.ErrValidation)
		}
		if err := checkParent(ctx, h.repo, parentID); err != nil {
			return nil, err
		}
		category.ParentID = parentID
	}

	if err := h.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	h.cache.InvalidatePrefix(ctx, domain.CacheCategories)
	h.events.Publish(ctx, domain.NewEvent(domain.EventCategoryUpdated, category.ID, category))
	return category, nil
}

// DeactivateCategoryCommand soft-deletes a category
type DeactivateCategoryCommand struct {
	ID uint
}

// DeactivateCategoryHandler handles category deactivation
type DeactivateCategoryHandler struct {
	repo   domain.CategoryRepository
	cache  domain.ListingCache
	events domain.EventPublisher
}

// NewDeactivateCategoryHandler creates a new deactivate category handler
func NewDeactivateCategoryHandler(repo domain.CategoryRepository, cache domain.ListingCache, events domain.EventPublisher) *DeactivateCategoryHandler {
	return &DeactivateCategoryHandler{repo: repo, cache: cache, events: events}
}

// Handle executes the deactivate category command. Children and product
// associations are left untouched.
func (h *DeactivateCategoryHandler) Handle(ctx context.Context, cmd DeactivateCategoryCommand) error {
	category, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	category.IsActive = domain.StatusInactive
	if err := h.repo.Update(ctx, category); err != nil {
		return err
	}

	h.cache.InvalidatePrefix(ctx, domain.CacheCategories)
	h.events.Publish(ctx, domain.NewEvent(domain.EventCategoryDeactivated, category.ID, nil))
	return nil
}

func checkParent(ctx context.Context, repo domain.CategoryRepository, parentID *uint) error {
	if parentID == nil {
		return nil
	}
	_, err := repo.FindByID(ctx, *parentID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: parent category %d does not exist", domain.ErrValidation, *parentID)
	}
	return err
}
