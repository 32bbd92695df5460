package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// CreateBrandCommand represents the command to create a brand
type CreateBrandCommand struct {
	Name string
	Slug string
}

// CreateBrandHandler handles brand creation
type CreateBrandHandler struct {
	repo   domain.BrandRepository
	cache  domain.ListingCache
	events domain.EventPublisher
}

// NewCreateBrandHandler creates a new create brand handler
func NewCreateBrandHandler(repo domain.BrandRepository, cache domain.ListingCache, events domain.EventPublisher) *CreateBrandHandler {
	return &CreateBrandHandler{repo: repo, cache: cache, events: events}
}

// Handle executes the create brand command. The slug is derived from the
// name when not supplied.
func (h *CreateBrandHandler) Handle(ctx context.Context, cmd CreateBrandCommand) (*domain.Brand, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	slug, err := resolveSlug(cmd.Slug, cmd.Name)
	if err != nil {
		return nil, err
	}

	if _, err := h.repo.FindBySlug(ctx, slug); err == nil {
		return nil, fmt.Errorf("%w: a brand with slug %q already exists", domain.ErrConflict, slug)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	brand := &domain.Brand{
		Name:         cmd.Name,
		Slug:         slug,
		IsActive:     domain.StatusActive,
		IsVisibleWeb: 1,
	}
	if err := h.repo.Create(ctx, brand); err != nil {
		return nil, err
	}

	h.cache.InvalidatePrefix(ctx, domain.CacheBrands)
	h.events.Publish(ctx, domain.NewEvent(domain.EventBrandCreated, brand.ID, brand))
	return brand, nil
}

// UpdateBrandCommand represents a partial brand update
type UpdateBrandCommand struct {
	ID           uint
	Name         domain.Optional[string]
	Slug         domain.Optional[string]
	IsVisibleWeb domain.Optional[int]
}

// UpdateBrandHandler handles brand updates
type UpdateBrandHandler struct {
	repo   domain.BrandRepository
	cache  domain.ListingCache
	events domain.EventPublisher
}

// NewUpdateBrandHandler creates a new update brand handler
func NewUpdateBrandHandler(repo domain.BrandRepository, cache domain.ListingCache, events domain.EventPublisher) *UpdateBrandHandler {
	return &UpdateBrandHandler{repo: repo, cache: cache, events: events}
}

// Handle executes the update brand command
func (h *UpdateBrandHandler) Handle(ctx context.Context, cmd UpdateBrandCommand) (*domain.Brand, error) {
	brand, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if name, ok := cmd.Name.Get(); ok {
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		brand.Name = name
	}

	if slug, ok := cmd.Slug.Get(); ok && slug != brand.Slug {
		if slug == "" {
			return nil, fmt.Errorf("%w: slug cannot be empty", domain.ErrValidation)
		}
		if other, err := h.repo.FindBySlug(ctx, slug); err == nil && other.ID != brand.ID {
			return nil, fmt.Errorf("%w: a brand with slug %q already exists", domain.ErrConflict, slug)
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		brand.Slug = slug
	}

	cmd.IsVisibleWeb.Apply(&brand.IsVisibleWeb)

	if err := h.repo.Update(ctx, brand); err != nil {
		return nil, err
	}

	h.cache.InvalidatePrefix(ctx, domain.CacheBrands)
	h.events.Publish(ctx, domain.NewEvent(domain.EventBrandUpdated, brand.ID, brand))
	return brand, nil
}

// DeactivateBrandCommand soft-deletes a brand
type DeactivateBrandCommand struct {
	ID uint
}

// DeactivateBrandHandler handles brand deactivation
type DeactivateBrandHandler struct {
	repo   domain.BrandRepository
	cache  domain.ListingCache
	events domain.EventPublisher
}

// NewDeactivateBrandHandler creates a new deactivate brand handler
func NewDeactivateBrandHandler(repo domain.BrandRepository, cache domain.ListingCache, events domain.EventPublisher) *DeactivateBrandHandler {
	return &DeactivateBrandHandler{repo: repo, cache: cache, events: events}
}

// Handle executes the deactivate brand command
func (h *DeactivateBrandHandler) Handle(ctx context.Context, cmd DeactivateBrandCommand) error {
	brand, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	brand.IsActive = domain.StatusInactive
	if err := h.repo.Update(ctx, brand); err != nil {
		return err
	}

	h.cache.InvalidatePrefix(ctx, domain.CacheBrands)
	h.events.Publish(ctx, domain.NewEvent(domain.EventBrandDeactivated, brand.ID, nil))
	return nil
}

// resolveSlug returns the explicit slug or one derived from name
func resolveSlug(explicit, name string) (string, error) {
	slug := explicit
	if slug == "" {
		slug = domain.Slugify(name)
	}
	if slug == "" {
		return "", fmt.Errorf("%w: cannot derive a slug from %q", domain.ErrValidation, name)
	}
	return slug, nil
}
