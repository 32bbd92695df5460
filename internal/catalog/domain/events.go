package domain

import (
	"context"
	"time"
)

// Event types published after successful writes
const (
	EventProductCreated       = "catalog.product.created"
	EventProductUpdated       = "catalog.product.updated"
	EventProductImageMigrated = "catalog.product.image_migrated"
	EventBrandCreated         = "catalog.brand.created"
	EventBrandUpdated         = "catalog.brand.updated"
	EventBrandDeactivated     = "catalog.brand.deactivated"
	EventCategoryCreated      = "catalog.category.created"
	EventCategoryUpdated      = "catalog.category.updated"
	EventCategoryDeactivated  = "catalog.category.deactivated"
)

// Event is a catalog change notification
type Event struct {
	Type      string    `json:"type"`
	EntityID  uint      `json:"entity_id"`
	Actor     string    `json:"actor,omitempty"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent creates an event stamped with the current time
func NewEvent(eventType string, entityID uint, payload any) Event {
	return Event{
		Type:      eventType,
		EntityID:  entityID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// EventPublisher publishes catalog events. Publishing is best-effort:
// implementations log failures and never return them to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}
