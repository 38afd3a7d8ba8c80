package persistence

import (
	"context"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
)

// EventRepository defines the persistence operations for events
type EventRepository interface {
	// Create persists a new event
	Create(ctx context.Context, event *entity.Event) error

	// GetByID retrieves an event by its numeric ID
	GetByID(ctx context.Context, eventID uint64) (*entity.Event, error)

	// List returns all events ordered by ID
	List(ctx context.Context) ([]*entity.Event, error)

	// Update persists changes to an existing event
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes an event by its numeric ID
	Delete(ctx context.Context, eventID uint64) error
}
