package usecase

import (
	"context"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
)

// EventUseCase defines CRUD operations for events
type EventUseCase interface {
	// Create stores a new event
	Create(ctx context.Context, title, details string) (*entity.Event, error)

	// Get retrieves an event by ID
	Get(ctx context.Context, eventID uint64) (*entity.Event, error)

	// List returns all events
	List(ctx context.Context) ([]*entity.Event, error)

	// Update changes an existing event's title and details
	Update(ctx context.Context, eventID uint64, title, details string) (*entity.Event, error)

	// Delete removes an event
	Delete(ctx context.Context, eventID uint64) error
}
