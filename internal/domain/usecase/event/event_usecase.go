package event

import (
	"context"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/persistence"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
)

// EventUseCase implements event CRUD
type EventUseCase struct {
	eventRepo    persistence.EventRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEventUseCase creates a new event use case instance
func NewEventUseCase(
	eventRepo persistence.EventRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.EventUseCase {
	return &EventUseCase{
		eventRepo:    eventRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create stores a new event
func (e *EventUseCase) Create(ctx context.Context, title, details string) (*entity.Event, error) {
	event, err := entity.NewEvent(title, details, e.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := e.eventRepo.Create(ctx, event); err != nil {
		e.logger.Error("Failed to create event", map[string]any{
			"title": title,
			"error": err.Error(),
		})
		return nil, err
	}

	e.logger.Info("Event created", map[string]any{
		"eventId": event.ID,
		"title":   event.Title,
	})

	return event, nil
}

// Get retrieves an event by ID
func (e *EventUseCase) Get(ctx context.Context, eventID uint64) (*entity.Event, error) {
	if eventID == 0 {
		return nil, errs.ErrEventNotFound
	}
	return e.eventRepo.GetByID(ctx, eventID)
}

// List returns all events
func (e *EventUseCase) List(ctx context.Context) ([]*entity.Event, error) {
	return e.eventRepo.List(ctx)
}

// Update changes an existing event's title and details
func (e *EventUseCase) Update(ctx context.Context, eventID uint64, title, details string) (*entity.Event, error) {
	event, err := e.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	event.Update(title, details, e.timeProvider)

	if err := e.eventRepo.Update(ctx, event); err != nil {
		e.logger.Error("Failed to update event", map[string]any{
			"eventId": eventID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return event, nil
}

// Delete removes an event
func (e *EventUseCase) Delete(ctx context.Context, eventID uint64) error {
	if _, err := e.Get(ctx, eventID); err != nil {
		return err
	}

	if err := e.eventRepo.Delete(ctx, eventID); err != nil {
		e.logger.Error("Failed to delete event", map[string]any{
			"eventId": eventID,
			"error":   err.Error(),
		})
		return err
	}

	e.logger.Info("Event deleted", map[string]any{
		"eventId": eventID,
	})

	return nil
}
