package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/model"
)

// EventRepository implements the event persistence port using GORM
type EventRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewEventRepository creates a new EventRepository instance
func NewEventRepository(db *gorm.DB, logger coreport.Logger) *EventRepository {
	return &EventRepository{
		db:     db,
		logger: logger,
	}
}

// modelToEntity converts an event model to an entity
func (r *EventRepository) modelToEntity(eventModel *model.Event) *entity.Event {
	return &entity.Event{
		ID:        eventModel.ID,
		Title:     eventModel.Title,
		Details:   eventModel.Details,
		CreatedAt: eventModel.CreatedAt,
		UpdatedAt: eventModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *EventRepository) handleDatabaseError(operation string, err error, eventID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrEventNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"event_id": eventID,
		"error":    err.Error(),
	})

	if isConnectionError(err) {
		return errs.ErrDatabaseConnection
	}

	return err
}

// Create persists a new event
func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventModel := &model.Event{
		Title:     event.Title,
		Details:   event.Details,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(eventModel).Error; err != nil {
		return r.handleDatabaseError("creating event", err, 0)
	}

	event.ID = eventModel.ID
	return nil
}

// GetByID retrieves an event by its numeric ID
func (r *EventRepository) GetByID(ctx context.Context, eventID uint64) (*entity.Event, error) {
	var eventModel model.Event
	if err := r.db.WithContext(ctx).First(&eventModel, eventID).Error; err != nil {
		return nil, r.handleDatabaseError("getting event", err, eventID)
	}

	return r.modelToEntity(&eventModel), nil
}

// List returns all events ordered by ID
func (r *EventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	var eventModels []model.Event
	if err := r.db.WithContext(ctx).Order("id").Find(&eventModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing events", err, 0)
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, r.modelToEntity(&eventModels[i]))
	}
	return events, nil
}

// Update persists changes to an existing event
func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	result := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"title":      event.Title,
			"details":    event.Details,
			"updated_at": event.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating event", result.Error, event.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrEventNotFound
	}
	return nil
}

// Delete removes an event by its numeric ID
func (r *EventRepository) Delete(ctx context.Context, eventID uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Event{}, eventID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting event", result.Error, eventID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrEventNotFound
	}
	return nil
}
