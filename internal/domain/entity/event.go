package entity

import (
	"strings"
	"time"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
)

// Event is a simple titled record with free-form details
type Event struct {
	ID        uint64    // Database identifier
	Title     string    // Short human-readable title
	Details   string    // Free-form description, may be empty
	CreatedAt time.Time // When the event was created
	UpdatedAt time.Time // When the event was last updated
}

// NewEvent creates an event with a non-empty title
func NewEvent(title, details string, timeProvider coreport.TimeProvider) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errs.ErrValidation
	}

	now := timeProvider.Now()
	return &Event{
		Title:     title,
		Details:   details,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update applies new title and details, keeping the old title when the
// new one is blank
func (e *Event) Update(title, details string, timeProvider coreport.TimeProvider) {
	title = strings.TrimSpace(title)
	if title != "" {
		e.Title = title
	}
	e.Details = details
	e.UpdatedAt = timeProvider.Now()
}
