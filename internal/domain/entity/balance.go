package entity

import (
	"time"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
)

// Balance holds a user's credit, stored in cents to avoid floating
// point precision issues
type Balance struct {
	UserID        uint64    // Owner of the balance
	AmountInCents int64     // Current credit in cents
	CreatedAt     time.Time // When the balance row was created
	UpdatedAt     time.Time // When the balance was last changed
}

// NewBalance creates a zero balance for the given user
func NewBalance(userID uint64, timeProvider coreport.TimeProvider) (*Balance, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &Balance{
		UserID:        userID,
		AmountInCents: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Amount returns the balance as a string with 2 decimal places
func (b *Balance) Amount() string {
	return AmountInCentsToString(b.AmountInCents)
}

// CanDeduct checks whether the balance covers a debit of the given size
func (b *Balance) CanDeduct(amountInCents int64) bool {
	return b.AmountInCents >= amountInCents
}
