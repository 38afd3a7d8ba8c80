package entity

import (
	"fmt"
	"time"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
)

// TransactionType represents the kind of ledger entry
type TransactionType string

// Transaction types
const (
	TypeDeposit         TransactionType = "deposit"
	TypeCostPrediction  TransactionType = "cost_prediction"
	TypeAdminAdjustment TransactionType = "admin_adjustment"
)

// Transaction represents a single entry in a user's credit ledger.
// Debits carry a negative AmountInCents, credits a positive one.
type Transaction struct {
	ID            uint64          // Database identifier
	UserID        uint64          // ID of the user this entry belongs to
	TransactionID string          // Unique, collision-resistant string identifier
	Type          TransactionType // Kind of entry (deposit/cost_prediction/admin_adjustment)
	AmountInCents int64           // Signed amount in cents
	ResultBalance string          // Balance after this entry was applied
	CreatedAt     time.Time       // When the entry was created
}

// NewTransaction creates a new ledger entry with basic validation.
// amountInCents is signed: negative for debits, positive for credits.
func NewTransaction(
	userID uint64,
	transactionID string,
	transactionType string,
	amountInCents int64,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if transactionID == "" {
		return nil, fmt.Errorf("%w: empty transaction ID", errs.ErrValidation)
	}
	if !isValidTransactionType(transactionType) {
		return nil, fmt.Errorf("%w: unknown transaction type %s", errs.ErrValidation, transactionType)
	}

	return &Transaction{
		UserID:        userID,
		TransactionID: transactionID,
		Type:          TransactionType(transactionType),
		AmountInCents: amountInCents,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// Amount returns the signed amount as a string with 2 decimal places
func (t *Transaction) Amount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// IsCredit returns true if this entry increased the user's balance
func (t *Transaction) IsCredit() bool {
	return t.AmountInCents > 0
}

// IsDebit returns true if this entry decreased the user's balance
func (t *Transaction) IsDebit() bool {
	return t.AmountInCents < 0
}

// isValidTransactionType validates if the transaction type is allowed
func isValidTransactionType(transactionType string) bool {
	return transactionType == string(TypeDeposit) ||
		transactionType == string(TypeCostPrediction) ||
		transactionType == string(TypeAdminAdjustment)
}
