package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coremocks "github.com/dlevina/prediction-billing/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid deposit", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(1, "txn-123", string(TypeDeposit), 1000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), txn.UserID)
		assert.Equal(t, "txn-123", txn.TransactionID)
		assert.Equal(t, TypeDeposit, txn.Type)
		assert.Equal(t, int64(1000), txn.AmountInCents)
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("Valid prediction charge", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		txn, err := NewTransaction(1, "txn-456", string(TypeCostPrediction), -1000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, TypeCostPrediction, txn.Type)
		assert.Equal(t, int64(-1000), txn.AmountInCents)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction(0, "txn-123", string(TypeDeposit), 1000, mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Empty transaction ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction(1, "", string(TypeDeposit), 1000, mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Unknown transaction type", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		txn, err := NewTransaction(1, "txn-123", "refund", 1000, mockTime)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestTransactionAmount(t *testing.T) {
	txn := &Transaction{AmountInCents: -1015}
	assert.Equal(t, "-10.15", txn.Amount())

	txn = &Transaction{AmountInCents: 500}
	assert.Equal(t, "5.00", txn.Amount())
}

func TestTransactionDirection(t *testing.T) {
	credit := &Transaction{AmountInCents: 1000}
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())

	debit := &Transaction{AmountInCents: -1000}
	assert.False(t, debit.IsCredit())
	assert.True(t, debit.IsDebit())

	zero := &Transaction{AmountInCents: 0}
	assert.False(t, zero.IsCredit())
	assert.False(t, zero.IsDebit())
}
