package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coremocks "github.com/dlevina/prediction-billing/mocks/port/core"
)

func TestNewBalance(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid user", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		balance, err := NewBalance(1, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), balance.UserID)
		assert.Equal(t, int64(0), balance.AmountInCents)
		assert.Equal(t, fixedTime, balance.CreatedAt)
		assert.Equal(t, fixedTime, balance.UpdatedAt)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		balance, err := NewBalance(0, mockTime)

		assert.Nil(t, balance)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestBalanceCanDeduct(t *testing.T) {
	balance := &Balance{UserID: 1, AmountInCents: 1000}

	assert.True(t, balance.CanDeduct(500))
	assert.True(t, balance.CanDeduct(1000))
	assert.False(t, balance.CanDeduct(1001))
}

func TestBalanceAmount(t *testing.T) {
	balance := &Balance{UserID: 1, AmountInCents: 1050}
	assert.Equal(t, "10.50", balance.Amount())

	empty := &Balance{UserID: 1}
	assert.Equal(t, "0.00", empty.Amount())
}
