package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coremocks "github.com/dlevina/prediction-billing/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid input", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("Alice@Example.com", "alice", "hashed", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hashed", user.PasswordHash)
		assert.False(t, user.IsAdmin)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Username defaults to email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("bob@example.com", "  ", "hashed", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", user.Username)
	})

	t.Run("Invalid email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		for _, email := range []string{"", "plainaddress", "missing@tld", "@example.com", "user@.com"} {
			user, err := NewUser(email, "name", "hashed", mockTime)
			assert.Nil(t, user, "email: %s", email)
			assert.ErrorIs(t, err, errs.ErrInvalidEmail, "email: %s", email)
		}
	})

	t.Run("Missing password hash", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("carol@example.com", "carol", "", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.ErrorIs(t, ValidatePassword("short"), errs.ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword(""), errs.ErrWeakPassword)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("  User@Example.COM  "))
	assert.ErrorIs(t, ValidateEmail("not-an-email"), errs.ErrInvalidEmail)
}
