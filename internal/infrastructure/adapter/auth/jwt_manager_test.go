package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	"github.com/dlevina/prediction-billing/internal/domain/port/core"
	coremocks "github.com/dlevina/prediction-billing/mocks/port/core"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	secret := "test-secret"
	claims := core.TokenClaims{UserID: 42, Username: "alice"}

	t.Run("should verify a freshly issued token", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now()).Once()
		manager := NewJWTManager(secret, time.Hour, mockTime)

		token, err := manager.Issue(claims)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		verified, err := manager.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), verified.UserID)
		assert.Equal(t, "alice", verified.Username)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now().Add(-2 * time.Hour)).Once()
		manager := NewJWTManager(secret, time.Hour, mockTime)

		token, err := manager.Issue(claims)
		require.NoError(t, err)

		verified, err := manager.Verify(token)
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, errs.ErrTokenExpired)
	})

	t.Run("should reject a token signed with a different secret", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now()).Once()
		other := NewJWTManager("other-secret", time.Hour, mockTime)

		token, err := other.Issue(claims)
		require.NoError(t, err)

		manager := NewJWTManager(secret, time.Hour, coremocks.NewMockTimeProvider(t))
		verified, err := manager.Verify(token)
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject a tampered token", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(time.Now()).Once()
		manager := NewJWTManager(secret, time.Hour, mockTime)

		token, err := manager.Issue(claims)
		require.NoError(t, err)

		verified, err := manager.Verify(token + "x")
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject garbage input", func(t *testing.T) {
		manager := NewJWTManager(secret, time.Hour, coremocks.NewMockTimeProvider(t))

		verified, err := manager.Verify("not.a.token")
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestJWTManager_TTL(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)

	t.Run("should use the configured TTL", func(t *testing.T) {
		manager := NewJWTManager("secret", 30*time.Minute, mockTime)
		assert.Equal(t, 30*time.Minute, manager.TTL())
	})

	t.Run("should default to one hour", func(t *testing.T) {
		manager := NewJWTManager("secret", 0, mockTime)
		assert.Equal(t, DefaultTokenTTL, manager.TTL())
	})
}
