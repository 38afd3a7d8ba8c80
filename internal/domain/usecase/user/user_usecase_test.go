package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
	coremocks "github.com/dlevina/prediction-billing/mocks/port/core"
	persistencemocks "github.com/dlevina/prediction-billing/mocks/port/persistence"
	usecasemocks "github.com/dlevina/prediction-billing/mocks/port/usecase"
)

type userMocks struct {
	userRepo     *persistencemocks.MockUserRepository
	balanceUC    *usecasemocks.MockBalanceUseCase
	hasher       *coremocks.MockPasswordHasher
	tokens       *coremocks.MockTokenManager
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
}

func newUserMocks(t *testing.T) *userMocks {
	m := &userMocks{
		userRepo:     persistencemocks.NewMockUserRepository(t),
		balanceUC:    usecasemocks.NewMockBalanceUseCase(t),
		hasher:       coremocks.NewMockPasswordHasher(t),
		tokens:       coremocks.NewMockTokenManager(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *userMocks) useCase() usecase.UserUseCase {
	return NewUserUseCase(m.userRepo, m.balanceUC, m.hasher, m.tokens, m.timeProvider, m.logger)
}

func TestUserUseCase_Register(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	request := usecase.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "strong-password",
	}

	t.Run("should create the user and its balance", func(t *testing.T) {
		m := newUserMocks(t)
		m.hasher.EXPECT().Hash("strong-password").Return("hashed", nil).Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" && u.PasswordHash == "hashed"
		})).Run(func(ctx context.Context, u *entity.User) {
			u.ID = 42
		}).Return(nil).Once()
		m.balanceUC.EXPECT().EnsureBalance(ctx, uint64(42)).
			Return(&entity.Balance{UserID: 42}, nil).Once()

		user, err := m.useCase().Register(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.False(t, user.IsAdmin)
	})

	t.Run("should reject invalid email", func(t *testing.T) {
		m := newUserMocks(t)

		user, err := m.useCase().Register(ctx, usecase.RegisterRequest{
			Email:    "not-an-email",
			Password: "strong-password",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})

	t.Run("should reject weak password", func(t *testing.T) {
		m := newUserMocks(t)

		user, err := m.useCase().Register(ctx, usecase.RegisterRequest{
			Email:    "alice@example.com",
			Password: "short",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrWeakPassword)
	})

	t.Run("should reject duplicate email", func(t *testing.T) {
		m := newUserMocks(t)
		m.hasher.EXPECT().Hash("strong-password").Return("hashed", nil).Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateEmail).Once()

		user, err := m.useCase().Register(ctx, request)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("should hide hashing failures behind an internal error", func(t *testing.T) {
		m := newUserMocks(t)
		m.hasher.EXPECT().Hash("strong-password").Return("", errors.New("bcrypt failure")).Once()

		user, err := m.useCase().Register(ctx, request)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestUserUseCase_Login(t *testing.T) {
	ctx := context.Background()
	email := "alice@example.com"
	password := "strong-password"
	storedUser := &entity.User{
		ID:           42,
		Email:        email,
		Username:     "alice",
		PasswordHash: "hashed",
	}

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		m := newUserMocks(t)
		m.userRepo.EXPECT().GetByEmail(ctx, email).Return(storedUser, nil).Once()
		m.hasher.EXPECT().Compare("hashed", password).Return(nil).Once()
		m.tokens.EXPECT().Issue(coreport.TokenClaims{
			UserID:   42,
			Username: "alice",
		}).Return("signed-token", nil).Once()

		response, err := m.useCase().Login(ctx, email, password)

		require.NoError(t, err)
		assert.Equal(t, "signed-token", response.Token)
		assert.Equal(t, uint64(42), response.UserID)
		assert.Equal(t, "alice", response.Username)
	})

	t.Run("should return invalid credentials for unknown email", func(t *testing.T) {
		m := newUserMocks(t)
		m.userRepo.EXPECT().GetByEmail(ctx, email).Return(nil, errs.ErrUserNotFound).Once()

		response, err := m.useCase().Login(ctx, email, password)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("should return invalid credentials for wrong password", func(t *testing.T) {
		m := newUserMocks(t)
		m.userRepo.EXPECT().GetByEmail(ctx, email).Return(storedUser, nil).Once()
		m.hasher.EXPECT().Compare("hashed", "wrong").Return(errors.New("mismatch")).Once()

		response, err := m.useCase().Login(ctx, email, "wrong")

		assert.Nil(t, response)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("should propagate unexpected lookup errors", func(t *testing.T) {
		m := newUserMocks(t)
		dbErr := errors.New("connection lost")
		m.userRepo.EXPECT().GetByEmail(ctx, email).Return(nil, dbErr).Once()

		response, err := m.useCase().Login(ctx, email, password)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestUserUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the user", func(t *testing.T) {
		m := newUserMocks(t)
		stored := &entity.User{ID: 42, Email: "alice@example.com"}
		m.userRepo.EXPECT().GetByID(ctx, uint64(42)).Return(stored, nil).Once()

		user, err := m.useCase().GetByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		m := newUserMocks(t)

		user, err := m.useCase().GetByID(ctx, 0)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestUserUseCase_CreateDefaultUsers(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("should seed missing accounts", func(t *testing.T) {
		m := newUserMocks(t)
		m.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Times(2)
		m.timeProvider.EXPECT().Now().Return(fixedTime).Times(2)

		var seeded []string
		nextID := uint64(1)
		m.userRepo.EXPECT().Create(ctx, mock.Anything).
			Run(func(ctx context.Context, u *entity.User) {
				u.ID = nextID
				nextID++
				seeded = append(seeded, u.Email)
			}).Return(nil).Times(2)
		m.balanceUC.EXPECT().EnsureBalance(ctx, mock.Anything).
			Return(&entity.Balance{}, nil).Times(2)

		err := m.useCase().CreateDefaultUsers(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"admin@example.com", "demo@example.com"}, seeded)
	})

	t.Run("should skip accounts that already exist", func(t *testing.T) {
		m := newUserMocks(t)
		m.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Times(2)
		m.timeProvider.EXPECT().Now().Return(fixedTime).Times(2)
		m.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateEmail).Times(2)

		err := m.useCase().CreateDefaultUsers(ctx)

		require.NoError(t, err)
	})
}
