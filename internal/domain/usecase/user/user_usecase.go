package user

import (
	"context"
	"errors"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/persistence"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
)

// UserUseCase implements account registration and authentication
type UserUseCase struct {
	userRepo     persistence.UserRepository
	balanceUC    usecase.BalanceUseCase
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenManager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	balanceUC usecase.BalanceUseCase,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenManager,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		balanceUC:    balanceUC,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new account and its empty balance
func (u *UserUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	if err := entity.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(req.Email, req.Username, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) {
			u.logger.Warn("Registration with existing email", map[string]any{
				"email": user.Email,
			})
			return nil, errs.ErrDuplicateEmail
		}
		u.logger.Error("Failed to create user", map[string]any{
			"email": user.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	// A fresh account starts with a zero balance row so that balance
	// reads never have to special-case missing users
	if _, err := u.balanceUC.EnsureBalance(ctx, user.ID); err != nil {
		u.logger.Error("Failed to create initial balance", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	})

	return user, nil
}

// Login verifies credentials and issues a signed token
func (u *UserUseCase) Login(ctx context.Context, email, password string) (*usecase.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// Same error for unknown email and wrong password so the
			// response doesn't leak which emails are registered
			return nil, errs.ErrInvalidCredentials
		}
		u.logger.Error("Failed to look up user for login", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		u.logger.Warn("Failed login attempt", map[string]any{
			"userId": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(coreport.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	u.logger.Info("User logged in", map[string]any{
		"userId": user.ID,
	})

	return &usecase.AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// GetByID retrieves a user by their numeric ID
func (u *UserUseCase) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.userRepo.GetByID(ctx, userID)
}

// List returns all registered users
func (u *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	return u.userRepo.List(ctx)
}

// defaultUsers are the accounts seeded on first startup. The passwords
// are demo values, meant for local development only.
var defaultUsers = []struct {
	Email    string
	Username string
	Password string
	IsAdmin  bool
}{
	{Email: "admin@example.com", Username: "admin", Password: "admin-password", IsAdmin: true},
	{Email: "demo@example.com", Username: "demo", Password: "demo-password"},
}

// CreateDefaultUsers seeds the demo accounts, skipping ones that exist
func (u *UserUseCase) CreateDefaultUsers(ctx context.Context) error {
	for _, seed := range defaultUsers {
		hash, err := u.hasher.Hash(seed.Password)
		if err != nil {
			return err
		}

		user, err := entity.NewUser(seed.Email, seed.Username, hash, u.timeProvider)
		if err != nil {
			return err
		}
		user.IsAdmin = seed.IsAdmin

		if err := u.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, errs.ErrDuplicateEmail) {
				continue
			}
			return err
		}

		if _, err := u.balanceUC.EnsureBalance(ctx, user.ID); err != nil {
			return err
		}

		u.logger.Info("Default user created", map[string]any{
			"email": seed.Email,
		})
	}
	return nil
}
