package usecase

import (
	"context"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
)

// RegisterRequest represents an incoming registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries the signed token returned after a successful login
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// Register creates a new account with a validated email and hashed
	// password, and an empty balance to go with it
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// Login verifies credentials and returns a signed auth token
	Login(ctx context.Context, email, password string) (*AuthResponse, error)

	// GetByID retrieves a user by their numeric ID
	GetByID(ctx context.Context, userID uint64) (*entity.User, error)

	// List returns all registered users
	List(ctx context.Context) ([]*entity.User, error)

	// CreateDefaultUsers seeds the demo accounts on first startup
	CreateDefaultUsers(ctx context.Context) error
}
