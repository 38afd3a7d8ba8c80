package persistence

import (
	"context"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
)

// UserRepository defines the persistence operations for user accounts
type UserRepository interface {
	// Create persists a new user, failing on duplicate email
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by their numeric ID
	GetByID(ctx context.Context, userID uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns all users ordered by ID
	List(ctx context.Context) ([]*entity.User, error)
}
