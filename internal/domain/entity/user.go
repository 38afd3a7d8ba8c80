package entity

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
)

// MinPasswordLength is the minimum accepted password length for registration
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// User represents a registered account
type User struct {
	ID           uint64    // Unique identifier for the user
	Email        string    // Email address, unique across users
	Username     string    // Display name shown in the UI
	PasswordHash string    // One-way hash of the password, never the plaintext
	IsAdmin      bool      // Whether the user may perform admin operations
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser validates registration input and builds a user with the
// already-hashed password
func NewUser(email, username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)

	if !emailPattern.MatchString(email) {
		return nil, errs.ErrInvalidEmail
	}
	if username == "" {
		username = email
	}
	if passwordHash == "" {
		return nil, errs.ErrValidation
	}

	now := timeProvider.Now()
	return &User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ValidatePassword checks registration password rules before hashing
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.ErrWeakPassword
	}
	return nil
}

// ValidateEmail checks the email format used at registration
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(strings.ToLower(email))) {
		return errs.ErrInvalidEmail
	}
	return nil
}
