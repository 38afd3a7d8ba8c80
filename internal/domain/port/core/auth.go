package core

import "time"

// PasswordHasher abstracts password hashing and verification
type PasswordHasher interface {
	// Hash derives a one-way hash from the plaintext password
	Hash(password string) (string, error)

	// Compare checks the plaintext password against a stored hash
	Compare(hash, password string) error
}

// TokenClaims carries the identity encoded in an auth token
type TokenClaims struct {
	UserID   uint64
	Username string
}

// TokenManager abstracts issuing and verifying auth tokens
type TokenManager interface {
	// Issue creates a signed token for the given claims
	Issue(claims TokenClaims) (string, error)

	// Verify parses and validates a token, returning its claims
	Verify(token string) (*TokenClaims, error)

	// TTL returns the lifetime of issued tokens
	TTL() time.Duration
}
