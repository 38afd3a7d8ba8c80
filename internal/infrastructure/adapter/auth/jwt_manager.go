package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	"github.com/dlevina/prediction-billing/internal/domain/port/core"
)

// DefaultTokenTTL is the lifetime of issued tokens
const DefaultTokenTTL = 60 * time.Minute

// Claims is the JWT payload carried by issued tokens
type Claims struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTManager implements TokenManager with HMAC-signed JWTs
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	clock  core.TimeProvider
}

// NewJWTManager creates a token manager with the given signing secret.
// A zero ttl uses the default of one hour.
func NewJWTManager(secret string, ttl time.Duration, clock core.TimeProvider) *JWTManager {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue creates a signed token for the given claims
func (m *JWTManager) Issue(claims core.TokenClaims) (string, error) {
	now := m.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", claims.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning its claims
func (m *JWTManager) Verify(tokenString string) (*core.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, errs.ErrUnauthorized
	}

	return &core.TokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}

// TTL returns the lifetime of issued tokens
func (m *JWTManager) TTL() time.Duration {
	return m.ttl
}
