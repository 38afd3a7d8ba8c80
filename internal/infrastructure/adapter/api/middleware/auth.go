package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/dto"
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextIsAdmin  = "isAdmin"
)

// UserLookup resolves the admin flag for an authenticated user ID
type UserLookup func(c *gin.Context, userID uint64) (isAdmin bool, err error)

// Auth validates the Bearer token and stores the caller's identity in
// the request context
func Auth(tokens coreport.TokenManager, lookup UserLookup, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, domainerr.ErrTokenExpired) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: message,
			})
			return
		}

		isAdmin := false
		if lookup != nil {
			isAdmin, err = lookup(c, claims.UserID)
			if err != nil {
				logger.Warn("Token for unknown user", map[string]any{
					"userId": claims.UserID,
					"error":  err.Error(),
				})
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
					Message: "Invalid token",
				})
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextIsAdmin, isAdmin)
		c.Next()
	}
}

// AdminOnly rejects callers that are not admins. Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// AuthenticatedUserID returns the user ID stored by the Auth middleware
func AuthenticatedUserID(c *gin.Context) uint64 {
	if id, ok := c.Get(ContextUserID); ok {
		if userID, ok := id.(uint64); ok {
			return userID
		}
	}
	return 0
}

// IsAdmin reports whether the authenticated caller is an admin
func IsAdmin(c *gin.Context) bool {
	if flag, ok := c.Get(ContextIsAdmin); ok {
		if isAdmin, ok := flag.(bool); ok {
			return isAdmin
		}
	}
	return false
}
