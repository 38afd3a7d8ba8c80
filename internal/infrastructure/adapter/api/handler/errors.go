package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/dto"
)

// statusFromError maps domain errors to HTTP status codes
func statusFromError(err error) int {
	switch {
	case domainerr.IsInsufficientFundsError(err):
		return http.StatusPaymentRequired
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrUnauthorized),
		errors.Is(err, domainerr.ErrInvalidCredentials),
		errors.Is(err, domainerr.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error response for a domain error
func respondError(c *gin.Context, logger coreport.Logger, err error, message string) {
	status := statusFromError(err)

	fields := map[string]any{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
		"status": status,
		"error":  err.Error(),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
		// Don't leak internals to the client
		message = "Internal server error"
	} else {
		logger.Warn("Request rejected", fields)
	}

	if message == "" {
		message = err.Error()
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
