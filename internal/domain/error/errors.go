package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation        = 4001
	CodeInvalidAmount     = 4002
	CodeInvalidUserID     = 4003
	CodeDuplicateEmail    = 4004
	CodeInsufficientFunds = 4020
	CodeUnauthorized      = 4010
	CodeForbidden         = 4030
	CodeUserNotFound      = 4040
	CodeNotFound          = 4041
	CodeDuplicateJob      = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeClassifier     = 5001
)

// Base error types
var (
	// ErrValidation is returned when request input fails validation
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when a monetary amount has an invalid format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount that must be positive is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidEmail is returned when the email does not match the expected pattern
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password is shorter than the minimum length
	ErrWeakPassword = errors.New("password must be at least 8 characters long")

	// ErrInsufficientFunds is returned when the balance cannot cover a debit
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnauthorized is returned when authentication is missing or invalid
	ErrUnauthorized = errors.New("not authenticated")

	// ErrForbidden is returned when the authenticated user may not perform the action
	ErrForbidden = errors.New("operation not permitted")

	// ErrInvalidCredentials is returned when email/password verification fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired is returned when an auth token is past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrBalanceNotFound is returned when no balance row exists for a user
	ErrBalanceNotFound = errors.New("balance not found")

	// ErrTransactionNotFound is returned when the requested ledger entry doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPredictionNotFound is returned when no prediction result exists for a job
	ErrPredictionNotFound = errors.New("prediction result not found")

	// ErrEventNotFound is returned when the requested event doesn't exist
	ErrEventNotFound = errors.New("event not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateEmail is returned when registering with an email that already exists
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrDuplicateTransaction is returned when a ledger entry with the same ID already exists
	ErrDuplicateTransaction = errors.New("transaction with this ID already exists")

	// ErrDuplicateJob is returned when a prediction job has already been processed
	ErrDuplicateJob = errors.New("prediction job already processed")

	// ErrClassifier is returned when the classifier fails to produce predictions
	ErrClassifier = errors.New("prediction computation failed")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrWeakPassword):
		return CodeValidation
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrDuplicateJob), errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateJob
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrTokenExpired):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrBalanceNotFound),
		errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrPredictionNotFound),
		errors.Is(err, ErrEventNotFound):
		return CodeNotFound
	case errors.Is(err, ErrClassifier):
		return CodeClassifier
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, amount, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// ClassifierError wraps a failure inside the classification step
type ClassifierError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ClassifierError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classifier failure: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("classifier failure: %s", e.Reason)
}

// Is checks if the target error is an ErrClassifier
func (e *ClassifierError) Is(target error) bool {
	return target == ErrClassifier
}

// Unwrap returns the underlying error
func (e *ClassifierError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ClassifierError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "classifier_error",
		"reason":     e.Reason,
		"error_code": CodeClassifier,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewClassifierError creates a new classifier error with a reason
func NewClassifierError(reason string, err error) error {
	return &ClassifierError{Reason: reason, Err: err}
}

// BillingError represents an error raised while charging for a prediction
type BillingError struct {
	UserID uint64
	JobID  string
	Cost   string
	Reason string
	Err    error
}

// Error implements the error interface for BillingError
func (e *BillingError) Error() string {
	return fmt.Sprintf("billing error for job %s (user: %d, cost: %s): %s - %v",
		e.JobID, e.UserID, e.Cost, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *BillingError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BillingError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "billing_error",
		"job_id":     e.JobID,
		"user_id":    e.UserID,
		"cost":       e.Cost,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewBillingError creates a detailed billing error
func NewBillingError(jobID string, userID uint64, cost, reason string, err error) error {
	return &BillingError{
		JobID:  jobID,
		UserID: userID,
		Cost:   cost,
		Reason: reason,
		Err:    err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrBalanceNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrPredictionNotFound) ||
		errors.Is(err, ErrEventNotFound)
}

// IsValidationError checks if the error is user-correctable bad input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidUserID)
}

// IsClassifierError checks if the error came from the classification step
func IsClassifierError(err error) bool {
	return errors.Is(err, ErrClassifier)
}

// IsDuplicateJobError checks if the error is a duplicate prediction job
func IsDuplicateJobError(err error) bool {
	return errors.Is(err, ErrDuplicateJob)
}
