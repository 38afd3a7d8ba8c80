package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", ErrValidation, CodeValidation},
		{"InvalidEmail", ErrInvalidEmail, CodeValidation},
		{"WeakPassword", ErrWeakPassword, CodeValidation},
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"NegativeAmount", ErrNegativeAmount, CodeInvalidAmount},
		{"InvalidUserID", ErrInvalidUserID, CodeInvalidUserID},
		{"DuplicateEmail", ErrDuplicateEmail, CodeDuplicateEmail},
		{"InsufficientFunds", ErrInsufficientFunds, CodeInsufficientFunds},
		{"Unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"InvalidCredentials", ErrInvalidCredentials, CodeUnauthorized},
		{"TokenExpired", ErrTokenExpired, CodeUnauthorized},
		{"Forbidden", ErrForbidden, CodeForbidden},
		{"UserNotFound", ErrUserNotFound, CodeUserNotFound},
		{"BalanceNotFound", ErrBalanceNotFound, CodeNotFound},
		{"PredictionNotFound", ErrPredictionNotFound, CodeNotFound},
		{"EventNotFound", ErrEventNotFound, CodeNotFound},
		{"DuplicateJob", ErrDuplicateJob, CodeDuplicateJob},
		{"DuplicateTransaction", ErrDuplicateTransaction, CodeDuplicateJob},
		{"Classifier", ErrClassifier, CodeClassifier},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), CodeInvalidUserID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(123, "10.00", "5.00")

	expected := "insufficient funds for user 123: required 10.00, available 5.00"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("expected errors.Is to match ErrInsufficientFunds")
	}

	var detailed *InsufficientFundsError
	if !errors.As(err, &detailed) {
		t.Fatal("expected errors.As to extract *InsufficientFundsError")
	}
	if detailed.UserID != 123 || detailed.Amount != "10.00" || detailed.CurrBalance != "5.00" {
		t.Errorf("unexpected fields: %+v", detailed)
	}

	fields := detailed.LogFields()
	if fields["user_id"] != uint64(123) {
		t.Errorf("LogFields user_id = %v, want 123", fields["user_id"])
	}
	if fields["error_code"] != CodeInsufficientFunds {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeInsufficientFunds)
	}
}

func TestClassifierError(t *testing.T) {
	inner := errors.New("singular matrix")
	err := NewClassifierError("training failed", inner)

	if !errors.Is(err, ErrClassifier) {
		t.Error("expected errors.Is to match ErrClassifier")
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to match the wrapped error")
	}

	withoutCause := NewClassifierError("no samples to classify", nil)
	if withoutCause.Error() != "classifier failure: no samples to classify" {
		t.Errorf("unexpected message: %s", withoutCause.Error())
	}
}

func TestBillingError(t *testing.T) {
	inner := ErrInsufficientFunds
	err := NewBillingError("job-1", 123, "10.00", "charge rejected", inner)

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("expected errors.Is to reach the wrapped error")
	}

	var detailed *BillingError
	if !errors.As(err, &detailed) {
		t.Fatal("expected errors.As to extract *BillingError")
	}
	if detailed.JobID != "job-1" || detailed.UserID != 123 {
		t.Errorf("unexpected fields: %+v", detailed)
	}
}

func TestErrorPredicates(t *testing.T) {
	testCases := []struct {
		name      string
		predicate func(error) bool
		match     error
		noMatch   error
	}{
		{"IsInsufficientFundsError", IsInsufficientFundsError, NewInsufficientFundsError(1, "10.00", "5.00"), ErrValidation},
		{"IsUserNotFoundError", IsUserNotFoundError, ErrUserNotFound, ErrBalanceNotFound},
		{"IsNotFoundError", IsNotFoundError, ErrPredictionNotFound, ErrValidation},
		{"IsValidationError", IsValidationError, ErrWeakPassword, ErrUserNotFound},
		{"IsClassifierError", IsClassifierError, NewClassifierError("boom", nil), ErrValidation},
		{"IsDuplicateJobError", IsDuplicateJobError, ErrDuplicateJob, ErrDuplicateTransaction},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.predicate(tc.match) {
				t.Errorf("expected predicate to match %v", tc.match)
			}
			if tc.predicate(tc.noMatch) {
				t.Errorf("expected predicate not to match %v", tc.noMatch)
			}
		})
	}
}
