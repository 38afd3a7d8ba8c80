package repository

import (
	"strings"
)

// isDuplicateKeyError reports whether err is a unique constraint violation.
// Matched by message text because gorm wraps driver errors before they reach
// the repositories; covers both the postgres message and SQLSTATE 23505.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// isConnectionError reports whether err indicates the database is unreachable
// or the connection dropped mid-query.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "EOF")
}
