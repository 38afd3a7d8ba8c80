package logger

import (
	"github.com/dlevina/prediction-billing/internal/domain/port/core"
)

// NoopLogger discards every message. Used in tests that do not
// assert on log output.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a logger that drops everything.
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

func (l *NoopLogger) Debug(string, map[string]any) {}

func (l *NoopLogger) Info(string, map[string]any) {}

func (l *NoopLogger) Warn(string, map[string]any) {}

func (l *NoopLogger) Error(string, map[string]any) {}

func (l *NoopLogger) Flush() error { return nil }
