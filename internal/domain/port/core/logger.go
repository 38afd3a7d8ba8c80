package core

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// LogLevelDebug for detailed troubleshooting
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for general operational entries
	LogLevelInfo
	// LogLevelWarn for non-critical issues
	LogLevelWarn
	// LogLevelError for errors that should be investigated
	LogLevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLogLevel converts a config string into a LogLevel, defaulting
// to info for unknown values
func ParseLogLevel(level string) LogLevel {
	switch level {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger defines the interface for structured logging throughout the application
type Logger interface {
	// Debug logs a message at debug level with optional structured fields
	Debug(msg string, fields map[string]any)

	// Info logs a message at info level with optional structured fields
	Info(msg string, fields map[string]any)

	// Warn logs a message at warn level with optional structured fields
	Warn(msg string, fields map[string]any)

	// Error logs a message at error level with optional structured fields
	Error(msg string, fields map[string]any)

	// SetLevel changes the minimum level that will be logged
	SetLevel(level LogLevel)

	// GetLevel returns the current minimum log level
	GetLevel() LogLevel

	// Flush ensures all buffered log entries are written
	Flush() error
}
