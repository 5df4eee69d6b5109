// Package logging provides a logging abstraction layer that decouples the
// application from specific logging frameworks, which keeps the extraction
// and billing packages testable without a real log backend.
package logging

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names for structured logging.
const (
	FieldService   = "service"
	FieldCategory  = "category"
	FieldCycle     = "cycle"
	FieldCurrency  = "currency"
	FieldAmount    = "amount"
	FieldKeyword   = "keyword"
	FieldCandidate = "candidate"
	FieldPriority  = "priority"
	FieldRole      = "role"
	FieldCount     = "count"
	FieldFile      = "file_path"
	FieldLocale    = "locale"
)
