package zsearch

import "fmt"

// ErrInvalidSymbol indicates that the pattern or text holds a symbol outside
// the configured alphabet.
var ErrInvalidSymbol = &Error{
	Kind:    InvalidSymbol,
	Message: "symbol outside alphabet",
	Offset:  -1,
}

// ErrInvalidConfig indicates that Config.Validate rejected the configuration.
var ErrInvalidConfig = &Error{
	Kind:    InvalidConfig,
	Message: "invalid configuration",
	Offset:  -1,
}

// ErrUnknownAlgorithm indicates an algorithm name or value that is not one of
// Algorithms().
var ErrUnknownAlgorithm = &Error{
	Kind:    UnknownAlgorithm,
	Message: "unknown algorithm",
	Offset:  -1,
}

// ErrorKind classifies search errors into categories
type ErrorKind uint8

const (
	// InvalidSymbol indicates an out-of-alphabet byte in pattern or text
	InvalidSymbol ErrorKind = iota

	// InvalidConfig indicates configuration validation failed
	InvalidConfig

	// UnknownAlgorithm indicates an unrecognized algorithm
	UnknownAlgorithm
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case InvalidSymbol:
		return "InvalidSymbol"
	case InvalidConfig:
		return "InvalidConfig"
	case UnknownAlgorithm:
		return "UnknownAlgorithm"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is returned by the checked entry points (MatchWithConfig, MatchStats,
// ParseAlgorithm).
type Error struct {
	Kind    ErrorKind
	Message string
	Offset  int   // Byte offset of the offending symbol, -1 if not applicable
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := "zsearch: " + e.Message
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "zsearch: invalid config: " + e.Field + ": " + e.Message
}
