package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRunType is returned when the requested run type is not published by the descriptor set.
var ErrUnknownRunType = errors.New("unknown run type")

// ErrMissingValue is returned when a placeholder is used but no value is available for it.
var ErrMissingValue = errors.New("missing substitution value")

// ErrInvalidDescriptor is returned when a descriptor file does not have the expected shape.
var ErrInvalidDescriptor = errors.New("invalid run descriptor")

// ErrInvalidConfig is returned when a project config declares something unusable.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigurationError is a mistake the user must fix in their build configuration.
// It is never transient, so callers should not retry.
type ConfigurationError struct {
	Field     string   // Field or run type the error is about
	Reason    string   // Human-readable reason for failure
	Available []string // Valid alternatives, if any
	Err       error    // Sentinel for errors.Is
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	if e.Field != "" {
		fmt.Fprintf(&b, "%s: ", e.Field)
	}
	b.WriteString(e.Reason)
	if len(e.Available) > 0 {
		fmt.Fprintf(&b, ". Available: [%s]", strings.Join(e.Available, ", "))
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// AggregateError represents multiple configuration failures found in one pass.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d configuration errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// IsConfigurationError reports whether err (or anything it wraps) is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// MissingValue builds the error for a placeholder that has nothing to substitute.
func MissingValue(field, placeholder string) *ConfigurationError {
	return &ConfigurationError{
		Field:  field,
		Reason: fmt.Sprintf("no value available for placeholder %s", placeholder),
		Err:    ErrMissingValue,
	}
}
