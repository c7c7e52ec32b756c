package errors

import (
	"fmt"
)

// GrepError is the structured error type for fzgrep.
// It provides context for error handling, logging, and user presentation.
type GrepError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *GrepError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GrepError) Unwrap() error {
	return e.Cause
}

// Is matches GrepErrors by code, enabling errors.Is comparisons.
func (e *GrepError) Is(target error) bool {
	if t, ok := target.(*GrepError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *GrepError) WithDetail(key, value string) *GrepError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *GrepError) WithSuggestion(suggestion string) *GrepError {
	e.Suggestion = suggestion
	return e
}

// New creates a new GrepError with the given code and message.
// The category is derived from the code.
func New(code string, message string, cause error) *GrepError {
	return &GrepError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a GrepError from an existing error.
// The error's message becomes the GrepError message.
func Wrap(code string, err error) *GrepError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *GrepError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IOError creates an I/O-related error.
func IOError(message string, cause error) *GrepError {
	return New(ErrCodeReadFailed, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *GrepError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *GrepError {
	return New(ErrCodeInternal, message, cause)
}

// GetCode extracts the error code from a GrepError.
// Returns empty string if not a GrepError.
func GetCode(err error) string {
	if ge, ok := err.(*GrepError); ok {
		return ge.Code
	}
	return ""
}

// GetCategory extracts the category from a GrepError.
// Returns empty string if not a GrepError.
func GetCategory(err error) Category {
	if ge, ok := err.(*GrepError); ok {
		return ge.Category
	}
	return ""
}
