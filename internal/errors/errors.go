package errors

import (
	"fmt"
)

// GrepError is the structured error type for greplite.
// It provides rich context for error handling, logging, and user presentation.
type GrepError struct {
	// Code is the unique error code (e.g., "ERR_201_IS_A_DIRECTORY").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Pattern, Source, Config, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

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

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with GrepError.
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
// Category and severity are derived from the code.
func New(code string, message string, cause error) *GrepError {
	return &GrepError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
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

// InvalidRegex creates the fatal pattern-compilation error.
// It must surface before any I/O begins.
func InvalidRegex(pattern string, cause error) *GrepError {
	return New(ErrCodeInvalidRegex, fmt.Sprintf("invalid regular expression: %q", pattern), cause).
		WithDetail("pattern", pattern)
}

// IsADirectory creates the per-source error for a directory target
// given without recursive search.
func IsADirectory(path string) *GrepError {
	return New(ErrCodeIsADirectory, fmt.Sprintf("%s is a directory", path), nil).
		WithDetail("path", path).
		WithSuggestion("Use -R to search directories recursively")
}

// Unreadable creates the per-source error for a target or subtree that
// cannot be stat'ed or listed.
func Unreadable(path string, cause error) *GrepError {
	return New(ErrCodeUnreadable, fmt.Sprintf("cannot read %s", path), cause).
		WithDetail("path", path)
}

// ReadFailed creates the per-source error for a read that failed after
// scanning began.
func ReadFailed(path string, cause error) *GrepError {
	return New(ErrCodeReadFailed, fmt.Sprintf("read failed for %s", path), cause).
		WithDetail("path", path)
}

// DecodeFailed creates the per-source error for content that is not
// valid text under the session's encoding.
func DecodeFailed(path string, line int) *GrepError {
	return New(ErrCodeDecodeFailed, fmt.Sprintf("%s is not valid UTF-8 (line %d)", path, line), nil).
		WithDetail("path", path).
		WithDetail("line", fmt.Sprintf("%d", line))
}

// MissingPattern creates the usage error for an invocation without a
// pattern argument.
func MissingPattern() *GrepError {
	return New(ErrCodeMissingPattern, "no pattern provided", nil).
		WithSuggestion("Usage: greplite [flags] PATTERN [PATH ...]")
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *GrepError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity.
// Fatal errors abort the session before any scanning.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if ge, ok := err.(*GrepError); ok {
		return ge.Severity == SeverityFatal
	}
	return false
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
