// Package errors provides structured error handling for greplite.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Pattern errors (fatal, abort before any scanning)
//   - 2XX: Source errors (per-source, recorded and skipped)
//   - 3XX: Config errors (usage problems raised by the CLI)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryPattern indicates pattern compilation errors.
	CategoryPattern Category = "PATTERN"
	// CategorySource indicates per-source read and traversal errors.
	CategorySource Category = "SOURCE"
	// CategoryConfig indicates CLI usage and configuration errors.
	CategoryConfig Category = "CONFIG"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates the session cannot start or continue.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates an operation failed unexpectedly.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates a source was skipped, run continues.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Pattern errors (100-199)
	ErrCodeInvalidRegex = "ERR_101_INVALID_REGEX"

	// Source errors (200-299)
	ErrCodeIsADirectory = "ERR_201_IS_A_DIRECTORY"
	ErrCodeUnreadable   = "ERR_202_UNREADABLE"
	ErrCodeReadFailed   = "ERR_203_READ_FAILED"
	ErrCodeDecodeFailed = "ERR_204_DECODE_FAILED"

	// Config errors (300-399)
	ErrCodeMissingPattern = "ERR_301_MISSING_PATTERN"
	ErrCodeInvalidFlag    = "ERR_302_INVALID_FLAG"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Extract the leading digit (e.g., "1" from "ERR_101_INVALID_REGEX")
	switch code[4] {
	case '1':
		return CategoryPattern
	case '2':
		return CategorySource
	case '3':
		return CategoryConfig
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
// Pattern and config errors abort the run before any scanning; source
// errors are recorded and skipped so one bad file never blocks the rest.
func severityFromCode(code string) Severity {
	switch categoryFromCode(code) {
	case CategoryPattern, CategoryConfig:
		return SeverityFatal
	case CategorySource:
		return SeverityWarning
	default:
		return SeverityError
	}
}
