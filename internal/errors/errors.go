// Package errors holds the error taxonomy shared by every parquet-flamegraph
// component.
//
// This file provides:
// - Sentinel errors for all error conditions
// - Error category checking functions
// - ExitCode mapping for the command line
// - Error wrapping utilities
package errors

import (
	"errors"
	"fmt"
)

// ============================================================================
// Process exit codes
// ============================================================================

const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInput       = 3
	ExitOutput      = 4
	ExitParse       = 5
	ExitUnavailable = 6
)

// ExitName returns a human-readable name for an exit code.
func ExitName(code int) string {
	switch code {
	case ExitOK:
		return "OK"
	case ExitFailure:
		return "Failure"
	case ExitUsage:
		return "Usage"
	case ExitInput:
		return "InputResolution"
	case ExitOutput:
		return "OutputPath"
	case ExitParse:
		return "MetadataParse"
	case ExitUnavailable:
		return "Unavailable"
	default:
		return fmt.Sprintf("Exit(%d)", code)
	}
}

// ============================================================================
// Sentinel errors
// ============================================================================

var (
	// Input resolution errors
	ErrNoParquetFiles = errors.New("no parquet file found")
	ErrNotParquetFile = errors.New("the file is not a .parquet file")

	// Output errors
	ErrOutputPath = errors.New("invalid output path")

	// Metadata errors, surfaced from the footer reader
	ErrMetadataParse = errors.New("parquet metadata parse error")

	// Filesystem boundary
	ErrIO = errors.New("i/o error")

	// Validation errors
	ErrInvalidUnit      = errors.New("invalid unit")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidPalette   = errors.New("invalid palette")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidStackLine = errors.New("invalid stack line")

	// State errors
	ErrWriterClosed = errors.New("writer is closed")
)

// ============================================================================
// Helper functions for error checking
// ============================================================================

// Is is a convenience wrapper for errors.Is
var Is = errors.Is

// As is a convenience wrapper for errors.As
var As = errors.As

// IsInputResolution returns true if no usable input file could be resolved.
func IsInputResolution(err error) bool {
	return errors.Is(err, ErrNoParquetFiles) ||
		errors.Is(err, ErrNotParquetFile)
}

// IsOutputPath returns true if the destination path could not be formed.
func IsOutputPath(err error) bool {
	return errors.Is(err, ErrOutputPath)
}

// IsParse returns true if a parquet footer could not be decoded.
func IsParse(err error) bool {
	return errors.Is(err, ErrMetadataParse)
}

// IsIO returns true if err happened at the filesystem boundary.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsValidation returns true if err is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidUnit) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidPalette) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidStackLine)
}

// ============================================================================
// Error to exit code mapping
// ============================================================================

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch {
	case IsValidation(err):
		return ExitUsage
	case IsInputResolution(err):
		return ExitInput
	case IsOutputPath(err):
		return ExitOutput
	case IsParse(err):
		return ExitParse
	case IsIO(err):
		return ExitUnavailable
	default:
		return ExitFailure
	}
}

// ============================================================================
// Error wrapping utilities
// ============================================================================

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WrapIO tags a filesystem error with ErrIO while keeping the original cause
// reachable through errors.Is and errors.As.
func WrapIO(err error, op, path string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", op, path, errors.Join(ErrIO, err))
}

// ============================================================================
// Error constructors with context
// ============================================================================

// NewValidation creates a validation error with context.
func NewValidation(field, reason string) error {
	return fmt.Errorf("invalid %s: %s: %w", field, reason, ErrInvalidConfig)
}

// NewMissingField creates a missing field error.
func NewMissingField(field string) error {
	return fmt.Errorf("%s: %w", field, ErrMissingField)
}

// ============================================================================
// Validation Errors Collection
// ============================================================================

// ValidationErrors collects multiple validation errors.
type ValidationErrors struct {
	Errors []error
}

// NewValidationErrors creates a new ValidationErrors collector.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{}
}

// Add adds an error to the collection.
func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.Errors = append(v.Errors, err)
	}
}

// AddField adds a field validation error.
func (v *ValidationErrors) AddField(field, reason string) {
	v.Errors = append(v.Errors, NewValidation(field, reason))
}

// AddMissing adds a missing field error.
func (v *ValidationErrors) AddMissing(field string) {
	v.Errors = append(v.Errors, NewMissingField(field))
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ""
	}
	if len(v.Errors) == 1 {
		return v.Errors[0].Error()
	}

	msg := fmt.Sprintf("validation failed with %d errors:", len(v.Errors))
	for _, err := range v.Errors {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Err returns nil if no errors, otherwise returns the ValidationErrors.
func (v *ValidationErrors) Err() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return v
}

// Unwrap returns the collected errors for errors.Is/As support.
func (v *ValidationErrors) Unwrap() []error {
	return v.Errors
}
