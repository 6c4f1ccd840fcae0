// Package errors provides custom error types for the rollcall system.
// These errors enable programmatic error checking and better diagnostics
// across the pipeline and its spreadsheet adapters.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the rollcall system.
var (
	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRecords indicates that no parseable absence records were found
	// across all monthly files, so there is nothing to aggregate.
	ErrNoRecords = errors.New("no records to aggregate")

	// ErrUnknownFormat indicates a monthly file whose name maps to none of
	// the known spreadsheet layouts.
	ErrUnknownFormat = errors.New("unknown spreadsheet format")
)

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// FormatError represents a monthly file that cannot be routed to a
// layout handler, or a file whose contents contradict its layout.
type FormatError struct {
	File    string
	Message string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("format error in %s: %s", e.File, e.Message)
}

// Is implements errors.Is support.
func (e *FormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// NewFormatError creates a new FormatError.
func NewFormatError(file, message string) *FormatError {
	return &FormatError{File: file, Message: message}
}

// ParseError represents an error when parsing data formats.
type ParseError struct {
	Format  string // "xlsx", "yaml", ...
	File    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations.
type IOError struct {
	Operation string // "read", "write", "create", "open"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// RosterError represents a problem with the master roster file.
type RosterError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RosterError) Error() string {
	return fmt.Sprintf("roster error in %s: %s", e.Path, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *RosterError) Unwrap() error {
	return e.Err
}

// NewRosterError creates a new RosterError.
func NewRosterError(path, message string, err error) *RosterError {
	return &RosterError{Path: path, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNoRecords checks if an error is the empty-input condition.
func IsNoRecords(err error) bool {
	return errors.Is(err, ErrNoRecords)
}

// IsUnknownFormat checks if an error is an unknown-layout error.
func IsUnknownFormat(err error) bool {
	return errors.Is(err, ErrUnknownFormat)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
