// Package errors provides custom error types for the salary report pipeline.
// These errors enable programmatic error checking and keep the distinction
// between routine data noise (skipped records) and run-ending fetch failures
// visible at every layer.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// Common sentinel errors.
var (
	// ErrUpstream indicates the remote API reported or caused a failure.
	ErrUpstream = errors.New("upstream failure")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// FetchError represents a terminal fetch failure: the retry budget for one
// URL is exhausted. It carries the URL and the last underlying failure.
type FetchError struct {
	URL      string
	Attempts int
	Status   int // last HTTP status, 0 if the failure was below HTTP
	Err      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s failed after %d attempts (last status %d): %v", e.URL, e.Attempts, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *FetchError) Is(target error) bool {
	return target == ErrUpstream
}

// UpstreamError represents a response body that itself signals an error
// condition, e.g. {"error": "..."} from the league API.
type UpstreamError struct {
	URL     string
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error from %s: %s", e.URL, e.Message)
}

// Is implements errors.Is support.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// ParseError represents a failure to parse data in a specific format.
type ParseError struct {
	Format  string
	Subject string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s as %s: %v", e.Subject, e.Format, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IOError represents a filesystem failure while writing an artifact.
type IOError struct {
	Operation string
	Path      string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Err: err}
}

// WrapParse wraps an error as a ParseError.
func WrapParse(format, subject string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Subject: subject, Err: err}
}

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// IsUpstream checks if an error originated from the remote API.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsFetchFailure checks if an error is a terminal fetch failure.
func IsFetchFailure(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
