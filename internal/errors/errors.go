// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeUnsupportedPlanet indicates an operation invoked for a planet
	// outside its valid domain
	TypeUnsupportedPlanet Type = "UNSUPPORTED_PLANET"

	// TypeMissingChartData indicates required chart data (sunrise, sunset,
	// ascendant, cusps) is absent
	TypeMissingChartData Type = "MISSING_CHART_DATA"

	// TypeDegenerateGeometry indicates a planet sits exactly on a boundary
	// that makes a classification ambiguous
	TypeDegenerateGeometry Type = "DEGENERATE_GEOMETRY"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeParsing indicates a chart-definition parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// HasType checks if the error is of a specific type
func (e *Error) HasType(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Input creates an input validation error
func Input(format string, args ...interface{}) *Error {
	return Newf(TypeInput, format, args...)
}

// UnsupportedPlanet creates an unsupported-planet error
func UnsupportedPlanet(operation string, planet interface{}) *Error {
	return Newf(TypeUnsupportedPlanet, "%s is not defined for %v", operation, planet)
}

// MissingChartData creates a missing-chart-data error
func MissingChartData(field string) *Error {
	return Newf(TypeMissingChartData, "chart is missing required data: %s", field)
}

// DegenerateGeometry creates a degenerate-geometry error
func DegenerateGeometry(message string) *Error {
	return New(TypeDegenerateGeometry, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
