package sprintreport

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrMissingField      = errors.New("missing required field")
	ErrUnknownStyleToken = errors.New("unknown style token")
	ErrUnknownStatus     = errors.New("unknown status")
	ErrSerialization     = errors.New("document serialization failed")

	// Content validation errors.
	ErrNilContent        = errors.New("content record cannot be nil")
	ErrInvalidDimensions = errors.New("invalid evaluation dimensions")
	ErrInvalidReportDate = errors.New("invalid report date")

	// Tree and style validation errors.
	ErrRaggedTable       = errors.New("table rows have unequal cell counts")
	ErrInvalidStyleValue = errors.New("invalid style value")
)

// MissingFieldError reports a required content field that is absent or empty.
// Field is the YAML path of the field, e.g. "dimensions[2].status".
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

// Unwrap allows errors.Is(err, ErrMissingField).
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// UnknownStyleTokenError reports a block referencing a token absent from
// the style configuration.
type UnknownStyleTokenError struct {
	Token StyleToken
	Where string
}

func (e *UnknownStyleTokenError) Error() string {
	if e.Where == "" {
		return fmt.Sprintf("%s: %q", ErrUnknownStyleToken, e.Token)
	}
	return fmt.Sprintf("%s: %q (in %s)", ErrUnknownStyleToken, e.Token, e.Where)
}

// Unwrap allows errors.Is(err, ErrUnknownStyleToken).
func (e *UnknownStyleTokenError) Unwrap() error {
	return ErrUnknownStyleToken
}

// UnknownStatusError reports a status or severity label outside its
// enumerated set. Field names the content path carrying the value.
type UnknownStatusError struct {
	Field    string
	Value    string
	Accepted []string
}

func (e *UnknownStatusError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %q", ErrUnknownStatus, e.Value)
	}
	return fmt.Sprintf("%s: %s = %q", ErrUnknownStatus, e.Field, e.Value)
}

// Unwrap allows errors.Is(err, ErrUnknownStatus).
func (e *UnknownStatusError) Unwrap() error {
	return ErrUnknownStatus
}

// SerializationError carries an error from the document writer unchanged.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrSerialization, e.Err)
}

// Unwrap exposes both ErrSerialization and the writer's error.
func (e *SerializationError) Unwrap() []error {
	return []error{ErrSerialization, e.Err}
}
