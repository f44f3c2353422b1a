package store

import (
	"errors"
	"fmt"
)

// OpError represents a failed or empty store operation.
//
// Operation failures include:
//   - Invalid key: empty key or empty path segment
//   - Invalid value: attempting to store an absent value
//   - Type mismatch: add/subtract on a non-number, pull on a non-array
//   - Not found: get/delete/pull addressing nothing, pull with no match
//   - Medium failure: disk or database I/O error
//   - Not connected: record backend used before Open
//
// OpError carries structured fields so callers can distinguish a medium
// failure from a logical no-op without parsing log output.
type OpError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the operation that failed ("get", "set", "pull", ...).
	Op string

	// Key is the dotted key the operation addressed, when there is one.
	Key string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes operation errors.
type ErrorCode string

const (
	// CodeInvalidKey indicates an empty key or a key with empty segments.
	CodeInvalidKey ErrorCode = "INVALID_KEY"

	// CodeInvalidValue indicates an absent value passed where one is required.
	CodeInvalidValue ErrorCode = "INVALID_VALUE"

	// CodeTypeMismatch indicates the stored value has the wrong tag for the
	// operation (add/subtract on non-number, pull on non-array).
	CodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// CodeNotFound indicates the addressed value does not exist, or pull
	// matched no elements.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeBadConfirmation indicates DeleteAll received a confirmation string
	// other than one of the two accepted sentences.
	CodeBadConfirmation ErrorCode = "BAD_CONFIRMATION"

	// CodeMediumFailure indicates the persistence medium failed.
	CodeMediumFailure ErrorCode = "MEDIUM_FAILURE"

	// CodeNotConnected indicates a backend was used before being opened.
	CodeNotConnected ErrorCode = "NOT_CONNECTED"
)

// ErrNotConnected is the sentinel returned by backends used before Open.
// The operation layer wraps it into an OpError with CodeNotConnected.
var ErrNotConnected = errors.New("store: not connected")

// Error implements the error interface.
func (e *OpError) Error() string {
	switch {
	case e.Key != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s %q: %s: %v", e.Code, e.Op, e.Key, e.Message, e.Err)
	case e.Key != "":
		return fmt.Sprintf("%s: %s %q: %s", e.Code, e.Op, e.Key, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, e.Op, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
	}
}

// Unwrap returns the underlying cause.
func (e *OpError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a not-found result.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsTypeMismatch reports whether err is a type mismatch failure.
func IsTypeMismatch(err error) bool {
	return hasCode(err, CodeTypeMismatch)
}

// IsValidation reports whether err is a validation failure: an invalid key,
// an invalid value, or a rejected DeleteAll confirmation.
func IsValidation(err error) bool {
	return hasCode(err, CodeInvalidKey) || hasCode(err, CodeInvalidValue) || hasCode(err, CodeBadConfirmation)
}

// IsMediumFailure reports whether err is a persistence medium failure.
func IsMediumFailure(err error) bool {
	return hasCode(err, CodeMediumFailure)
}

// IsNotConnected reports whether err indicates use before Open.
func IsNotConnected(err error) bool {
	if hasCode(err, CodeNotConnected) {
		return true
	}
	return errors.Is(err, ErrNotConnected)
}

func hasCode(err error, code ErrorCode) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Code == code
	}
	return false
}
