// Package errors provides code-carrying domain errors.
//
// Services return these so transport can translate failures into HTTP
// responses without string matching. Every failure rejects the whole
// operation; there is no partial-success error shape.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain failure.
type Code string

// Registry failure codes. These mirror the rejection taxonomy of the badge
// registry: every mutating operation either fully applies or fails with one
// of these.
const (
	CodeInsufficientScore  Code = "insufficient_score"
	CodeAlreadyMinted      Code = "already_minted"
	CodeAlreadyOwnsBadge   Code = "already_owns_badge"
	CodeNotAuthorized      Code = "not_authorized"
	CodeBadgeNotFound      Code = "badge_not_found"
	CodeNoBadge            Code = "no_badge"
	CodeScoreBelowMinimum  Code = "score_below_minimum"
	CodeSoulboundViolation Code = "soulbound_violation"
)

// Ambient codes for transport and infrastructure failures.
const (
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"
	CodeValidation   Code = "validation_failed"
	CodeUnauthorized Code = "unauthorized"
	CodeConflict     Code = "conflict"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal_error"
)

// Error is a domain error with a machine-readable code.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error, preserving the
// cause for errors.Is chains.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// Is reports whether err is (or wraps) a domain error.
func Is(err error) bool {
	var de *Error
	return errors.As(err, &de)
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// non-domain errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the human-readable message, hiding internal causes.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a code to an HTTP status for the JSON error envelope.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInsufficientScore, CodeScoreBelowMinimum, CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeAlreadyMinted, CodeAlreadyOwnsBadge, CodeConflict:
		return http.StatusConflict
	case CodeNotAuthorized:
		return http.StatusForbidden
	case CodeSoulboundViolation:
		return http.StatusForbidden
	case CodeBadgeNotFound, CodeNoBadge, CodeNotFound:
		return http.StatusNotFound
	case CodeBadRequest, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
