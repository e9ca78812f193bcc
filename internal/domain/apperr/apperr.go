// Package apperr defines the application error taxonomy shared by the
// engine and its adapters. Callers branch on the Kind, never on message
// text, and sanitized messages are safe to surface to users.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for retry and surfacing decisions.
type Kind int

const (
	// Validation is malformed or missing input. Never retried.
	Validation Kind = iota + 1
	// Authentication is a credential or token failure upstream. Not
	// retried automatically; surfaced with a sanitized message.
	Authentication
	// NotFound means a flight, lounge or user is absent. A normal,
	// expected outcome, never a crash.
	NotFound
	// Upstream is a transient upstream failure, eligible for exactly one
	// retry with backoff at the gateway boundary.
	Upstream
	// PartialData means part of the result could not be computed; the
	// engine degrades and returns what it has plus an advisory.
	PartialData
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Authentication:
		return "authentication"
	case NotFound:
		return "not_found"
	case Upstream:
		return "upstream"
	case PartialData:
		return "partial_data"
	default:
		return "unknown"
	}
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Op      string // logical operation, e.g. "amadeus.GetSchedule"
	Message string // sanitized, user-safe
	Err     error  // underlying cause, may carry internal detail
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a classified error without an underlying cause.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap builds a classified error around an underlying cause.
func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// KindOf extracts the Kind of err, or 0 when err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retriable reports whether the gateway may retry the operation once.
func Retriable(err error) bool {
	return IsKind(err, Upstream)
}
