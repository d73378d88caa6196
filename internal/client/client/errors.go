package client

import (
	"errors"
	"fmt"
)

// Failure taxonomy. Every error returned by Client unwraps to exactly one
// of these, so callers can branch with errors.Is.
var (
	ErrSessionAbsent    = errors.New("no active session")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidation       = errors.New("request rejected")
	ErrTransport        = errors.New("server unavailable")
)

type Kind int

const (
	KindTransport Kind = iota
	KindUnauthorized
	KindPermission
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindPermission:
		return "permission"
	case KindValidation:
		return "validation"
	default:
		return "transport"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindUnauthorized:
		return ErrUnauthorized
	case KindPermission:
		return ErrPermissionDenied
	case KindValidation:
		return ErrValidation
	default:
		return ErrTransport
	}
}

// FieldError is one field-level problem reported by the server.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the normalized form of both failure envelopes the server
// emits, plus failures that never produced an envelope.
type APIError struct {
	Kind    Kind
	Status  int
	Type    string
	Message string
	Details []FieldError
	Err     error
}

func (e *APIError) Error() string {
	msg := e.MessageOr("")
	switch {
	case msg != "" && e.Status != 0:
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, msg)
	case msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s (status %d)", e.Kind, e.Status)
	default:
		return e.Kind.String()
	}
}

func (e *APIError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind.sentinel(), e.Err}
	}
	return []error{e.Kind.sentinel()}
}

// FirstMessage prefers the first field-level message, then the envelope
// message, then fallback.
func (e *APIError) FirstMessage(fallback string) string {
	for _, d := range e.Details {
		if d.Message != "" {
			return d.Message
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// MessageOr prefers the envelope message, then the first field-level
// message, then fallback.
func (e *APIError) MessageOr(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	for _, d := range e.Details {
		if d.Message != "" {
			return d.Message
		}
	}
	return fallback
}

// AsAPIError extracts an *APIError from err. Errors that did not come from
// the API boundary are reported as transport failures wrapping err.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Kind: KindTransport, Err: err}
}
