package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FieldError is a server-reported validation failure for one field.
// Path lists the field-name segments from the payload root.
type FieldError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Field returns the dotted field path, e.g. "items.0.quantity".
func (f FieldError) Field() string {
	return strings.Join(f.Path, ".")
}

// Error is the failure half of the normalized result every operation
// produces. Message is always set; the rest is optional detail.
type Error struct {
	// StatusCode is the HTTP status, 0 for transport failures.
	StatusCode int
	// Message is the user-presentable failure description.
	Message string
	// ErrorCode is a machine-readable code, when the server sends one.
	ErrorCode string
	// FieldErrors lists per-field validation failures, when present.
	FieldErrors []FieldError
	// Transport marks failures where no response was obtained at all.
	// Subtypes (DNS, refused, timeout) are not distinguished.
	Transport bool

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsTransport reports whether err is a transport-level failure (no
// response obtained).
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Transport
}

// IsUnauthorized reports whether err is a 401 authorization failure.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == http.StatusUnauthorized
}

// Message extracts the normalized failure message from err, or "" when
// err is not a client error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
