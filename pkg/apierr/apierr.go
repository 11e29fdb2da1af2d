package apierr

import (
	"fmt"
)

// DefaultMessage is used when a failure carries no usable message.
const DefaultMessage = "An unknown error occurred"

// Error is the uniform error shape produced from any failure: a
// human-readable message, an optional transport/store status code and an
// opaque diagnostic payload. Status 0 means no server response was obtained
// (local or network failure).
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// New creates a classified error with a message and status code.
func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

// WithData creates a classified error carrying a diagnostic payload.
func WithData(message string, status int, data any) *Error {
	return &Error{Message: message, Status: status, Data: data}
}

// Detailer is implemented by failures that carry extra diagnostic detail
// alongside their message.
type Detailer interface {
	Details() string
}

// Classify converts an arbitrary failure value into an *Error. The checks
// run in a fixed order:
//
//  1. an *Error passes through unchanged
//  2. an error value contributes its Error() string as the message; if it
//     also implements Detailer, the details are copied to Data
//  3. a plain string becomes the message
//  4. anything else falls back to fallback, or DefaultMessage if fallback
//     is empty
func Classify(v any, fallback string) *Error {
	if fallback == "" {
		fallback = DefaultMessage
	}
	switch f := v.(type) {
	case *Error:
		return f
	case error:
		e := &Error{Message: f.Error()}
		if d, ok := f.(Detailer); ok {
			e.Data = d.Details()
		}
		return e
	case string:
		if f == "" {
			return &Error{Message: fallback}
		}
		return &Error{Message: f}
	default:
		return &Error{Message: fallback}
	}
}

// IsNotFound reports whether err is a classified error with a 404 status.
func IsNotFound(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Status == 404
	}
	return false
}

// IsNetwork reports whether err is a classified error with no server
// response (status 0).
func IsNetwork(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Status == 0
	}
	return false
}
