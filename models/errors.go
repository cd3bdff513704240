package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can map it to a transport
// status without matching on message text.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "not_found"
	KindFormat     ErrorKind = "format"
	KindValidation ErrorKind = "validation"
	KindConfig     ErrorKind = "config"
	KindConflict   ErrorKind = "conflict"
	KindIO         ErrorKind = "io"
)

// Error carries a machine-readable kind alongside the human-readable
// message shown to the chat client.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapIO tags a low-level storage failure with the io kind, keeping the
// cause available through errors.Unwrap.
func WrapIO(message string, err error) *Error {
	return &Error{Kind: KindIO, Message: message, Err: err}
}

// KindOf extracts the kind from err, or "" when err carries none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// DisplayMessage returns the chat-facing text for err. Untyped errors
// fall back to their Error() string.
func DisplayMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
