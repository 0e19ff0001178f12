package social

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes adapter failures.
type ErrorKind string

const (
	// KindLoad indicates invalid adapter configuration.
	KindLoad ErrorKind = "load"
	// KindAccessToken indicates a token exchange failure: missing
	// authorization code, relay error, or an absent cached token.
	KindAccessToken ErrorKind = "access_token"
	// KindCheckLogin indicates a session probe failure.
	KindCheckLogin ErrorKind = "check_login"
)

// Error is the structured failure value returned by every adapter
// operation. It is immutable once constructed.
type Error struct {
	Provider    string
	Kind        ErrorKind
	Description string
	Cause       error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Provider, e.Kind, e.Description, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Description)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates an adapter error without an underlying cause.
func NewError(provider string, kind ErrorKind, description string) error {
	return &Error{
		Provider:    provider,
		Kind:        kind,
		Description: description,
	}
}

// WrapError creates an adapter error wrapping an underlying cause.
func WrapError(provider string, kind ErrorKind, description string, cause error) error {
	return &Error{
		Provider:    provider,
		Kind:        kind,
		Description: description,
		Cause:       cause,
	}
}

// KindOf returns the kind of an adapter error, or the empty kind for
// any other error.
func KindOf(err error) ErrorKind {
	var adapterErr *Error
	if errors.As(err, &adapterErr) {
		return adapterErr.Kind
	}
	return ""
}

// RedirectError signals that interactive login must continue at the
// provider's authorization page. The host performs the navigation and
// later resumes the handshake by feeding the callback query into Load;
// no in-process completion signal exists for this path.
type RedirectError struct {
	URL string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("authorization redirect required: %s", e.URL)
}
