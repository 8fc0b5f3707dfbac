// Package apperr classifies failures so handlers can map every service
// error to one HTTP status without inspecting error strings.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindStorage Kind = iota // default for unclassified errors
	KindValidation
	KindConflict
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindEmptyCart
)

type Error struct {
	Kind Kind
	Msg  string // user-visible message
	Err  error  // wrapped cause, never sent to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validation(msg string) *Error   { return New(KindValidation, msg) }
func Conflict(msg string) *Error     { return New(KindConflict, msg) }
func Unauthorized(msg string) *Error { return New(KindUnauthorized, msg) }
func Forbidden(msg string) *Error    { return New(KindForbidden, msg) }
func NotFound(msg string) *Error     { return New(KindNotFound, msg) }
func EmptyCart(msg string) *Error    { return New(KindEmptyCart, msg) }

func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Msg: "Database error", Err: err}
}

// KindOf returns the kind of err, or KindStorage when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// Message returns the user-visible message for err. Unclassified errors get
// the generic storage message so internals never leak.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "Database error"
}

// Status maps a kind to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict, KindEmptyCart:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
