// Package service implements the clinic's operations on top of GORM.
// Every failure that a client can act on is returned as *Error.
package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies a service failure.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
	KindForbidden
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is a classified failure with a client-facing message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func badRequest(msg string) *Error { return newError(KindBadRequest, msg, nil) }

func notFound(msg string) *Error { return newError(KindNotFound, msg, nil) }

func conflict(msg string, err error) *Error { return newError(KindConflict, msg, err) }

func forbidden(msg string) *Error { return newError(KindForbidden, msg, nil) }

func unauthorized(msg string) *Error { return newError(KindUnauthorized, msg, nil) }

func internal(msg string, err error) *Error { return newError(KindInternal, msg, err) }

// KindOf returns the kind of err, KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// storeError classifies a database error. Unique violations become conflicts
// with the given message and missing rows become not-found.
func storeError(err error, conflictMsg, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict(conflictMsg, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return newError(KindNotFound, notFoundMsg, err)
	default:
		return internal("database error", err)
	}
}
