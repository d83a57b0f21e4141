package errs

import (
	"errors"
	"fmt"
)

// Sentinel values for the error taxonomy. Handlers branch on these with
// errors.Is and recover locally (redirect, form flash) instead of failing
// the whole request.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")
)

type Error struct {
	err    error  // one of the sentinel values above
	Entity string // entity the operation was acting on, e.g. "blog post"
	Cause  error  // the underlying cause, usually a driver error
}

// implements error interface. this allows us to pass an instance of Error
// as an argument of type `error`
func (e *Error) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s %s", e.Entity, e.err.Error())
	}
	return e.err.Error()
}

// this function allows us to do the following:
// err := NewConflict("blog post", cause)
// errors.Is(err, ErrConflict) ==> evaluates to true
func (e *Error) Unwrap() error {
	return e.err
}

// GetFullError returns the error message including the underlying cause.
func (e *Error) GetFullError() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s -> %s", e.Error(), e.Cause.Error())
	}
	return e.Error()
}

func NewNotFound(entity string, cause error) *Error {
	return &Error{err: ErrNotFound, Entity: entity, Cause: cause}
}

func NewConflict(entity string, cause error) *Error {
	return &Error{err: ErrConflict, Entity: entity, Cause: cause}
}

func NewValidation(detail string) *Error {
	return &Error{err: ErrValidation, Entity: detail}
}

func NewStoreUnavailable(entity string, cause error) *Error {
	return &Error{err: ErrStoreUnavailable, Entity: entity, Cause: cause}
}
