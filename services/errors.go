package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)

// Error carries a user-facing message on top of one of the sentinel kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Message: msg} }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

func badRequest(msg string) error { return &Error{Kind: ErrBadRequest, Message: msg} }

// lookup turns gorm.ErrRecordNotFound into a NotFound error; other errors pass through.
func lookup(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(msg)
	}
	return err
}
