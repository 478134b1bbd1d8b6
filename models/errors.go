package models

import "github.com/pkg/errors"

// Kinds of domain errors, mapped to http statuses by the controllers.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

type domainError struct {
	kind error
	msg  string
}

func (e domainError) Error() string {
	return e.msg
}

func (e domainError) Is(target error) bool {
	return target == e.kind
}

// BadRequest is a business rule violation reported to the caller as is.
func BadRequest(msg string) error {
	return domainError{kind: ErrBadRequest, msg: msg}
}

func NotFound(msg string) error {
	return domainError{kind: ErrNotFound, msg: msg}
}

func Forbidden(msg string) error {
	return domainError{kind: ErrForbidden, msg: msg}
}
