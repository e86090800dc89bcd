package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error for translation into an HTTP response.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindUnauthorized
	KindBadRequest
)

// Error is a domain error carrying the message shown to the client.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode maps the error kind to its HTTP status. Duplicate emails and
// invalid token signatures are both reported as bad requests.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "Not found"}
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "Access denied"}
	ErrInvalidToken = &Error{Kind: KindBadRequest, Message: "Invalid Token"}
)

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Is reports whether err is a domain error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
