package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain failure; the HTTP layer maps kinds to
// status codes and exposes the stable Code string to clients.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindAlreadyExists
	KindAuthentication
	KindDataValidation
	KindAccessDenied
	KindTimeIsUp
)

var kindCodes = map[ErrorKind]string{
	KindNotFound:       "NotFoundError",
	KindAlreadyExists:  "AlreadyExistsError",
	KindAuthentication: "AuthenticationError",
	KindDataValidation: "IncorrectDataError",
	KindAccessDenied:   "AccessDeniedError",
	KindTimeIsUp:       "TimeIsUpError",
}

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Code() string { return kindCodes[e.Kind] }

func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ErrNotFound(entity string, id any) *Error {
	return NewError(KindNotFound, "%s not found: %v", entity, id)
}

func ErrAlreadyExists(entity string, key any) *Error {
	return NewError(KindAlreadyExists, "%s already exists: %v", entity, key)
}

// IsKind reports whether err is a domain Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }
