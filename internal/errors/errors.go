package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the service can produce.
// Transport status codes are derived from the kind, never from message text.
type Kind uint8

const (
	Validation Kind = iota + 1
	NotFound
	Forbidden
	Internal
)

var statusByKind = map[Kind]int{
	Validation: http.StatusBadRequest,
	NotFound:   http.StatusNotFound,
	Forbidden:  http.StatusForbidden,
	// Storage failures surface as 400 with the underlying message,
	// same catch-all contract the API always had.
	Internal: http.StatusBadRequest,
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err. Errors produced outside this package
// count as Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Status maps err to the HTTP status code the transport should answer with.
func Status(err error) int {
	return statusByKind[KindOf(err)]
}

func IsNotFound(err error) bool {
	return KindOf(err) == NotFound
}

func IsForbidden(err error) bool {
	return KindOf(err) == Forbidden
}
