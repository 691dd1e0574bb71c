package todo

import (
	"fmt"

	"github.com/adamwoolhether/todoapi/client"
)

// Kind enumerates the closed set of domain errors.
type Kind int

const (
	// KindUnknown is a success response whose body could not be decoded.
	KindUnknown Kind = iota
	// KindItemNotFound is a 404 response.
	KindItemNotFound
	// KindUnknownAPI is any other non-success status.
	KindUnknownAPI
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "UnknownError"
	case KindItemNotFound:
		return "ItemNotFound"
	case KindUnknownAPI:
		return "UnknownApiError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a classified failure returned in the error arm of every
// operation's result. Values are comparable: two Errors are equal when
// their kinds match and, for KindUnknownAPI, their status codes match.
type Error struct {
	kind Kind
	code int
}

var (
	// ErrItemNotFound is returned when the server answers 404.
	ErrItemNotFound = Error{kind: KindItemNotFound}
	// ErrUnknown is returned when a 200 body can't be decoded into the
	// expected shape.
	ErrUnknown = Error{kind: KindUnknown}
)

var (
	// ErrTransport is wrapped by the error return of every operation whose
	// HTTP exchange failed. It is never part of a result.
	ErrTransport = client.ErrTransport
	// ErrRequest is wrapped when an outgoing request could not be built.
	ErrRequest = client.ErrRequest
)

// UnknownAPIError returns the error for an unhandled status code.
func UnknownAPIError(code int) Error {
	return Error{kind: KindUnknownAPI, code: code}
}

// Kind reports which member of the taxonomy e is.
func (e Error) Kind() Kind {
	return e.kind
}

// StatusCode returns the HTTP status carried by an UnknownApiError.
func (e Error) StatusCode() (int, bool) {
	if e.kind != KindUnknownAPI {
		return 0, false
	}

	return e.code, true
}

func (e Error) Error() string {
	switch e.kind {
	case KindItemNotFound:
		return "todo: item not found"
	case KindUnknownAPI:
		return fmt.Sprintf("todo: unknown api error: status %d", e.code)
	default:
		return "todo: unknown error decoding response"
	}
}
