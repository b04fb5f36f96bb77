package relay

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// KindInput is a missing or invalid request field.
	KindInput Kind = iota + 1
	// KindConfiguration is a missing service credential.
	KindConfiguration
	// KindUpstream is a failed or malformed reply from the service.
	KindUpstream
	// KindEmptyResult is a well-formed reply without usable text.
	KindEmptyResult
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindConfiguration:
		return "configuration"
	case KindUpstream:
		return "upstream"
	case KindEmptyResult:
		return "empty_result"
	default:
		return "unknown"
	}
}

// Error is what the relay returns for every failure. Msg is safe to show
// to clients, Err keeps the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Status() int {
	if e.Kind == KindInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func InputError(msg string) *Error {
	return &Error{Kind: KindInput, Msg: msg}
}

// KindOf returns the Kind of err, or 0 when err isn't a relay error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
