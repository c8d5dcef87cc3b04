// Package apierror provides the standardized error vocabulary for the API.
// Every error returned to a client goes through this package so that the
// HTTP status mapping lives in exactly one place: Validation → 400,
// NotFound → 404, Conflict → 409, everything else → 500.
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies an error into one of the HTTP-mappable categories.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

// Error is the canonical application error carried from repository and
// service code up to the handler boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, surfaced on 500 responses only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the classification for any error; unclassified errors are
// internal.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return KindInternal
	}
	return e.Kind
}

// StatusOf returns the HTTP status code for any error.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Response is the JSON envelope for all 4xx/5xx responses. The error field
// is only populated for internal errors — this is an internal admin tool and
// surfacing the raw message is an accepted trade-off.
type Response struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ResponseFor builds the wire envelope for an error.
func ResponseFor(err error) Response {
	var e *Error
	if !errors.As(err, &e) {
		return Response{Message: "Internal server error", Error: err.Error()}
	}
	if e.Kind == KindInternal {
		msg := e.Message
		if msg == "" {
			msg = "Internal server error"
		}
		r := Response{Message: msg}
		if e.Err != nil {
			r.Error = e.Err.Error()
		}
		return r
	}
	return Response{Message: e.Message}
}
