// Package apperr defines the application-level fault type used across the
// service and HTTP layers.
//
// An apperr.Error carries the HTTP status and the client-safe message as
// data, so a fault produced deep inside a service (a failed existence check,
// a rejected payload) travels to the transport layer without the handler
// having to re-derive either. The error classifier in the handlers package
// passes these through verbatim; anything else is treated as a storage or
// unknown fault.
package apperr

import (
	"fmt"
	"net/http"
)

// Error is a fault with an HTTP status and a message safe to show to clients.
type Error struct {
	Status int
	Msg    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Msg)
}

// New returns an Error with the given status and message.
func New(status int, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

// BadRequest returns a 400 fault. An empty msg defaults to "Bad request".
func BadRequest(msg string) *Error {
	if msg == "" {
		msg = "Bad request"
	}
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

// NotFound returns a 404 fault. An empty msg defaults to "Not found".
func NotFound(msg string) *Error {
	if msg == "" {
		msg = "Not found"
	}
	return &Error{Status: http.StatusNotFound, Msg: msg}
}
