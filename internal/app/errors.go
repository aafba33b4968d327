// Package app holds the pieces shared by every resource service: the
// status-carrying error taxonomy and the pagination policy.
package app

import (
	"errors"
	"net/http"
)

// Error is a request outcome with an HTTP status. All validation and
// authorization failures are raised as *Error and converted into the
// response envelope at the HTTP boundary; anything else renders as a
// generic 500.
type Error struct {
	Status  int
	Message string
	// Tag is surfaced to clients as an errorType payload, used to
	// distinguish expired from invalid tokens.
	Tag string
}

func (e *Error) Error() string {
	return e.Message
}

// AsError unwraps err to an *Error if it carries one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// BadRequest rejects malformed or missing input.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized rejects missing or invalid credentials.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden rejects an authenticated caller lacking the required role, or a
// valid entity referenced through an invalid relationship.
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NotFound reports an absent referenced entity.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict reports a duplicate (email, favourite, admin).
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Tagged builds an error whose envelope carries an errorType payload.
func Tagged(status int, message, tag string) *Error {
	return &Error{Status: status, Message: message, Tag: tag}
}

// Messages shared across resources.
const (
	MsgBadRequest   = "Bad Request"
	MsgForbidden    = "Forbidden Access/Operation not allowed."
	MsgNotFound     = "Resource Doesn't Exist."
	MsgUnauthorized = "Unauthorized Access"
)
