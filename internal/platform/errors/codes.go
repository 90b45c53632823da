// Package errors provides structured, coded errors shared across transports.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Activity errors
	CodeActivityNameEmpty Code = "ACTIVITY_NAME_EMPTY"
	CodeActivityNameTaken Code = "ACTIVITY_NAME_TAKEN"
	CodeActivityNotFound  Code = "ACTIVITY_NOT_FOUND"

	// Signup errors
	CodeEmailEmpty        Code = "STUDENT_EMAIL_EMPTY"
	CodeAlreadyRegistered Code = "STUDENT_ALREADY_REGISTERED"
)

// HTTPStatus maps the code to the status the web surface responds with.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - invalid or conflicting input
	case CodeActivityNameEmpty,
		CodeEmailEmpty,
		CodeAlreadyRegistered:
		return http.StatusBadRequest

	// Not found - resource doesn't exist
	case CodeActivityNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
