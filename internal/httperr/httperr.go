// Package httperr defines the structured errors returned by the service
// layer and rendered by the HTTP error handler.
package httperr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	// DefaultCode is the generic short code attached to failures that
	// have no more specific code.
	DefaultCode = "E002"
)

// Error carries an HTTP status, a short machine code, and either a
// per-field error map or a plain message.
type Error struct {
	Status int
	Code   string
	Fields map[string]string
	Msg    string
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for k, v := range e.Fields {
			parts = append(parts, k+": "+v)
		}
		sort.Strings(parts)
		return fmt.Sprintf("%d: %s", e.Status, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Msg)
}

// Message returns the payload for the response "message" field: the field
// map when present, the plain message otherwise.
func (e *Error) Message() any {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	if e.Msg == "" {
		return "FAIL"
	}
	return e.Msg
}

// NotFound reports entity absence (unknown email, unknown hash, ...).
func NotFound(fields map[string]string) *Error {
	return &Error{Status: fiber.StatusNotFound, Code: DefaultCode, Fields: fields}
}

// Unprocessable reports a valid entity reached through the wrong
// authentication path or with the wrong credential.
func Unprocessable(fields map[string]string) *Error {
	return &Error{Status: fiber.StatusUnprocessableEntity, Code: DefaultCode, Fields: fields}
}

// BadRequest wraps malformed input or an opaque persistence failure.
func BadRequest(msg string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Code: DefaultCode, Msg: msg}
}

// Validation reports declarative request-validation failures, one message
// per offending field.
func Validation(fields map[string]string) *Error {
	return &Error{Status: fiber.StatusUnprocessableEntity, Code: DefaultCode, Fields: fields}
}
