// Package apperrors defines the error taxonomy shared by services and
// handlers: not-found, validation, conflict, and render failures. Handlers
// map each category to an HTTP status exactly once, via StatusCode.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError reports a missing lot, farm, activity, or other entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for a resource and its identifier.
func NotFound(resource string, id interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: fmt.Sprintf("%v", id)}
}

// ValidationError reports a schema violation on input with field-level detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError for a named field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a uniqueness violation, e.g. a duplicate farm code.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Resource, e.Field, e.Value)
}

// Conflict builds a ConflictError.
func Conflict(resource, field, value string) *ConflictError {
	return &ConflictError{Resource: resource, Field: field, Value: value}
}

// RenderError reports a barcode or PDF generation failure.
type RenderError struct {
	Stage string // "barcode" or "pdf"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s render failed: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Render wraps err as a RenderError for the given stage.
func Render(stage string, err error) *RenderError {
	return &RenderError{Stage: stage, Err: err}
}

// StatusCode maps an error to its HTTP status. Unrecognized errors are 500s.
func StatusCode(err error) int {
	var nf *NotFoundError
	var ve *ValidationError
	var ce *ConflictError
	var re *RenderError

	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ce):
		return http.StatusConflict
	case errors.As(err, &re):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
