// Package forms declares the shape and rules of the console's input forms
// and turns raw drafts into either a clean payload or field-level errors.
package forms

import (
	"sort"
	"strings"
)

// FieldErrors maps a payload field name (its JSON name) to a message.
type FieldErrors map[string]string

// ValidationError is returned by services when a draft is rejected before
// any network call.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Result is either a valid payload or a non-empty set of field errors.
type Result[T any] struct {
	payload T
	errs    FieldErrors
}

func valid[T any](payload T) Result[T] {
	return Result[T]{payload: payload}
}

func invalid[T any](errs FieldErrors) Result[T] {
	return Result[T]{errs: errs}
}

func (r Result[T]) Valid() bool {
	return len(r.errs) == 0
}

// Payload is the zero value when the result is invalid.
func (r Result[T]) Payload() T {
	return r.payload
}

func (r Result[T]) Errors() FieldErrors {
	return r.errs
}

// Err is nil for a valid result and a *ValidationError otherwise.
func (r Result[T]) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Fields: r.errs}
}

func required(errs FieldErrors, field, value, message string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		errs[field] = message
	}
	return v
}

// nonBlank is required without the trimming: value is returned unchanged.
func nonBlank(errs FieldErrors, field, value, message string) string {
	required(errs, field, value, message)
	return value
}
