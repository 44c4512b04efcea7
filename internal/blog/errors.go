// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrNotFound is returned by operations that must act on an existing row
// when that row does not exist. Lookups return a nil result instead.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input, keyed by JSON field name.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Fields
}

// asValidationError converts the result of an ozzo validation into a
// *ValidationError. Internal rule errors are passed through unchanged.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if errors.As(err, &fields) {
		return &ValidationError{Fields: fields}
	}
	return err
}

// invalidField builds a ValidationError for a single field.
func invalidField(field, msg string) error {
	return &ValidationError{Fields: validation.Errors{field: errors.New(msg)}}
}
