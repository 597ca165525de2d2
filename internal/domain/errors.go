package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request payload fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a numeric identifier in a request is
	// malformed, for example a non-integer article_id path parameter.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidQueryParam is returned when a query-string parameter is
	// malformed, for example a non-positive limit or page number.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
