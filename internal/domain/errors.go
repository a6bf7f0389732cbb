// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrNoFile is returned when a listing is created without image bytes.
	ErrNoFile = errors.New("no file uploaded")

	// ErrUnsupportedImage is returned when uploaded bytes do not sniff as
	// a JPEG or PNG image.
	ErrUnsupportedImage = errors.New("file must be JPEG or PNG")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
