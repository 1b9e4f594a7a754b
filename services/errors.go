package services

import "errors"

// Service error taxonomy. The HTTP layer maps these to status codes; the
// messages are part of the API surface and must not change.
var (
	// ErrInvalidInput is returned for any malformed name or phone number.
	// The message is deliberately generic for all invalid input.
	ErrInvalidInput = errors.New("Invalid input. Please check your response and try again.")

	// ErrPhoneNumberExists is returned when adding a number already present.
	ErrPhoneNumberExists = errors.New("Phone number already exists in the database")

	// ErrPersonExists is returned when adding a name already present.
	ErrPersonExists = errors.New("Person already exists in the database")

	// ErrPersonNotFound is returned when deleting a record that is absent.
	ErrPersonNotFound = errors.New("Person not found in the database")
)
