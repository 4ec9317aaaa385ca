// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingFields signals that a required appointment field is empty.
	ErrMissingFields = fmt.Errorf("%w: missing required fields", ErrInvalidArgument)
	// ErrNoMentorAvailable signals that no mentor is registered to take the appointment.
	ErrNoMentorAvailable = errors.New("no mentor available")
	// ErrMentorNotFound is returned when a mentor does not exist.
	ErrMentorNotFound = errors.New("mentor not found")
	// ErrStorage wraps failures of the persistence layer on a required path.
	ErrStorage = errors.New("storage failure")
)
