// Package entities contains core business entities.
package entities

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultDurationMinutes is stored when a request does not carry a duration.
	DefaultDurationMinutes = 60
	// MaxDurationMinutes bounds a single session to one day.
	MaxDurationMinutes = 24 * 60
)

const (
	clockMinutes = "15:04"
	clockSeconds = "15:04:05"
)

// AppointmentStatus enumerates appointment lifecycle states.
type AppointmentStatus string

const (
	// StatusPending is the only state set on creation.
	StatusPending AppointmentStatus = "pending"
	// StatusConfirmed marks an appointment confirmed by the mentor.
	StatusConfirmed AppointmentStatus = "confirmed"
	// StatusCancelled marks an appointment cancelled.
	StatusCancelled AppointmentStatus = "cancelled"
	// StatusCompleted marks an appointment that took place.
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment is a booked mentoring session.
type Appointment struct {
	ID              int64
	StudentName     string
	StudentEmail    string
	MentorID        int64
	AppointmentDate string
	AppointmentTime string
	DurationMinutes int
	Status          AppointmentStatus
	CreatedAt       time.Time
}

// AppointmentRequest carries the requester supplied fields of a new appointment.
type AppointmentRequest struct {
	StudentName     string
	StudentEmail    string
	AppointmentDate string
	AppointmentTime string
	DurationMinutes *int
}

// Normalize trims surrounding whitespace from the text fields.
func (r AppointmentRequest) Normalize() AppointmentRequest {
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.StudentEmail = strings.TrimSpace(r.StudentEmail)
	r.AppointmentDate = strings.TrimSpace(r.AppointmentDate)
	r.AppointmentTime = strings.TrimSpace(r.AppointmentTime)
	return r
}

// HasRequiredFields reports whether name, email, date and time are all present.
func (r AppointmentRequest) HasRequiredFields() bool {
	return r.StudentName != "" && r.StudentEmail != "" && r.AppointmentDate != "" && r.AppointmentTime != ""
}

// Duration returns the requested duration, or DefaultDurationMinutes when absent or zero.
func (r AppointmentRequest) Duration() int {
	if r.DurationMinutes == nil || *r.DurationMinutes == 0 {
		return DefaultDurationMinutes
	}
	return *r.DurationMinutes
}

// CanonicalSlot checks that the date is YYYY-MM-DD and the time is HH:MM or HH:MM:SS, both
// zero padded. Times with zero seconds are reduced to HH:MM so every backend stores and
// orders the same text.
func (r AppointmentRequest) CanonicalSlot() (AppointmentRequest, error) {
	if d, err := time.Parse(time.DateOnly, r.AppointmentDate); err != nil || d.Format(time.DateOnly) != r.AppointmentDate {
		return r, fmt.Errorf("%w: appointmentDate must be YYYY-MM-DD", ErrInvalidArgument)
	}

	layout := clockMinutes
	if len(r.AppointmentTime) == len(clockSeconds) {
		layout = clockSeconds
	}
	t, err := time.Parse(layout, r.AppointmentTime)
	if err != nil || t.Format(layout) != r.AppointmentTime {
		return r, fmt.Errorf("%w: appointmentTime must be HH:MM or HH:MM:SS", ErrInvalidArgument)
	}
	if t.Second() == 0 {
		r.AppointmentTime = t.Format(clockMinutes)
	}
	return r, nil
}

// CheckDuration rejects negative durations and durations above MaxDurationMinutes.
func (r AppointmentRequest) CheckDuration() error {
	if r.DurationMinutes == nil {
		return nil
	}
	switch d := *r.DurationMinutes; {
	case d < 0:
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidArgument)
	case d > MaxDurationMinutes:
		return fmt.Errorf("%w: durationMinutes must not exceed %d", ErrInvalidArgument, MaxDurationMinutes)
	}
	return nil
}
