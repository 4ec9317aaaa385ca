// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/dacaceros97/mentorias-backend/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
	Ping(ctx context.Context) error
}

// MentorInterface exposes mentor-related operations.
type MentorInterface interface {
	// SelectMentorID returns ErrNoMentorAvailable when no mentor is registered.
	SelectMentorID(ctx context.Context) (int64, error)
	// MentorName returns ErrMentorNotFound for unknown ids.
	MentorName(ctx context.Context, mentorID int64) (string, error)
}

// AppointmentInterface exposes appointment-related operations.
type AppointmentInterface interface {
	InsertAppointment(ctx context.Context, req entities.AppointmentRequest, mentorID int64) (*entities.Appointment, error)
	// ListAppointments orders by appointment date, then time, then id.
	ListAppointments(ctx context.Context) ([]entities.Appointment, error)
}
