// Package dto holds the JSON shapes of the HTTP API.
package dto

import "time"

// CreateAppointmentRequest is the body of POST /api/appointments.
type CreateAppointmentRequest struct {
	StudentName     string `json:"studentName"`
	StudentEmail    string `json:"studentEmail"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}

// Appointment is the transport form of a stored appointment.
type Appointment struct {
	ID              int64     `json:"id"`
	StudentName     string    `json:"studentName"`
	StudentEmail    string    `json:"studentEmail"`
	MentorID        int64     `json:"mentorId"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateAppointmentResponse is returned with 201 Created.
type CreateAppointmentResponse struct {
	Message     string      `json:"message"`
	Appointment Appointment `json:"appointment"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
