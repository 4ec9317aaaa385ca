// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/dacaceros97/mentorias-backend/internal/entities"
	"github.com/dacaceros97/mentorias-backend/internal/transport/http/dto"
)

// FromCreateAppointment builds an entities.AppointmentRequest from transport DTO.
func FromCreateAppointment(src dto.CreateAppointmentRequest) entities.AppointmentRequest {
	return entities.AppointmentRequest{
		StudentName:     src.StudentName,
		StudentEmail:    src.StudentEmail,
		AppointmentDate: src.AppointmentDate,
		AppointmentTime: src.AppointmentTime,
		DurationMinutes: src.DurationMinutes,
	}
}

// ToAppointment maps entities.Appointment to transport model.
func ToAppointment(a entities.Appointment) dto.Appointment {
	return dto.Appointment{
		ID:              a.ID,
		StudentName:     a.StudentName,
		StudentEmail:    a.StudentEmail,
		MentorID:        a.MentorID,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
	}
}

// ToAppointmentList maps a slice of appointments, never returning nil.
func ToAppointmentList(src []entities.Appointment) []dto.Appointment {
	out := make([]dto.Appointment, 0, len(src))
	for _, a := range src {
		out = append(out, ToAppointment(a))
	}
	return out
}
