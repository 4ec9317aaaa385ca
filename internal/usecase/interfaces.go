package usecase

import (
	"context"

	"github.com/dacaceros97/mentorias-backend/internal/entities"
)

// AppointmentUsecaseInterface abstracts appointment operations for delivery layer.
type AppointmentUsecaseInterface interface {
	CreateAppointment(ctx context.Context, req entities.AppointmentRequest) (*entities.Appointment, error)
	ListAppointments(ctx context.Context) ([]entities.Appointment, error)
}
