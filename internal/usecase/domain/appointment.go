// Package domain contains application services orchestrating domain logic by appointment.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/dacaceros97/mentorias-backend/internal/entities"
)

// CreateAppointment validates the request, assigns a mentor, stores the appointment and
// hands it to the notifier. The returned appointment is the stored row.
func (u *Usecase) CreateAppointment(ctx context.Context, req entities.AppointmentRequest) (*entities.Appointment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	req = req.Normalize()
	if !req.HasRequiredFields() {
		return nil, entities.ErrMissingFields
	}
	if err := req.CheckDuration(); err != nil {
		return nil, err
	}
	req, err := req.CanonicalSlot()
	if err != nil {
		return nil, err
	}

	mentorID, err := u.repo.SelectMentorID(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrNoMentorAvailable) {
			u.log.Warnw("appointment rejected: no mentor registered")
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", entities.ErrStorage, err)
	}

	appt, err := u.repo.InsertAppointment(ctx, req, mentorID)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidArgument) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", entities.ErrStorage, err)
	}

	u.notifier.AppointmentCreated(*appt)
	u.log.Infow("appointment booked", "appointment_id", appt.ID, "mentor_id", appt.MentorID)
	return appt, nil
}

// ListAppointments returns all appointments ordered by date and time.
func (u *Usecase) ListAppointments(ctx context.Context) ([]entities.Appointment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	list, err := u.repo.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrStorage, err)
	}
	return list, nil
}
