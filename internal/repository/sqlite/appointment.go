package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/dacaceros97/mentorias-backend/internal/entities"
)

const (
	appointmentColumns = `id, student_name, student_email, mentor_id, appointment_date, appointment_time,
       duration_minutes, status, created_at`

	insertAppointmentQuery = `
INSERT INTO appointments
    (student_name, student_email, mentor_id, appointment_date, appointment_time, duration_minutes, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + appointmentColumns

	listAppointmentsQuery = `
SELECT ` + appointmentColumns + `
FROM appointments
ORDER BY appointment_date ASC, appointment_time ASC, id ASC`
)

type scanner interface {
	Scan(dest ...any) error
}

// InsertAppointment stores a pending appointment for the given mentor and returns the stored row.
func (s *SQLite) InsertAppointment(ctx context.Context, req entities.AppointmentRequest, mentorID int64) (*entities.Appointment, error) {
	row := s.db.QueryRowContext(ctx, insertAppointmentQuery,
		req.StudentName, req.StudentEmail, mentorID,
		req.AppointmentDate, req.AppointmentTime, req.Duration(), string(entities.StatusPending),
		time.Now().UTC().Format(time.RFC3339Nano),
	)

	a, err := scanAppointment(row)
	if err != nil {
		s.log.Errorw("failed to insert appointment", "error", err, "mentor_id", mentorID)
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	s.log.Infow("appointment created", "appointment_id", a.ID, "mentor_id", mentorID)
	return a, nil
}

// ListAppointments returns every appointment ordered by slot.
func (s *SQLite) ListAppointments(ctx context.Context) ([]entities.Appointment, error) {
	rows, err := s.db.QueryContext(ctx, listAppointmentsQuery)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]entities.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return out, nil
}

func scanAppointment(row scanner) (*entities.Appointment, error) {
	var (
		a         entities.Appointment
		status    string
		createdAt string
	)
	if err := row.Scan(
		&a.ID, &a.StudentName, &a.StudentEmail, &a.MentorID,
		&a.AppointmentDate, &a.AppointmentTime,
		&a.DurationMinutes, &status, &createdAt,
	); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	a.Status = entities.AppointmentStatus(status)
	a.CreatedAt = ts
	return &a, nil
}
