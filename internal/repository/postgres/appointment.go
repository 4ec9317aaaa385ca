package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dacaceros97/mentorias-backend/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// times with zero seconds render as HH:MM, matching the canonical request form
	appointmentColumns = `id, student_name, student_email, mentor_id,
       to_char(appointment_date, 'YYYY-MM-DD'),
       CASE WHEN date_part('second', appointment_time) = 0
            THEN to_char(appointment_time, 'HH24:MI')
            ELSE to_char(appointment_time, 'HH24:MI:SS') END,
       duration_minutes, status, created_at`

	insertAppointmentQuery = `
INSERT INTO mentoring.appointments
    (student_name, student_email, mentor_id, appointment_date, appointment_time, duration_minutes, status)
VALUES ($1, $2, $3, CAST($4::text AS date), CAST($5::text AS time), $6, $7)
RETURNING ` + appointmentColumns

	listAppointmentsQuery = `
SELECT ` + appointmentColumns + `
FROM mentoring.appointments
ORDER BY appointment_date ASC, appointment_time ASC, id ASC`
)

// InsertAppointment stores a pending appointment for the given mentor and returns the stored row.
func (p *Postgres) InsertAppointment(ctx context.Context, req entities.AppointmentRequest, mentorID int64) (*entities.Appointment, error) {
	row := p.db.QueryRow(ctx, insertAppointmentQuery,
		req.StudentName, req.StudentEmail, mentorID,
		req.AppointmentDate, req.AppointmentTime, req.Duration(), entities.StatusPending,
	)

	a, err := scanAppointment(row)
	if err != nil {
		p.log.Errorw("failed to insert appointment", "error", err, "mentor_id", mentorID)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && isDateTimeInputError(pgErr.Code) {
			return nil, fmt.Errorf("%w: %s", entities.ErrInvalidArgument, pgErr.Message)
		}
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	p.log.Infow("appointment created", "appointment_id", a.ID, "mentor_id", mentorID)
	return a, nil
}

// ListAppointments returns every appointment ordered by slot.
func (p *Postgres) ListAppointments(ctx context.Context) ([]entities.Appointment, error) {
	rows, err := p.db.Query(ctx, listAppointmentsQuery)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			p.log.Errorw("failed to scan appointment", "error", err)
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, *a)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate appointments", "error", err)
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}

	return out, nil
}

func scanAppointment(row pgx.Row) (*entities.Appointment, error) {
	var a entities.Appointment
	err := row.Scan(
		&a.ID, &a.StudentName, &a.StudentEmail, &a.MentorID,
		&a.AppointmentDate, &a.AppointmentTime,
		&a.DurationMinutes, &a.Status, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// invalid_datetime_format, datetime_field_overflow
func isDateTimeInputError(code string) bool {
	return code == "22007" || code == "22008"
}
