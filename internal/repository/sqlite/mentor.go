package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dacaceros97/mentorias-backend/config"
	"github.com/dacaceros97/mentorias-backend/internal/entities"
	"github.com/dacaceros97/mentorias-backend/internal/repository/pick"
)

const (
	selectLowestMentorIDQuery = `SELECT id FROM mentors ORDER BY id LIMIT 1`
	selectMentorIDsQuery      = `SELECT id FROM mentors`
	selectMentorNameQuery     = `SELECT name FROM mentors WHERE id = ?`
)

// SelectMentorID picks a mentor according to the configured assignment policy.
func (s *SQLite) SelectMentorID(ctx context.Context) (int64, error) {
	if s.policy == config.PolicyRandom {
		return s.selectRandomMentorID(ctx)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, selectLowestMentorIDQuery).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, entities.ErrNoMentorAvailable
		}
		s.log.Errorw("failed to select mentor", "error", err)
		return 0, fmt.Errorf("select mentor: %w", err)
	}
	return id, nil
}

func (s *SQLite) selectRandomMentorID(ctx context.Context) (int64, error) {
	rows, err := s.db.QueryContext(ctx, selectMentorIDsQuery)
	if err != nil {
		return 0, fmt.Errorf("select mentors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan mentor: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate mentors: %w", err)
	}
	if len(ids) == 0 {
		return 0, entities.ErrNoMentorAvailable
	}
	return pick.One(ids), nil
}

// MentorName returns the display name of a mentor.
func (s *SQLite) MentorName(ctx context.Context, mentorID int64) (string, error) {
	var name string
	if err := s.db.QueryRowContext(ctx, selectMentorNameQuery, mentorID).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", entities.ErrMentorNotFound
		}
		return "", fmt.Errorf("select mentor name: %w", err)
	}
	return name, nil
}
