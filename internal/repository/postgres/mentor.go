package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dacaceros97/mentorias-backend/config"
	"github.com/dacaceros97/mentorias-backend/internal/entities"
	"github.com/dacaceros97/mentorias-backend/internal/repository/pick"

	"github.com/jackc/pgx/v5"
)

const (
	selectLowestMentorIDQuery = `SELECT id FROM mentoring.mentors ORDER BY id LIMIT 1`
	selectMentorIDsQuery      = `SELECT id FROM mentoring.mentors`
	selectMentorNameQuery     = `SELECT name FROM mentoring.mentors WHERE id = $1`
)

// SelectMentorID picks a mentor according to the configured assignment policy.
func (p *Postgres) SelectMentorID(ctx context.Context) (int64, error) {
	if p.policy == config.PolicyRandom {
		return p.selectRandomMentorID(ctx)
	}

	var id int64
	if err := p.db.QueryRow(ctx, selectLowestMentorIDQuery).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entities.ErrNoMentorAvailable
		}
		p.log.Errorw("failed to select mentor", "error", err)
		return 0, fmt.Errorf("select mentor: %w", err)
	}
	return id, nil
}

func (p *Postgres) selectRandomMentorID(ctx context.Context) (int64, error) {
	rows, err := p.db.Query(ctx, selectMentorIDsQuery)
	if err != nil {
		p.log.Errorw("failed to select mentors", "error", err)
		return 0, fmt.Errorf("select mentors: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		p.log.Errorw("failed to scan mentors", "error", err)
		return 0, fmt.Errorf("scan mentors: %w", err)
	}
	if len(ids) == 0 {
		return 0, entities.ErrNoMentorAvailable
	}
	return pick.One(ids), nil
}

// MentorName returns the display name of a mentor.
func (p *Postgres) MentorName(ctx context.Context, mentorID int64) (string, error) {
	var name string
	if err := p.db.QueryRow(ctx, selectMentorNameQuery, mentorID).Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entities.ErrMentorNotFound
		}
		return "", fmt.Errorf("select mentor name: %w", err)
	}
	return name, nil
}
