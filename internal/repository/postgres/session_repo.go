package postgres

import (
	"context"
	"database/sql"
	"errors"

	"confkit/internal/domain"
)

const sessionColumns = `id, event_id, title, date, start_time, end_time,
	description, speaker, venue, created_at, updated_at`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func scanSession(row rowScanner) (*domain.Session, error) {
	s := &domain.Session{}
	var desc, speaker, venue sql.NullString
	err := row.Scan(
		&s.ID, &s.EventID, &s.Title, &s.Date, &s.StartTime, &s.EndTime,
		&desc, &speaker, &venue, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Description = fromNull(desc)
	s.Speaker = fromNull(speaker)
	s.Venue = fromNull(venue)
	return s, nil
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (event_id, title, date, start_time, end_time,
			description, speaker, venue, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.EventID, s.Title, s.Date, s.StartTime, s.EndTime,
		toNull(s.Description), toNull(s.Speaker), toNull(s.Venue),
		s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE event_id = $1 ORDER BY date, start_time`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) Update(ctx context.Context, id string, upd domain.SessionUpdate) (*domain.Session, error) {
	query := `
		UPDATE sessions SET
			title = $1, date = $2, start_time = $3, end_time = $4,
			description = $5, speaker = $6, venue = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + sessionColumns
	s, err := scanSession(r.DB.QueryRowContext(ctx, query,
		upd.Title, upd.Date, upd.StartTime, upd.EndTime,
		toNull(upd.Description), toNull(upd.Speaker), toNull(upd.Venue),
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
