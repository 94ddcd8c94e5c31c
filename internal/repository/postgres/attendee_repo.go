package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"confkit/internal/domain"
)

const attendeeColumns = `id, event_id, email, first_name, last_name,
	company, job_title, phone, created_at, updated_at`

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{DB: db}
}

func scanAttendee(row rowScanner) (*domain.Attendee, error) {
	a := &domain.Attendee{}
	var company, jobTitle, phone sql.NullString
	err := row.Scan(
		&a.ID, &a.EventID, &a.Email, &a.FirstName, &a.LastName,
		&company, &jobTitle, &phone, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Company = fromNull(company)
	a.JobTitle = fromNull(jobTitle)
	a.Phone = fromNull(phone)
	return a, nil
}

func (r *attendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	query := `
		INSERT INTO attendees (event_id, email, first_name, last_name,
			company, job_title, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		a.EventID, a.Email, a.FirstName, a.LastName,
		toNull(a.Company), toNull(a.JobTitle), toNull(a.Phone),
		a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *attendeeRepository) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM attendees WHERE id = $1`
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) ListByEventID(ctx context.Context, eventID string, p domain.PaginationParams) ([]*domain.Attendee, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendees WHERE event_id = $1`, eventID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + attendeeColumns + `
		FROM attendees
		WHERE event_id = $1
		ORDER BY last_name, first_name
		LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, eventID, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, 0, err
		}
		attendees = append(attendees, a)
	}
	return attendees, total, rows.Err()
}

func (r *attendeeRepository) Update(ctx context.Context, id string, upd domain.AttendeeUpdate) (*domain.Attendee, error) {
	query := `
		UPDATE attendees SET
			email = $1, first_name = $2, last_name = $3,
			company = $4, job_title = $5, phone = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING ` + attendeeColumns
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query,
		upd.Email, upd.FirstName, upd.LastName,
		toNull(upd.Company), toNull(upd.JobTitle), toNull(upd.Phone),
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM attendees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
