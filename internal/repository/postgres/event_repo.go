package postgres

import (
	"context"
	"database/sql"
	"errors"

	"confkit/internal/domain"
)

// eventColumns is the select list shared by every event query, in scan order.
const eventColumns = `id, owner_id, name, app_code, start_date, end_date,
	description, primary_color, accent_color,
	organizer_name, organizer_email, organizer_phone,
	organization_name, organization_website,
	venue_name, venue_address, venue_maps_link,
	created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var (
		desc, primary, accent              sql.NullString
		orgName, orgEmail, orgPhone        sql.NullString
		organizationName, organizationSite sql.NullString
		venueName, venueAddr, venueMaps    sql.NullString
	)
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Name, &e.AppCode, &e.StartDate, &e.EndDate,
		&desc, &primary, &accent,
		&orgName, &orgEmail, &orgPhone,
		&organizationName, &organizationSite,
		&venueName, &venueAddr, &venueMaps,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Description = fromNull(desc)
	e.PrimaryColor = fromNull(primary)
	e.AccentColor = fromNull(accent)
	e.OrganizerName = fromNull(orgName)
	e.OrganizerEmail = fromNull(orgEmail)
	e.OrganizerPhone = fromNull(orgPhone)
	e.OrganizationName = fromNull(organizationName)
	e.OrganizationWebsite = fromNull(organizationSite)
	e.VenueName = fromNull(venueName)
	e.VenueAddress = fromNull(venueAddr)
	e.VenueMapsLink = fromNull(venueMaps)
	return e, nil
}

func fromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func toNull(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (owner_id, name, app_code, start_date, end_date,
			description, primary_color, accent_color,
			organizer_name, organizer_email, organizer_phone,
			organization_name, organization_website,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.OwnerID, e.Name, e.AppCode, e.StartDate, e.EndDate,
		toNull(e.Description), toNull(e.PrimaryColor), toNull(e.AccentColor),
		toNull(e.OrganizerName), toNull(e.OrganizerEmail), toNull(e.OrganizerPhone),
		toNull(e.OrganizationName), toNull(e.OrganizationWebsite),
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetByAppCode(ctx context.Context, appCode string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE app_code = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, appCode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) UpdateSetup(ctx context.Context, id string, upd domain.EventSetupUpdate) (*domain.Event, error) {
	query := `
		UPDATE events SET
			name = $1, start_date = $2, end_date = $3,
			description = $4, primary_color = $5, accent_color = $6,
			organizer_name = $7, organizer_email = $8, organizer_phone = $9,
			organization_name = $10, organization_website = $11,
			updated_at = NOW()
		WHERE id = $12
		RETURNING ` + eventColumns
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query,
		upd.Name, upd.StartDate, upd.EndDate,
		toNull(upd.Description), toNull(upd.PrimaryColor), toNull(upd.AccentColor),
		toNull(upd.OrganizerName), toNull(upd.OrganizerEmail), toNull(upd.OrganizerPhone),
		toNull(upd.OrganizationName), toNull(upd.OrganizationWebsite),
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) UpdateVenue(ctx context.Context, id string, upd domain.VenueUpdate) (*domain.Event, error) {
	query := `
		UPDATE events SET
			venue_name = $1, venue_address = $2, venue_maps_link = $3,
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + eventColumns
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query,
		toNull(upd.VenueName), toNull(upd.VenueAddress), toNull(upd.VenueMapsLink), id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
