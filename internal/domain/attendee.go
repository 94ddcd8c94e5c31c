package domain

import (
	"context"
	"time"
)

// Attendee represents a roster entry for an event.
// swagger:model Attendee
type Attendee struct {
	ID        string  `json:"id"`
	EventID   string  `json:"event_id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Company   *string `json:"company"`
	JobTitle  *string `json:"job_title"`
	Phone     *string `json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAttendee returns a new Attendee with the given fields. ID is typically
// set by the repository on create.
func NewAttendee(eventID, email, firstName, lastName string, createdAt, updatedAt time.Time) *Attendee {
	return &Attendee{
		EventID:   eventID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// AttendeeUpdate carries the mutable attendee fields for a create or update.
type AttendeeUpdate struct {
	Email     string
	FirstName string
	LastName  string
	Company   *string
	JobTitle  *string
	Phone     *string
}

// CSVImportSummary reports the outcome of a bulk CSV import: how many rows
// were inserted and how many were skipped because the email already exists on
// the roster.
// swagger:model CSVImportSummary
type CSVImportSummary struct {
	Imported   int      `json:"imported"`
	Duplicates int      `json:"duplicates"`
	Skipped    []string `json:"skipped"`
}

// AttendeeRepository defines the interface for attendee storage.
type AttendeeRepository interface {
	Create(ctx context.Context, attendee *Attendee) error
	GetByID(ctx context.Context, id string) (*Attendee, error)
	ListByEventID(ctx context.Context, eventID string, p PaginationParams) ([]*Attendee, int, error)
	Update(ctx context.Context, id string, upd AttendeeUpdate) (*Attendee, error)
	Delete(ctx context.Context, id string) error
}

// AttendeeService defines the business logic for roster management, including
// bulk CSV import. Mutations are validated before being persisted.
type AttendeeService interface {
	AddAttendee(ctx context.Context, eventID, ownerID string, upd AttendeeUpdate) (*Attendee, error)
	ListAttendees(ctx context.Context, eventID, ownerID string, p PaginationParams) ([]*Attendee, int, error)
	UpdateAttendee(ctx context.Context, attendeeID, ownerID string, upd AttendeeUpdate) (*Attendee, error)
	DeleteAttendee(ctx context.Context, attendeeID, ownerID string) error
	// ImportCSV validates the raw CSV blob as a whole and, when it passes,
	// inserts every row. Rows whose email already exists on the roster are
	// counted as duplicates and skipped; the import itself is not rolled back.
	ImportCSV(ctx context.Context, eventID, ownerID, rawCSV string) (*CSVImportSummary, error)
}
