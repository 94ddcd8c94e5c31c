package domain

import (
	"context"
	"time"
)

// Session represents a scheduled conference session or talk. Date is a
// calendar date string (YYYY-MM-DD); StartTime and EndTime are wall-clock
// times in HH:MM. Venue is a free-form room/track label.
// swagger:model Session
type Session struct {
	ID          string  `json:"id"`
	EventID     string  `json:"event_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Speaker     *string `json:"speaker"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Venue       *string `json:"venue"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession returns a new Session with the given fields. ID is typically set
// by the repository on create.
func NewSession(eventID, title, date, startTime, endTime string, createdAt, updatedAt time.Time) *Session {
	return &Session{
		EventID:   eventID,
		Title:     title,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// SessionUpdate carries the mutable session fields for a create or update.
type SessionUpdate struct {
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Description *string
	Speaker     *string
	Venue       *string
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Session, error)
	Update(ctx context.Context, id string, upd SessionUpdate) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleService defines the business logic for building an event's
// schedule. Session mutations are validated against the owning event's date
// range before being persisted. Overlap between sessions is not checked.
type ScheduleService interface {
	CreateSession(ctx context.Context, eventID, ownerID string, upd SessionUpdate) (*Session, error)
	ListSessions(ctx context.Context, eventID, ownerID string) ([]*Session, error)
	UpdateSession(ctx context.Context, sessionID, ownerID string, upd SessionUpdate) (*Session, error)
	DeleteSession(ctx context.Context, sessionID, ownerID string) error
}
