package domain

import (
	"context"
	"time"
)

// Event represents a conference event an organizer is configuring: setup and
// branding fields, the event date range, organizer contact details, and the
// venue panel. Optional form fields are pointers; nil means "not provided".
// swagger:model Event
type Event struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Name        string  `json:"name"`
	AppCode     string  `json:"app_code"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`

	PrimaryColor *string `json:"primary_color"`
	AccentColor  *string `json:"accent_color"`

	OrganizerName       *string `json:"organizer_name"`
	OrganizerEmail      *string `json:"organizer_email"`
	OrganizerPhone      *string `json:"organizer_phone"`
	OrganizationName    *string `json:"organization_name"`
	OrganizationWebsite *string `json:"organization_website"`

	VenueName     *string `json:"venue_name"`
	VenueAddress  *string `json:"venue_address"`
	VenueMapsLink *string `json:"venue_maps_link"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the required setup fields. ID is typically
// set by the repository on create.
func NewEvent(ownerID, name, startDate, endDate string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		OwnerID:   ownerID,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// EventSetupUpdate carries the setup/branding fields for a create or update.
// Required fields are plain strings; optional ones are pointers where nil
// clears the stored value.
type EventSetupUpdate struct {
	Name                string
	StartDate           string
	EndDate             string
	Description         *string
	PrimaryColor        *string
	AccentColor         *string
	OrganizerName       *string
	OrganizerEmail      *string
	OrganizerPhone      *string
	OrganizationName    *string
	OrganizationWebsite *string
}

// VenueUpdate carries the venue panel fields for an update.
type VenueUpdate struct {
	VenueName     *string
	VenueAddress  *string
	VenueMapsLink *string
}

// AppLink is the result of generating the attendee-facing app: the public URL
// and a PNG-encoded QR code for it.
// swagger:model AppLink
type AppLink struct {
	URL   string `json:"url"`
	QRPNG []byte `json:"qr_png"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetByAppCode(ctx context.Context, appCode string) (*Event, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Event, error)
	UpdateSetup(ctx context.Context, id string, upd EventSetupUpdate) (*Event, error)
	UpdateVenue(ctx context.Context, id string, upd VenueUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the organizer-facing business logic for event
// configuration. Every mutation validates its input first and returns a
// *ValidationFailedError when the input does not pass.
type EventService interface {
	CreateEvent(ctx context.Context, ownerID string, upd EventSetupUpdate) (*Event, error)
	GetEvent(ctx context.Context, eventID, ownerID string) (*Event, error)
	GetEventByAppCode(ctx context.Context, appCode string) (*Event, error)
	ListMyEvents(ctx context.Context, ownerID string) ([]*Event, error)
	UpdateEventSetup(ctx context.Context, eventID, ownerID string, upd EventSetupUpdate) (*Event, error)
	UpdateVenue(ctx context.Context, eventID, ownerID string, upd VenueUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, ownerID string) error
	// GenerateApp builds the public attendee link for the event plus its QR
	// code and, when emailLink is set, emails the link to the organizer.
	GenerateApp(ctx context.Context, eventID, ownerID string, emailLink bool) (*AppLink, error)
}
