package domain

import (
	"context"
	"time"
)

// Organizer represents an account that configures events.
// swagger:model Organizer
type Organizer struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOrganizer returns a new Organizer. ID is typically set by the repository on create.
func NewOrganizer(email, name string, createdAt, updatedAt time.Time) *Organizer {
	return &Organizer{
		Email:     email,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated organizer.
type TokenIssuer interface {
	Issue(organizerID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated organizer ID.
type TokenVerifier interface {
	Verify(token string) (organizerID string, err error)
}

// CodeHasher hashes and verifies one-time login codes.
type CodeHasher interface {
	Hash(code string) (string, error)
	Compare(hash, code string) error
}

// OrganizerRepository defines the interface for organizer storage.
type OrganizerRepository interface {
	Create(ctx context.Context, organizer *Organizer) error
	GetByEmail(ctx context.Context, email string) (*Organizer, error)
	GetByID(ctx context.Context, id string) (*Organizer, error)
}

// LoginCodeRepository defines the interface for one-time login code storage.
type LoginCodeRepository interface {
	Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error
	// ListActive returns the unexpired, unconsumed code hashes for the email.
	ListActive(ctx context.Context, email string) ([]string, error)
	ConsumeAll(ctx context.Context, email string) error
}

// OrganizerService defines the passwordless login flow for organizers. The
// code check runs against stored hashes; in demo mode a fixed code is also
// accepted so the flow works without a mail provider.
type OrganizerService interface {
	RequestLoginCode(ctx context.Context, email string) error
	VerifyLoginCode(ctx context.Context, email, code string) (token string, organizer *Organizer, err error)
	GetByID(ctx context.Context, id string) (*Organizer, error)
}
