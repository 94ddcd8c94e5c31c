package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confkit/internal/domain"
	"confkit/internal/validation"
)

type attendeeService struct {
	attendeeRepo   domain.AttendeeRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewAttendeeService creates an AttendeeService with the given repositories.
func NewAttendeeService(attendeeRepo domain.AttendeeRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.AttendeeService {
	return &attendeeService{
		attendeeRepo:   attendeeRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func attendeeInput(upd domain.AttendeeUpdate) validation.AttendeeInput {
	return validation.AttendeeInput{
		Email:     upd.Email,
		FirstName: upd.FirstName,
		LastName:  upd.LastName,
		Company:   upd.Company,
		JobTitle:  upd.JobTitle,
		Phone:     upd.Phone,
	}
}

// ownedEvent fetches the event and enforces that ownerID owns it.
func (s *attendeeService) ownedEvent(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *attendeeService) AddAttendee(ctx context.Context, eventID, ownerID string, upd domain.AttendeeUpdate) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, ownerID); err != nil {
		return nil, err
	}
	if err := validation.ValidateAttendee(attendeeInput(upd)).Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	attendee := domain.NewAttendee(
		eventID,
		strings.ToLower(strings.TrimSpace(upd.Email)),
		strings.TrimSpace(upd.FirstName),
		strings.TrimSpace(upd.LastName),
		now, now,
	)
	attendee.Company = upd.Company
	attendee.JobTitle = upd.JobTitle
	attendee.Phone = upd.Phone

	if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create attendee: %w", err)
	}
	return attendee, nil
}

func (s *attendeeService) ListAttendees(ctx context.Context, eventID, ownerID string, p domain.PaginationParams) ([]*domain.Attendee, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, ownerID); err != nil {
		return nil, 0, err
	}
	attendees, total, err := s.attendeeRepo.ListByEventID(ctx, eventID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list attendees: %w", err)
	}
	if attendees == nil {
		attendees = []*domain.Attendee{}
	}
	return attendees, total, nil
}

func (s *attendeeService) UpdateAttendee(ctx context.Context, attendeeID, ownerID string, upd domain.AttendeeUpdate) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attendee, err := s.attendeeRepo.GetByID(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	if _, err := s.ownedEvent(ctx, attendee.EventID, ownerID); err != nil {
		return nil, err
	}
	if err := validation.ValidateAttendee(attendeeInput(upd)).Err(); err != nil {
		return nil, err
	}
	upd.Email = strings.ToLower(strings.TrimSpace(upd.Email))
	upd.FirstName = strings.TrimSpace(upd.FirstName)
	upd.LastName = strings.TrimSpace(upd.LastName)

	updated, err := s.attendeeRepo.Update(ctx, attendeeID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("update attendee: %w", err)
	}
	return updated, nil
}

func (s *attendeeService) DeleteAttendee(ctx context.Context, attendeeID, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attendee, err := s.attendeeRepo.GetByID(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get attendee: %w", err)
	}
	if _, err := s.ownedEvent(ctx, attendee.EventID, ownerID); err != nil {
		return err
	}
	if err := s.attendeeRepo.Delete(ctx, attendeeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete attendee: %w", err)
	}
	return nil
}

func (s *attendeeService) ImportCSV(ctx context.Context, eventID, ownerID, rawCSV string) (*domain.CSVImportSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, ownerID); err != nil {
		return nil, err
	}
	if err := validation.ValidateAttendeeCSV(rawCSV).Err(); err != nil {
		return nil, err
	}

	summary := &domain.CSVImportSummary{Skipped: []string{}}
	for _, rec := range validation.ParseAttendeeCSV(rawCSV) {
		now := time.Now()
		attendee := domain.NewAttendee(
			eventID,
			strings.ToLower(strings.TrimSpace(rec.Email)),
			strings.TrimSpace(rec.FirstName),
			strings.TrimSpace(rec.LastName),
			now, now,
		)
		attendee.Company = rec.Company
		attendee.JobTitle = rec.JobTitle
		attendee.Phone = rec.Phone

		if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				summary.Duplicates++
				summary.Skipped = append(summary.Skipped, attendee.Email)
				continue
			}
			// First write wins: rows inserted before a hard failure stay.
			return nil, fmt.Errorf("import attendee %s: %w", attendee.Email, err)
		}
		summary.Imported++
	}
	return summary, nil
}
