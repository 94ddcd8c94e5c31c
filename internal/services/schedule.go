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

type scheduleService struct {
	sessionRepo    domain.SessionRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewScheduleService creates a ScheduleService with the given repositories.
func NewScheduleService(sessionRepo domain.SessionRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		sessionRepo:    sessionRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func sessionInput(upd domain.SessionUpdate) validation.SessionInput {
	return validation.SessionInput{
		Title:       upd.Title,
		Date:        upd.Date,
		StartTime:   upd.StartTime,
		EndTime:     upd.EndTime,
		Description: upd.Description,
		Speaker:     upd.Speaker,
		Venue:       upd.Venue,
	}
}

// ownedEvent fetches the event and enforces that ownerID owns it.
func (s *scheduleService) ownedEvent(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
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

func (s *scheduleService) CreateSession(ctx context.Context, eventID, ownerID string, upd domain.SessionUpdate) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.ownedEvent(ctx, eventID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateSession(sessionInput(upd), event.StartDate, event.EndDate).Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	session := domain.NewSession(eventID, strings.TrimSpace(upd.Title), upd.Date, upd.StartTime, upd.EndTime, now, now)
	session.Description = upd.Description
	session.Speaker = upd.Speaker
	session.Venue = upd.Venue

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (s *scheduleService) ListSessions(ctx context.Context, eventID, ownerID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, ownerID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (s *scheduleService) UpdateSession(ctx context.Context, sessionID, ownerID string, upd domain.SessionUpdate) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	event, err := s.ownedEvent(ctx, session.EventID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateSession(sessionInput(upd), event.StartDate, event.EndDate).Err(); err != nil {
		return nil, err
	}
	upd.Title = strings.TrimSpace(upd.Title)

	updated, err := s.sessionRepo.Update(ctx, sessionID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update session: %w", err)
	}
	return updated, nil
}

func (s *scheduleService) DeleteSession(ctx context.Context, sessionID, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get session: %w", err)
	}
	if _, err := s.ownedEvent(ctx, session.EventID, ownerID); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
