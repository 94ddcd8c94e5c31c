package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"confkit/internal/domain"
	"confkit/internal/validation"
)

type eventService struct {
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	qrGen          domain.QRGenerator
	appBaseURL     string
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService creates an EventService. appBaseURL is the public base URL
// attendee app links are built from. now supplies the wall clock for the
// "start date not in the past" rule; pass time.Now outside of tests.
func NewEventService(
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	qrGen domain.QRGenerator,
	appBaseURL string,
	timeout time.Duration,
	now func() time.Time,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		emailService:   emailService,
		qrGen:          qrGen,
		appBaseURL:     strings.TrimRight(appBaseURL, "/"),
		contextTimeout: timeout,
		now:            now,
	}
}

func setupInput(upd domain.EventSetupUpdate) validation.EventSetupInput {
	return validation.EventSetupInput{
		Name:                upd.Name,
		StartDate:           upd.StartDate,
		EndDate:             upd.EndDate,
		Description:         upd.Description,
		PrimaryColor:        upd.PrimaryColor,
		AccentColor:         upd.AccentColor,
		OrganizerName:       upd.OrganizerName,
		OrganizerEmail:      upd.OrganizerEmail,
		OrganizerPhone:      upd.OrganizerPhone,
		OrganizationName:    upd.OrganizationName,
		OrganizationWebsite: upd.OrganizationWebsite,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, ownerID string, upd domain.EventSetupUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if ownerID == "" {
		return nil, fmt.Errorf("%w: event owner is required", domain.ErrInvalidInput)
	}
	if err := validation.ValidateEventSetup(setupInput(upd), s.now()).Err(); err != nil {
		return nil, err
	}

	now := s.now()
	event := domain.NewEvent(ownerID, strings.TrimSpace(upd.Name), upd.StartDate, upd.EndDate, now, now)
	event.Description = upd.Description
	event.PrimaryColor = upd.PrimaryColor
	event.AccentColor = upd.AccentColor
	event.OrganizerName = upd.OrganizerName
	event.OrganizerEmail = upd.OrganizerEmail
	event.OrganizerPhone = upd.OrganizerPhone
	event.OrganizationName = upd.OrganizationName
	event.OrganizationWebsite = upd.OrganizationWebsite

	code, err := generateAppCode()
	if err != nil {
		return nil, fmt.Errorf("generate app code: %w", err)
	}
	event.AppCode = code

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

const appCodeLength = 6

var appCodeAlphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

func generateAppCode() (string, error) {
	b := make([]rune, appCodeLength)
	max := big.NewInt(int64(len(appCodeAlphabet)))
	for i := 0; i < appCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = appCodeAlphabet[n.Int64()]
	}
	return string(b), nil
}

// ownedEvent fetches the event and enforces that ownerID owns it.
func (s *eventService) ownedEvent(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
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

func (s *eventService) GetEvent(ctx context.Context, eventID, ownerID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.ownedEvent(ctx, eventID, ownerID)
}

func (s *eventService) GetEventByAppCode(ctx context.Context, appCode string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	code := strings.ToLower(strings.TrimSpace(appCode))
	event, err := s.eventRepo.GetByAppCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by app code: %w", err)
	}
	return event, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) UpdateEventSetup(ctx context.Context, eventID, ownerID string, upd domain.EventSetupUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, ownerID); err != nil {
		return nil, err
	}
	if err := validation.ValidateEventSetup(setupInput(upd), s.now()).Err(); err != nil {
		return nil, err
	}
	upd.Name = strings.TrimSpace(upd.Name)

	updated, err := s.eventRepo.UpdateSetup(ctx, eventID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event setup: %w", err)
	}
	return updated, nil
}

func (s *eventService) UpdateVenue(ctx context.Context, eventID, ownerID string, upd domain.VenueUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, ownerID); err != nil {
		return nil, err
	}
	in := validation.VenueInput{
		VenueName:     upd.VenueName,
		VenueAddress:  upd.VenueAddress,
		VenueMapsLink: upd.VenueMapsLink,
	}
	if err := validation.ValidateVenue(in).Err(); err != nil {
		return nil, err
	}

	updated, err := s.eventRepo.UpdateVenue(ctx, eventID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, ownerID); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// qrSize is the pixel width of generated app QR codes.
const qrSize = 256

func (s *eventService) GenerateApp(ctx context.Context, eventID, ownerID string, emailLink bool) (*domain.AppLink, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.ownedEvent(ctx, eventID, ownerID)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/a/%s", s.appBaseURL, event.AppCode)
	png, err := s.qrGen.PNG(url, qrSize)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}

	if emailLink && s.emailService != nil && event.OrganizerEmail != nil {
		data := &domain.AppLinkEmailData{
			Email:     *event.OrganizerEmail,
			EventName: event.Name,
			AppURL:    url,
		}
		if err := s.emailService.SendAppLink(ctx, data); err != nil {
			return nil, fmt.Errorf("send app link email: %w", err)
		}
	}

	return &domain.AppLink{URL: url, QRPNG: png}, nil
}
