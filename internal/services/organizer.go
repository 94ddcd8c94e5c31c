package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strings"
	"time"

	"confkit/internal/domain"
	"confkit/internal/validation"
)

const (
	loginCodeDigits     = 6
	loginCodeExpiryMins = 15
)

var loginCodeRegex = regexp.MustCompile(`^\d{6}$`)

type organizerService struct {
	organizerRepo domain.OrganizerRepository
	loginCodeRepo domain.LoginCodeRepository
	codeHasher    domain.CodeHasher
	tokenIssuer   domain.TokenIssuer
	tokenExpiry   time.Duration
	emailService  domain.EmailService
	demoCode      string
	logger        *slog.Logger
}

// NewOrganizerService creates an OrganizerService. demoCode, when non-empty,
// is a fixed login code accepted for any email; it exists so the flow can be
// exercised without a mail provider and must be empty in production.
func NewOrganizerService(
	organizerRepo domain.OrganizerRepository,
	loginCodeRepo domain.LoginCodeRepository,
	codeHasher domain.CodeHasher,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	emailService domain.EmailService,
	demoCode string,
	logger *slog.Logger,
) domain.OrganizerService {
	return &organizerService{
		organizerRepo: organizerRepo,
		loginCodeRepo: loginCodeRepo,
		codeHasher:    codeHasher,
		tokenIssuer:   tokenIssuer,
		tokenExpiry:   tokenExpiry,
		emailService:  emailService,
		demoCode:      demoCode,
		logger:        logger,
	}
}

func (s *organizerService) RequestLoginCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validation.IsValidEmail(email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	code, err := generateLoginCode(loginCodeDigits)
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	codeHash, err := s.codeHasher.Hash(code)
	if err != nil {
		return fmt.Errorf("failed to hash code: %w", err)
	}
	expiresAt := time.Now().Add(loginCodeExpiryMins * time.Minute)
	if err := s.loginCodeRepo.Create(ctx, email, codeHash, expiresAt); err != nil {
		return fmt.Errorf("failed to store login code: %w", err)
	}
	if s.emailService != nil {
		data := &domain.LoginCodeEmailData{
			Email:            email,
			Code:             code,
			ExpiresInMinutes: loginCodeExpiryMins,
		}
		if err := s.emailService.SendLoginCode(ctx, data); err != nil {
			return fmt.Errorf("failed to send login code email: %w", err)
		}
	}
	return nil
}

func (s *organizerService) VerifyLoginCode(ctx context.Context, email, code string) (string, *domain.Organizer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validation.IsValidEmail(email) {
		return "", nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if !loginCodeRegex.MatchString(code) {
		return "", nil, fmt.Errorf("%w: code must be 6 digits", domain.ErrInvalidInput)
	}

	ok, err := s.codeMatches(ctx, email, code)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, fmt.Errorf("%w: invalid or expired code", domain.ErrInvalidInput)
	}
	if err := s.loginCodeRepo.ConsumeAll(ctx, email); err != nil {
		return "", nil, fmt.Errorf("failed to consume login codes: %w", err)
	}

	organizer, err := s.organizerRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		now := time.Now()
		organizer = domain.NewOrganizer(email, "", now, now)
		if err := s.organizerRepo.Create(ctx, organizer); err != nil {
			return "", nil, fmt.Errorf("failed to create organizer: %w", err)
		}
	} else if err != nil {
		return "", nil, fmt.Errorf("failed to get organizer: %w", err)
	}

	token, err := s.tokenIssuer.Issue(organizer.ID, organizer.Email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, organizer, nil
}

// codeMatches checks the submitted code against the demo code and every
// active stored hash for the email.
func (s *organizerService) codeMatches(ctx context.Context, email, code string) (bool, error) {
	if s.demoCode != "" && code == s.demoCode {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "demo login code used", "email", email)
		}
		return true, nil
	}
	hashes, err := s.loginCodeRepo.ListActive(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to list login codes: %w", err)
	}
	for _, h := range hashes {
		if s.codeHasher.Compare(h, code) == nil {
			return true, nil
		}
	}
	return false, nil
}

func (s *organizerService) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	organizer, err := s.organizerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organizer: %w", err)
	}
	return organizer, nil
}

func generateLoginCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
