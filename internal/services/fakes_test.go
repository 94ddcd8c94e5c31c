package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"confkit/internal/domain"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID   map[string]*domain.Event
	nextID int
	err    error // if set, Create returns this error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetByAppCode(ctx context.Context, appCode string) (*domain.Event, error) {
	for _, e := range f.byID {
		if e.AppCode == appCode {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeEventRepo) UpdateSetup(ctx context.Context, id string, upd domain.EventSetupUpdate) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.Name = upd.Name
	e.StartDate = upd.StartDate
	e.EndDate = upd.EndDate
	e.Description = upd.Description
	e.PrimaryColor = upd.PrimaryColor
	e.AccentColor = upd.AccentColor
	e.OrganizerName = upd.OrganizerName
	e.OrganizerEmail = upd.OrganizerEmail
	e.OrganizerPhone = upd.OrganizerPhone
	e.OrganizationName = upd.OrganizationName
	e.OrganizationWebsite = upd.OrganizationWebsite
	e.UpdatedAt = time.Now()
	return e, nil
}

func (f *fakeEventRepo) UpdateVenue(ctx context.Context, id string, upd domain.VenueUpdate) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.VenueName = upd.VenueName
	e.VenueAddress = upd.VenueAddress
	e.VenueMapsLink = upd.VenueMapsLink
	e.UpdatedAt = time.Now()
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	byID   map[string]*domain.Session
	nextID int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.Session), nextID: 1}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	s.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.byID {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, id string, upd domain.SessionUpdate) (*domain.Session, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.Title = upd.Title
	s.Date = upd.Date
	s.StartTime = upd.StartTime
	s.EndTime = upd.EndTime
	s.Description = upd.Description
	s.Speaker = upd.Speaker
	s.Venue = upd.Venue
	return s, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeAttendeeRepo is an in-memory AttendeeRepository for tests. It enforces
// per-event email uniqueness like the real table does.
type fakeAttendeeRepo struct {
	byID   map[string]*domain.Attendee
	nextID int
}

func newFakeAttendeeRepo() *fakeAttendeeRepo {
	return &fakeAttendeeRepo{byID: make(map[string]*domain.Attendee), nextID: 1}
}

func (f *fakeAttendeeRepo) Create(ctx context.Context, a *domain.Attendee) error {
	for _, existing := range f.byID {
		if existing.EventID == a.EventID && existing.Email == a.Email {
			return domain.ErrDuplicateEmail
		}
	}
	a.ID = fmt.Sprintf("att-%d", f.nextID)
	f.nextID++
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAttendeeRepo) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAttendeeRepo) ListByEventID(ctx context.Context, eventID string, p domain.PaginationParams) ([]*domain.Attendee, int, error) {
	var out []*domain.Attendee
	for _, a := range f.byID {
		if a.EventID == eventID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	total := len(out)
	start := p.Offset()
	if start > len(out) {
		start = len(out)
	}
	end := start + p.Limit()
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeAttendeeRepo) Update(ctx context.Context, id string, upd domain.AttendeeUpdate) (*domain.Attendee, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Email = upd.Email
	a.FirstName = upd.FirstName
	a.LastName = upd.LastName
	a.Company = upd.Company
	a.JobTitle = upd.JobTitle
	a.Phone = upd.Phone
	return a, nil
}

func (f *fakeAttendeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeOrganizerRepo is an in-memory OrganizerRepository for tests.
type fakeOrganizerRepo struct {
	byID   map[string]*domain.Organizer
	nextID int
}

func newFakeOrganizerRepo() *fakeOrganizerRepo {
	return &fakeOrganizerRepo{byID: make(map[string]*domain.Organizer), nextID: 1}
}

func (f *fakeOrganizerRepo) Create(ctx context.Context, o *domain.Organizer) error {
	o.ID = fmt.Sprintf("org-%d", f.nextID)
	f.nextID++
	f.byID[o.ID] = o
	return nil
}

func (f *fakeOrganizerRepo) GetByEmail(ctx context.Context, email string) (*domain.Organizer, error) {
	for _, o := range f.byID {
		if o.Email == email {
			return o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrganizerRepo) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	if o, ok := f.byID[id]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}

// fakeLoginCodeRepo is an in-memory LoginCodeRepository for tests.
type fakeLoginCodeRepo struct {
	hashes map[string][]string
}

func newFakeLoginCodeRepo() *fakeLoginCodeRepo {
	return &fakeLoginCodeRepo{hashes: make(map[string][]string)}
}

func (f *fakeLoginCodeRepo) Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	f.hashes[email] = append(f.hashes[email], codeHash)
	return nil
}

func (f *fakeLoginCodeRepo) ListActive(ctx context.Context, email string) ([]string, error) {
	return f.hashes[email], nil
}

func (f *fakeLoginCodeRepo) ConsumeAll(ctx context.Context, email string) error {
	delete(f.hashes, email)
	return nil
}

// plainCodeHasher stores codes with a marker prefix so tests can assert on them.
type plainCodeHasher struct{}

func (plainCodeHasher) Hash(code string) (string, error) { return "hash:" + code, nil }

func (plainCodeHasher) Compare(hash, code string) error {
	if hash == "hash:"+code {
		return nil
	}
	return fmt.Errorf("mismatch")
}

// fakeTokenIssuer issues deterministic tokens for tests.
type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(organizerID, email string, expiry time.Duration) (string, error) {
	return "token-" + organizerID, nil
}

// fakeEmailService records sent emails.
type fakeEmailService struct {
	loginCodes []*domain.LoginCodeEmailData
	appLinks   []*domain.AppLinkEmailData
	err        error
}

func (f *fakeEmailService) SendLoginCode(ctx context.Context, data *domain.LoginCodeEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.loginCodes = append(f.loginCodes, data)
	return nil
}

func (f *fakeEmailService) SendAppLink(ctx context.Context, data *domain.AppLinkEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.appLinks = append(f.appLinks, data)
	return nil
}

// fakeQRGenerator returns a marker payload instead of a real PNG.
type fakeQRGenerator struct {
	lastContent string
}

func (f *fakeQRGenerator) PNG(content string, size int) ([]byte, error) {
	f.lastContent = content
	return []byte("png:" + content), nil
}
