package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"confkit/internal/delivery/http/helpers"
	"confkit/internal/domain"
	"confkit/internal/validation"
)

type mockScheduleService struct {
	session  *domain.Session
	sessions []*domain.Session
	err      error
}

func (m *mockScheduleService) CreateSession(ctx context.Context, eventID, ownerID string, upd domain.SessionUpdate) (*domain.Session, error) {
	return m.session, m.err
}

func (m *mockScheduleService) ListSessions(ctx context.Context, eventID, ownerID string) ([]*domain.Session, error) {
	return m.sessions, m.err
}

func (m *mockScheduleService) UpdateSession(ctx context.Context, sessionID, ownerID string, upd domain.SessionUpdate) (*domain.Session, error) {
	return m.session, m.err
}

func (m *mockScheduleService) DeleteSession(ctx context.Context, sessionID, ownerID string) error {
	return m.err
}

func TestScheduleController_CreateSession_Success(t *testing.T) {
	svc := &mockScheduleService{session: &domain.Session{ID: "sess-1", Title: "Keynote"}}
	ctrl := NewScheduleController(testLogger(), svc)

	body := `{"title":"Keynote","date":"2026-09-01","start_time":"09:00","end_time":"10:00"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/events/ev-1/sessions", strings.NewReader(body)), "org-1")
	req.SetPathValue("eventID", "ev-1")
	w := httptest.NewRecorder()
	ctrl.CreateSession(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestScheduleController_CreateSession_ValidationFailed(t *testing.T) {
	result := validation.ValidationResult{
		Valid: false,
		Errors: []validation.ValidationError{
			{Field: "end_time", Message: "End time must be after start time"},
		},
	}
	svc := &mockScheduleService{err: result.Err()}
	ctrl := NewScheduleController(testLogger(), svc)

	body := `{"title":"Keynote","date":"2026-09-01","start_time":"10:00","end_time":"09:00"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/events/ev-1/sessions", strings.NewReader(body)), "org-1")
	req.SetPathValue("eventID", "ev-1")
	w := httptest.NewRecorder()
	ctrl.CreateSession(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Error.Fields) != 1 || resp.Error.Fields[0].Field != "end_time" {
		t.Fatalf("expected one end_time field error, got %v", resp.Error.Fields)
	}
}

func TestScheduleController_ListSessions_Success(t *testing.T) {
	svc := &mockScheduleService{sessions: []*domain.Session{{ID: "sess-1"}, {ID: "sess-2"}}}
	ctrl := NewScheduleController(testLogger(), svc)

	req := authed(httptest.NewRequest(http.MethodGet, "/events/ev-1/sessions", nil), "org-1")
	req.SetPathValue("eventID", "ev-1")
	w := httptest.NewRecorder()
	ctrl.ListSessions(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestScheduleController_DeleteSession_Forbidden(t *testing.T) {
	svc := &mockScheduleService{err: domain.ErrForbidden}
	ctrl := NewScheduleController(testLogger(), svc)

	req := authed(httptest.NewRequest(http.MethodDelete, "/sessions/sess-1", nil), "org-2")
	req.SetPathValue("sessionID", "sess-1")
	w := httptest.NewRecorder()
	ctrl.DeleteSession(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}
