package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"confkit/internal/delivery/http/helpers"
	"confkit/internal/domain"
)

type mockOrganizerService struct {
	token     string
	organizer *domain.Organizer
	err       error
}

func (m *mockOrganizerService) RequestLoginCode(ctx context.Context, email string) error {
	return m.err
}

func (m *mockOrganizerService) VerifyLoginCode(ctx context.Context, email, code string) (string, *domain.Organizer, error) {
	return m.token, m.organizer, m.err
}

func (m *mockOrganizerService) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	return m.organizer, m.err
}

func TestOrganizerController_RequestCode_Success(t *testing.T) {
	ctrl := NewOrganizerController(testLogger(), &mockOrganizerService{})

	body := `{"email":"orga@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/request-code", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.RequestCode(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
}

func TestOrganizerController_RequestCode_MissingEmail(t *testing.T) {
	ctrl := NewOrganizerController(testLogger(), &mockOrganizerService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/request-code", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	ctrl.RequestCode(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestOrganizerController_VerifyCode_Success(t *testing.T) {
	svc := &mockOrganizerService{
		token:     "jwt-token",
		organizer: &domain.Organizer{ID: "org-1", Email: "orga@example.com"},
	}
	ctrl := NewOrganizerController(testLogger(), svc)

	body := `{"email":"orga@example.com","code":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/verify", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.VerifyCode(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var resp struct {
		Data VerifyCodeResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Token != "jwt-token" || resp.Data.Organizer.ID != "org-1" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestOrganizerController_VerifyCode_BadCode(t *testing.T) {
	svc := &mockOrganizerService{err: fmt.Errorf("%w: invalid or expired code", domain.ErrInvalidInput)}
	ctrl := NewOrganizerController(testLogger(), svc)

	body := `{"email":"orga@example.com","code":"000000"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/verify", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.VerifyCode(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeBadRequest {
		t.Fatalf("expected bad_request error, got %v", resp.Error)
	}
}

func TestOrganizerController_Me(t *testing.T) {
	svc := &mockOrganizerService{organizer: &domain.Organizer{ID: "org-1", Email: "orga@example.com"}}
	ctrl := NewOrganizerController(testLogger(), svc)

	req := authed(httptest.NewRequest(http.MethodGet, "/me", nil), "org-1")
	w := httptest.NewRecorder()
	ctrl.Me(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestOrganizerController_Me_Unauthorized(t *testing.T) {
	ctrl := NewOrganizerController(testLogger(), &mockOrganizerService{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	ctrl.Me(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}
