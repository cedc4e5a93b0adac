package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/khadamat/marketplace-api/internal/core/domain"
	"github.com/khadamat/marketplace-api/internal/core/ports"
)

type stubSessionService struct {
	signUpResult *ports.SignUpResult
	signUpErr    error

	signInToken string
	signInUser  *domain.User
	signInErr   error

	signedOutTokens []string

	restoreUser *domain.User
	restoreErr  error
}

func (s *stubSessionService) SignUp(_ context.Context, _, _, _ string) (*ports.SignUpResult, error) {
	return s.signUpResult, s.signUpErr
}

func (s *stubSessionService) SignIn(_ context.Context, _, _ string) (string, *domain.User, error) {
	return s.signInToken, s.signInUser, s.signInErr
}

func (s *stubSessionService) SignOut(_ context.Context, token string) error {
	s.signedOutTokens = append(s.signedOutTokens, token)
	return nil
}

func (s *stubSessionService) Restore(_ context.Context, _ string) (*domain.User, error) {
	return s.restoreUser, s.restoreErr
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "sara@example.com", FullName: "سارة أحمد"}
	svc := &stubSessionService{signUpResult: &ports.SignUpResult{User: user, Token: "tok-1"}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/signup",
		`{"email":"sara@example.com","password":"correct-horse","full_name":"سارة أحمد"}`)

	if err := h.SignUp(c); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token != "tok-1" || resp.User == nil || resp.User.Email != "sara@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_SignUp_Validation(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{})

	tests := []string{
		`{"email":"not-an-email","password":"correct-horse","full_name":"x"}`,
		`{"email":"sara@example.com","password":"short","full_name":"x"}`,
		`{"email":"sara@example.com","password":"correct-horse"}`,
	}
	for _, body := range tests {
		c, _ := newTestContext(http.MethodPost, "/v1/auth/signup", body)
		err := h.SignUp(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_SignUp_PendingConfirmation(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "sara@example.com"}
	svc := &stubSessionService{signUpResult: &ports.SignUpResult{User: user, PendingConfirmation: true}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/signup",
		`{"email":"sara@example.com","password":"correct-horse","full_name":"سارة أحمد"}`)

	if err := h.SignUp(c); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.PendingConfirmation || resp.Token != "" {
		t.Fatalf("expected pending confirmation without token, got %+v", resp)
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "sara@example.com"}
	svc := &stubSessionService{signInToken: "tok-1", signInUser: user}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/signin",
		`{"email":"sara@example.com","password":"correct-horse"}`)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_SignIn_BadCredentials(t *testing.T) {
	svc := &stubSessionService{signInErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/v1/auth/signin",
		`{"email":"sara@example.com","password":"wrong-password"}`)

	// The sentinel propagates for the central error handler to map to 401.
	if err := h.SignIn(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_SignOut(t *testing.T) {
	svc := &stubSessionService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/signout", "")
	c.Request().Header.Set("Authorization", "Bearer tok-1")

	if err := h.SignOut(c); err != nil {
		t.Fatalf("SignOut returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.signedOutTokens) != 1 || svc.signedOutTokens[0] != "tok-1" {
		t.Fatalf("expected token to be revoked, got %v", svc.signedOutTokens)
	}
}

func TestAuthHandler_SignOut_NoToken(t *testing.T) {
	svc := &stubSessionService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/signout", "")

	if err := h.SignOut(c); err != nil {
		t.Fatalf("SignOut without token must still succeed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.signedOutTokens) != 0 {
		t.Fatalf("nothing to revoke without a token, got %v", svc.signedOutTokens)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "sara@example.com"}
	h := NewAuthHandler(&stubSessionService{restoreUser: user})

	c, rec := newTestContext(http.MethodGet, "/v1/session", "")
	c.Request().Header.Set("Authorization", "Bearer tok-1")

	if err := h.Session(c); err != nil {
		t.Fatalf("Session returned error: %v", err)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("expected restored user, got %+v", resp)
	}
}

func TestAuthHandler_Session_NoToken(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{})

	c, rec := newTestContext(http.MethodGet, "/v1/session", "")

	if err := h.Session(c); err != nil {
		t.Fatalf("Session without token must not error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if string(resp["user"]) != "null" {
		t.Fatalf("expected null user, got %s", resp["user"])
	}
}
