package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neondash/dashboard/internal/api/middleware"
	"github.com/neondash/dashboard/internal/core/domain"
)

type stubAuthService struct {
	signUpFn  func(ctx context.Context, email, password string) (*domain.User, error)
	signInFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
	signOutFn func(ctx context.Context, session domain.Session) error
}

func (s *stubAuthService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	return s.signUpFn(ctx, email, password)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubAuthService) SignOut(ctx context.Context, session domain.Session) error {
	return s.signOutFn(ctx, session)
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withSession(c echo.Context, userID string) {
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxEmail, userID+"@example.com")
	c.Set(middleware.CtxTokenID, "tok-"+userID)
	c.Set(middleware.CtxExpiresAt, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "u1", Email: email, PasswordHash: "hash"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/auth/signup", `{"email":"alice@example.com","password":"secret1"}`)
	if err := handler.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatal("password hash leaked in response")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "u1" || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_SignUp_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{"malformed json", `{"email":`, nil, http.StatusBadRequest},
		{"validation", `{"email":"nope","password":"x"}`, nil, http.StatusUnprocessableEntity},
		{"user exists", `{"email":"a@b.co","password":"secret1"}`, domain.ErrUserExists, http.StatusConflict},
		{"rejected by service", `{"email":"a@b.co","password":"secret1"}`, domain.ErrInvalidCredentials, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuthService{
				signUpFn: func(ctx context.Context, email, password string) (*domain.User, error) {
					return nil, tc.svcErr
				},
			}
			c, rec := newJSONContext(http.MethodPost, "/auth/signup", tc.body)
			if err := NewAuthHandler(stub).SignUp(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
		})
	}
}

func TestAuthHandler_SignUp_UnexpectedErrorBubbles(t *testing.T) {
	boom := errors.New("db down")
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (*domain.User, error) { return nil, boom },
	}
	c, _ := newJSONContext(http.MethodPost, "/auth/signup", `{"email":"a@b.co","password":"secret1"}`)
	if err := NewAuthHandler(stub).SignUp(c); !errors.Is(err, boom) {
		t.Fatalf("expected error to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"success", nil, http.StatusOK},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuthService{
				signInFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
					if tc.err != nil {
						return "", nil, tc.err
					}
					return "jwt-token", &domain.User{ID: "u1", Email: email}, nil
				},
			}
			c, rec := newJSONContext(http.MethodPost, "/auth/signin", `{"email":"alice@example.com","password":"secret1"}`)
			if err := NewAuthHandler(stub).SignIn(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if tc.err == nil {
				var resp authResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if resp.Token != "jwt-token" || resp.User == nil || resp.User.ID != "u1" {
					t.Fatalf("unexpected response: %+v", resp)
				}
			}
		})
	}
}

func TestAuthHandler_SignOut(t *testing.T) {
	var got domain.Session
	stub := &stubAuthService{
		signOutFn: func(ctx context.Context, session domain.Session) error {
			got = session
			return nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/auth/signout", "")
	withSession(c, "u1")

	if err := NewAuthHandler(stub).SignOut(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got.UserID != "u1" || got.TokenID != "tok-u1" || got.ExpiresAt.IsZero() {
		t.Fatalf("unexpected session passed to service: %+v", got)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/auth/session", "")
	withSession(c, "u1")

	if err := NewAuthHandler(&stubAuthService{}).Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserID != "u1" || resp.Email != "u1@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_SessionWithoutAuth(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/auth/session", "")

	err := NewAuthHandler(&stubAuthService{}).Session(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
