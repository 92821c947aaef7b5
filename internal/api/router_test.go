package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/neondash/dashboard/internal/api/handler"
	"github.com/neondash/dashboard/internal/core/domain"
	"github.com/neondash/dashboard/internal/core/ports"
	"github.com/neondash/dashboard/internal/infrastructure/http/handlers"
	stripeinfra "github.com/neondash/dashboard/internal/infrastructure/stripe"
)

const (
	testJWTSecret     = "router-secret"
	testWebhookSecret = "whsec_router"
)

type panickingPremium struct{}

func (panickingPremium) HandleEvent(context.Context, *domain.WebhookEvent) (*ports.WebhookResult, error) {
	panic("boom")
}

type fixedProfiles struct{ profile *domain.Profile }

func (f fixedProfiles) GetProfile(context.Context, string) (*domain.Profile, error) {
	return f.profile, nil
}

type countingCheckout struct{ calls int }

func (c *countingCheckout) CreateCheckout(context.Context, string, string) (string, error) {
	c.calls++
	return "https://checkout.example/1", nil
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"jti": "tok-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return "Bearer " + signed
}

func TestWebhookRouter_PanicIsRecovered(t *testing.T) {
	wh := handler.NewWebhookHandler(stripeinfra.NewVerifier(testWebhookSecret), panickingPremium{}, zerolog.Nop())
	e := NewWebhookRouter(zerolog.Nop(), "/webhooks/stripe", wh, map[string]handlers.Check{})

	payload := `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"client_reference_id":"u1"}}}`
	sig := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: []byte(payload), Secret: testWebhookSecret, Timestamp: time.Now(),
	}).Header

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", sig)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestWebhookRouter_AnyMethodReachesHandler(t *testing.T) {
	wh := handler.NewWebhookHandler(stripeinfra.NewVerifier(testWebhookSecret), panickingPremium{}, zerolog.Nop())
	e := NewWebhookRouter(zerolog.Nop(), "/webhooks/stripe", wh, map[string]handlers.Check{})

	req := httptest.NewRequest(http.MethodGet, "/webhooks/stripe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed || rec.Body.String() != "Method Not Allowed" {
		t.Fatalf("expected 405 Method Not Allowed, got %d %q", rec.Code, rec.Body.String())
	}
}

func newDashboard(profile *domain.Profile, checkout *countingCheckout) http.Handler {
	return NewRouter(Dependencies{
		Log:       zerolog.Nop(),
		JWTSecret: testJWTSecret,
		Profiles:  fixedProfiles{profile: profile},
		Checkout:  checkout,
		Health:    map[string]handlers.Check{},
	})
}

func TestRouter_CheckoutRequiresAuth(t *testing.T) {
	checkout := &countingCheckout{}
	e := newDashboard(&domain.Profile{ID: "u1"}, checkout)

	req := httptest.NewRequest(http.MethodPost, "/v1/billing/checkout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if checkout.calls != 0 {
		t.Fatal("checkout must not be created")
	}
}

func TestRouter_CheckoutRejectsPremium(t *testing.T) {
	checkout := &countingCheckout{}
	e := newDashboard(&domain.Profile{ID: "u1", IsPremium: true}, checkout)

	req := httptest.NewRequest(http.MethodPost, "/v1/billing/checkout", nil)
	req.Header.Set("Authorization", bearer(t, "u1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if checkout.calls != 0 {
		t.Fatal("checkout must not be created")
	}
}

func TestRouter_CheckoutForStandardUser(t *testing.T) {
	checkout := &countingCheckout{}
	e := newDashboard(&domain.Profile{ID: "u1"}, checkout)

	req := httptest.NewRequest(http.MethodPost, "/v1/billing/checkout", nil)
	req.Header.Set("Authorization", bearer(t, "u1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if checkout.calls != 1 {
		t.Fatalf("expected one checkout, got %d", checkout.calls)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	e := newDashboard(&domain.Profile{ID: "u1"}, &countingCheckout{})

	for _, path := range []string{"/health", "/health/ready", "/metrics", "/v1/links"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
