package stripe

import (
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/neondash/dashboard/internal/core/domain"
)

// Verifier checks Stripe-Signature headers against the endpoint signing secret.
type Verifier struct {
	secret    string
	tolerance time.Duration
}

// NewVerifier returns a Verifier using Stripe's default 300 s timestamp tolerance.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret, tolerance: webhook.DefaultTolerance}
}

// Verify authenticates the payload and returns the decoded envelope. Errors
// wrap domain.ErrSignatureInvalid.
func (v *Verifier) Verify(payload []byte, signatureHeader string) (*domain.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSignatureInvalid, err)
	}

	out := &domain.WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data != nil {
		out.Object = event.Data.Raw
	}
	return out, nil
}
