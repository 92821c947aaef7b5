package ports

import (
	"context"

	"github.com/neondash/dashboard/internal/core/domain"
)

// EventVerifier authenticates a provider webhook over the exact bytes received.
// Implementations must not trust or parse the payload before the signature checks out.
type EventVerifier interface {
	Verify(payload []byte, signatureHeader string) (*domain.WebhookEvent, error)
}

// EventLedger remembers provider event ids that were fully processed.
type EventLedger interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Record(ctx context.Context, eventID string) error
}

// WebhookOutcome says what PremiumService did with an event.
type WebhookOutcome string

const (
	OutcomeUpgraded  WebhookOutcome = "upgraded"
	OutcomeDuplicate WebhookOutcome = "duplicate"
	OutcomeIgnored   WebhookOutcome = "ignored"
)

// WebhookResult is returned by PremiumService.HandleEvent.
type WebhookResult struct {
	Outcome WebhookOutcome
	UserID  string
	// Matched is the number of profile rows the update touched.
	Matched int
}

// PremiumService applies verified payment events to profiles.
type PremiumService interface {
	HandleEvent(ctx context.Context, event *domain.WebhookEvent) (*WebhookResult, error)
}
