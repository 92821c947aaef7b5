package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/neondash/dashboard/internal/core/domain"
	"github.com/neondash/dashboard/internal/core/ports"
)

type premiumService struct {
	profiles ports.ProfileRepository
	ledger   ports.EventLedger
	log      zerolog.Logger
}

// NewPremiumService returns the PremiumService used by the payment webhook.
// profiles must be backed by the privileged store; ledger may be nil.
func NewPremiumService(profiles ports.ProfileRepository, ledger ports.EventLedger, log zerolog.Logger) ports.PremiumService {
	if ledger == nil {
		ledger = nopLedger{}
	}
	return &premiumService{
		profiles: profiles,
		ledger:   ledger,
		log:      log,
	}
}

// HandleEvent grants premium for completed checkouts and acknowledges
// everything else without side effects.
func (s *premiumService) HandleEvent(ctx context.Context, event *domain.WebhookEvent) (*ports.WebhookResult, error) {
	if event.Type != domain.EventCheckoutSessionCompleted {
		s.log.Info().Str("event_id", event.ID).Str("type", event.Type).Msg("unhandled event type")
		return &ports.WebhookResult{Outcome: ports.OutcomeIgnored}, nil
	}

	session, err := event.CheckoutSession()
	if err != nil {
		return nil, fmt.Errorf("%w: decode checkout session: %v", domain.ErrMissingUserID, err)
	}
	userID := session.ClientReferenceID
	if userID == "" {
		s.log.Warn().Str("event_id", event.ID).Str("session_id", session.ID).Msg("no client_reference_id in checkout session")
		return nil, domain.ErrMissingUserID
	}

	// 1. Replays of an event we already applied are acknowledged as-is.
	if event.ID != "" {
		seen, err := s.ledger.Seen(ctx, event.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("event_id", event.ID).Msg("ledger check failed, processing anyway")
		} else if seen {
			s.log.Debug().Str("event_id", event.ID).Str("user_id", userID).Msg("duplicate event skipped")
			return &ports.WebhookResult{Outcome: ports.OutcomeDuplicate, UserID: userID}, nil
		}
	}

	// 2. The single authoritative mutation.
	rows, err := s.profiles.SetPremium(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("set premium for %s: %w", userID, err)
	}
	if len(rows) == 0 {
		s.log.Warn().Str("event_id", event.ID).Str("user_id", userID).Msg("no profile matched premium upgrade")
	}

	// 3. Record only an applied write. A failed or unmatched update stays
	// retryable once the profile exists.
	if event.ID != "" && len(rows) > 0 {
		if err := s.ledger.Record(ctx, event.ID); err != nil {
			s.log.Warn().Err(err).Str("event_id", event.ID).Msg("failed to record processed event")
		}
	}

	s.log.Info().
		Str("event_id", event.ID).
		Str("user_id", userID).
		Int("matched", len(rows)).
		Msg("user upgraded to premium")

	return &ports.WebhookResult{Outcome: ports.OutcomeUpgraded, UserID: userID, Matched: len(rows)}, nil
}

type nopLedger struct{}

func (nopLedger) Seen(context.Context, string) (bool, error) { return false, nil }
func (nopLedger) Record(context.Context, string) error       { return nil }
