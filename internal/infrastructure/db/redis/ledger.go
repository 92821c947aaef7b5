package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ledgerTTL covers Stripe's retry window for undelivered events.
const ledgerTTL = 72 * time.Hour

// EventLedger remembers which payment events have already been applied.
// Key format: webhook:event:<event_id>
type EventLedger struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEventLedger creates an EventLedger wrapping the given Redis client.
func NewEventLedger(client *redis.Client) *EventLedger {
	return &EventLedger{client: client, ttl: ledgerTTL}
}

// Seen reports whether the event has already been applied.
func (l *EventLedger) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("ledger check: %w", err)
	}
	return n > 0, nil
}

// Record marks the event as applied (expires after ledgerTTL).
func (l *EventLedger) Record(ctx context.Context, eventID string) error {
	if err := l.client.Set(ctx, l.key(eventID), "1", l.ttl).Err(); err != nil {
		return fmt.Errorf("ledger record: %w", err)
	}
	return nil
}

func (l *EventLedger) key(eventID string) string {
	return "webhook:event:" + eventID
}
