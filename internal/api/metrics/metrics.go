// Package metrics defines and registers all custom Prometheus metrics for the
// neondash services. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init via promauto and exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "neondash"

// ── Webhook metrics ───────────────────────────────────────────────────────────

// WebhookEventsTotal counts webhook deliveries by how they ended.
// Labels:
//   - type: provider event type, or "unknown" before verification
//   - outcome: "upgraded", "duplicate", "ignored", "invalid_signature",
//     "missing_signature", "missing_user", "store_error", "error"
var WebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Total number of payment webhook deliveries, by event type and outcome.",
	},
	[]string{"type", "outcome"},
)

// WebhookProfileMissingTotal counts completed checkouts whose user had no profile row.
var WebhookProfileMissingTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_profile_missing_total",
		Help:      "Completed checkouts that matched no profile row.",
	},
)

// WebhookDuration measures time from body read to response.
var WebhookDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "webhook_duration_seconds",
		Help:      "Duration of payment webhook handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// AuthAttemptsTotal counts sign-in attempts.
// Label:
//   - result: "ok", "invalid_credentials", "not_found", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signin_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// FocusEntriesTotal counts focus journal writes.
// Label:
//   - op: "create", "update", "delete"
var FocusEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "focus_writes_total",
		Help:      "Total number of focus journal writes, by operation.",
	},
	[]string{"op"},
)

// CheckoutsStartedTotal counts checkout URLs handed out.
var CheckoutsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_started_total",
		Help:      "Total number of checkout sessions started.",
	},
)

// TickerFetchesTotal counts upstream price fetches.
// Label:
//   - result: "ok" or "error"
var TickerFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticker_fetches_total",
		Help:      "Total number of market data fetches, by result.",
	},
	[]string{"result"},
)

// TickerSnapshotAge tracks seconds since the last successful price fetch, as
// observed when the snapshot is served.
var TickerSnapshotAge = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ticker_snapshot_age_seconds",
		Help:      "Age of the served price snapshot.",
	},
)
