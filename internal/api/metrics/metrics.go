// Package metrics defines and registers all custom Prometheus metrics for
// the storefront service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Synchronizer metrics ──────────────────────────────────────────────────────

// SyncsTotal counts list-field persist attempts.
// Labels:
//   - field: the synchronized document field ("cart" or "wishlist")
//   - result: "committed" or "rolled_back"
var SyncsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "syncs_total",
		Help:      "Total number of list-field sync attempts, by field and result.",
	},
	[]string{"field", "result"},
)

// SyncDuration measures how long one persist round trip takes, from the
// local mutation to the remote write completing.
var SyncDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of the read-merge-write persist round trip.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"field"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts orders that were durably persisted.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed successfully.",
	},
)

// OrdersFailedTotal counts checkout attempts that failed after passing
// their preconditions.
var OrdersFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_failed_total",
		Help:      "Total number of order placements that failed at the store.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionEventsTotal counts session lifecycle events.
// Label:
//   - event: "signup", "login", "logout", or "rehydrated"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle events.",
	},
	[]string{"event"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// NotificationsDeliveredTotal counts notifications handed to the sink.
var NotificationsDeliveredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_delivered_total",
		Help:      "Total number of notifications delivered to the sink.",
	},
)
