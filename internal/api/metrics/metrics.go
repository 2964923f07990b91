// Package metrics defines and registers all custom Prometheus metrics for the
// fair-platform API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fair_platform"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts completed login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionsCleared counts sessions removed from the store.
// Label:
//   - reason: "logout" or "corrupt"
var SessionsCleared = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_cleared_total",
		Help:      "Total number of sessions cleared from the store, by reason.",
	},
	[]string{"reason"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// GuardDenialsTotal counts route-guard denials.
// Label:
//   - decision: "redirect_login" or "redirect_unauthorized"
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of route-guard denials, by decision.",
	},
	[]string{"decision"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardFallbacksTotal counts dashboard summaries served from sample data
// after a repository failure. Non-zero values outside development are a bug.
// Label:
//   - dashboard: the dashboard kind (e.g. "admin", "financial")
var DashboardFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_fallbacks_total",
		Help:      "Total number of dashboard summaries substituted with sample data.",
	},
	[]string{"dashboard"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the current number of audit events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
