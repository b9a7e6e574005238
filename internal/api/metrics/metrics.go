// Package metrics defines all custom Prometheus metrics for the careers
// site. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careers"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionBootstrapsTotal counts session bootstrap outcomes.
// Label:
//   - outcome: "none" (no stored session), "expired", "refresh_failed", "restored"
var SessionBootstrapsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_bootstraps_total",
		Help:      "Total number of session bootstrap attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// SessionRefreshesTotal counts token refresh attempts.
// Label:
//   - result: "ok", "expired" (local margin check failed), "error"
var SessionRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_refreshes_total",
		Help:      "Total number of refresh-token exchanges, labelled by result.",
	},
	[]string{"result"},
)

// AuthRequestsTotal counts login/register calls against the backend.
// Labels:
//   - operation: "login" or "register"
//   - result: "ok" or "error"
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of authentication requests forwarded to the backend.",
	},
	[]string{"operation", "result"},
)

// ── Job board metrics ─────────────────────────────────────────────────────────

// JobRequestsTotal counts job-board reads against the backend.
// Labels:
//   - endpoint: "list" or "detail"
//   - result: "ok", "not_found", "error"
var JobRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_requests_total",
		Help:      "Total number of job board requests forwarded to the backend.",
	},
	[]string{"endpoint", "result"},
)

// JobCacheTotal counts listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var JobCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_cache_total",
		Help:      "Total number of job listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
