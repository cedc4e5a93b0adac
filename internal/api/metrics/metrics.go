// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// SessionsIssuedTotal counts sessions established at sign-in or sign-up.
// Label:
//   - via: "signin" or "signup"
var SessionsIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of sessions established, by entry point.",
	},
	[]string{"via"},
)

// SessionsRevokedTotal counts explicit sign-outs.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked by sign-out.",
	},
)

// DashboardDeletesTotal counts delete mutations issued from the dashboard.
// Labels:
//   - collection: stores, properties, vehicles
//   - outcome: "ok", "not_found", or "error"
var DashboardDeletesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_deletes_total",
		Help:      "Total number of dashboard delete mutations, by collection and outcome.",
	},
	[]string{"collection", "outcome"},
)

// DashboardFetchDuration measures the full composite fetch, from the first
// scoped query to the assembled snapshot.
var DashboardFetchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_fetch_duration_seconds",
		Help:      "Duration of the composite dashboard fetch.",
		Buckets:   prometheus.DefBuckets,
	},
)

// CatalogFetchesTotal counts public catalog loads.
// Label:
//   - outcome: "ok" or "degraded" (a slot defaulted to empty)
var CatalogFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fetches_total",
		Help:      "Total number of public catalog fetches, by outcome.",
	},
	[]string{"outcome"},
)
