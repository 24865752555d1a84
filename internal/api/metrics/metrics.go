// Package metrics defines and registers all custom Prometheus metrics for the
// campus rentals API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rentals"

// ListingsCreatedTotal counts newly created listings.
// Label:
//   - category: the listing category supplied by the user (e.g. "Electronics")
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of item listings created, by category.",
	},
	[]string{"category"},
)

// ImageUploadsTotal counts image upload attempts.
// Label:
//   - result: "stored" (accepted and written to disk) or "rejected"
//     (bad content type or over the size limit)
var ImageUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of image upload attempts, by result.",
	},
	[]string{"result"},
)

// AdvisoryRequestsTotal counts calls to the vision advisory service.
// Label:
//   - result: "ok" (usable suggestion), "empty" (model produced fewer than
//     three lines), or "error" (transport/API failure)
var AdvisoryRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advisory_requests_total",
		Help:      "Total number of image advisory calls, by result.",
	},
	[]string{"result"},
)

// AdvisoryDuration measures how long a single advisory call takes end-to-end,
// including failures.
var AdvisoryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "advisory_duration_seconds",
		Help:      "Duration of image advisory calls.",
		Buckets:   prometheus.DefBuckets, // .005 … 10
	},
)
