// Package metrics provides Prometheus metrics for the derivative pipeline.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	originalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thumbnail_originals_total",
			Help: "Originals processed, by outcome",
		},
		[]string{"outcome"},
	)

	derivativesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thumbnail_derivatives_written_total",
			Help: "Derivatives written to storage, by variant",
		},
		[]string{"variant"},
	)

	derivativeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thumbnail_derivative_failures_total",
			Help: "Derivatives that failed to render or upload, by variant",
		},
		[]string{"variant"},
	)

	renderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "thumbnail_render_duration_seconds",
			Help:    "Time to scale, crop and encode one derivative",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"variant"},
	)

	backfillItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thumbnail_backfill_items_total",
			Help: "Backfill items processed, by outcome",
		},
		[]string{"outcome"},
	)

	backfillInflight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "thumbnail_backfill_inflight",
			Help: "Backfill items currently being processed",
		},
	)
)

// RecordOriginal counts one processed original.
func RecordOriginal(outcome string) {
	originalsTotal.WithLabelValues(outcome).Inc()
}

// RecordDerivative counts one derivative attempt and its render time.
func RecordDerivative(variant string, d time.Duration, err error) {
	if err != nil {
		derivativeFailures.WithLabelValues(variant).Inc()
		return
	}
	derivativesWritten.WithLabelValues(variant).Inc()
	renderDuration.WithLabelValues(variant).Observe(d.Seconds())
}

// RecordBackfillItem counts one backfill item.
func RecordBackfillItem(outcome string) {
	backfillItems.WithLabelValues(outcome).Inc()
}

// BackfillInflight adjusts the in-flight gauge by delta.
func BackfillInflight(delta int) {
	backfillInflight.Add(float64(delta))
}

// Handler returns a fiber handler serving the Prometheus registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
