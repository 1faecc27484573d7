// Package metrics exposes Prometheus instruments for lookups and the
// notification scheduler. All methods are safe on a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pricewatch"

// Lookup outcomes.
const (
	LookupFound       = "found"
	LookupNotFound    = "not_found"
	LookupInvalidCode = "invalid_code"
	LookupUnavailable = "unavailable"
	LookupPersistFail = "persist_failed"
)

// Tick results.
const (
	TickDelivered      = "delivered"
	TickLookupFailed   = "lookup_failed"
	TickSkipped        = "skipped"
	TickDeliveryFailed = "delivery_failed"
)

// Metrics groups the application's Prometheus collectors.
type Metrics struct {
	lookups             *prometheus.CounterVec
	lookupDuration      prometheus.Histogram
	ticks               *prometheus.CounterVec
	activeSubscriptions prometheus.Gauge
}

// New creates the collectors and registers them with registerer.
// A nil registerer falls back to prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Interactive product lookups by outcome.",
		},
		[]string{"outcome"}, // found | not_found | invalid_code | unavailable | persist_failed
	)

	lookupDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Latency of calls to the product card API.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	ticks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscription_ticks_total",
			Help:      "Notification scheduler ticks by result.",
		},
		[]string{"result"}, // delivered | lookup_failed | skipped | delivery_failed
	)

	activeSubscriptions := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_subscriptions",
			Help:      "Number of running subscription tasks.",
		},
	)

	registerer.MustRegister(lookups, lookupDuration, ticks, activeSubscriptions)

	return &Metrics{
		lookups:             lookups,
		lookupDuration:      lookupDuration,
		ticks:               ticks,
		activeSubscriptions: activeSubscriptions,
	}
}

// IncLookup counts one chat lookup by outcome (Lookup* constants).
func (m *Metrics) IncLookup(outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(outcome).Inc()
}

// ObserveLookupDuration records the latency of one card API lookup.
func (m *Metrics) ObserveLookupDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.lookupDuration.Observe(d.Seconds())
}

// IncTick counts one scheduler tick by result (Tick* constants).
func (m *Metrics) IncTick(result string) {
	if m == nil {
		return
	}
	m.ticks.WithLabelValues(result).Inc()
}

// SetActiveSubscriptions sets the running subscription gauge. Negative
// values are clamped to zero.
func (m *Metrics) SetActiveSubscriptions(n int) {
	if m == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	m.activeSubscriptions.Set(float64(n))
}
