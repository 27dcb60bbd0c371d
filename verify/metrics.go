// SPDX-License-Identifier: MIT
// Package: lvclique/verify

package verify

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "lvclique"

// Outcome labels for lvclique_checks_total.
const (
	OutcomeAgree    = "agree"
	OutcomeDisagree = "disagree"
	OutcomeError    = "error"
)

// metrics holds the harness collectors on a registry of their own, so
// several harnesses (or tests) never collide on registration.
type metrics struct {
	registry *prometheus.Registry
	checks   *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()

	checks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "checks_total",
			Help:      "Total number of solver checks by outcome",
		},
		[]string{"outcome"},
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "check_duration_seconds",
			Help:      "Wall time of a solver check including the exhaustive oracle",
			Buckets:   prometheus.DefBuckets,
		},
	)

	registry.MustRegister(checks, duration)
	for _, o := range []string{OutcomeAgree, OutcomeDisagree, OutcomeError} {
		checks.WithLabelValues(o)
	}

	return &metrics{registry: registry, checks: checks, duration: duration}
}
