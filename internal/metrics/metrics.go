// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus metrics of the validation engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/go-paystat/models"
)

// Outcome label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Metrics provides observability for report validation. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Validated reports by family and outcome
	Reports *prometheus.CounterVec

	// Validated items by variant and outcome
	Items *prometheus.CounterVec

	// Violations by kind and code
	Violations *prometheus.CounterVec

	// Duration of full report validation
	ReportLatency prometheus.Histogram
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Reports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paystat_reports_validated_total",
			Help: "Total validated reports by family and outcome",
		}, []string{"family", "outcome"}),

		Items: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paystat_items_validated_total",
			Help: "Total validated report items by record variant and outcome",
		}, []string{"variant", "outcome"}),

		Violations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paystat_violations_total",
			Help: "Total violations found by kind and code",
		}, []string{"kind", "code"}),

		ReportLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "paystat_report_validation_duration_seconds",
			Help:    "Duration of full report validation including every item",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveReport records the outcome of one validated report and its items.
func (m *Metrics) ObserveReport(outcome *models.ReportOutcome, d time.Duration) {
	if m == nil || outcome == nil {
		return
	}

	family := outcome.Family
	if family == "" {
		family = "unknown"
	}
	m.Reports.WithLabelValues(family, label(outcome.Accepted)).Inc()
	m.ReportLatency.Observe(d.Seconds())

	for _, item := range outcome.Items {
		m.ObserveItem(&item)
	}
	for _, v := range outcome.Envelope {
		m.Violations.WithLabelValues(string(v.Kind), v.Code).Inc()
	}
}

// ObserveItem records the outcome of one validated item.
func (m *Metrics) ObserveItem(item *models.ItemOutcome) {
	if m == nil || item == nil {
		return
	}

	variant := item.Variant
	if variant == "" {
		variant = "unknown"
	}
	m.Items.WithLabelValues(variant, label(item.Accepted)).Inc()

	for _, v := range item.Violations {
		m.Violations.WithLabelValues(string(v.Kind), v.Code).Inc()
	}
}

func label(accepted bool) string {
	if accepted {
		return OutcomeAccepted
	}
	return OutcomeRejected
}
