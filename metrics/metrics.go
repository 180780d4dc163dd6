// SPDX-License-Identifier: MIT
// Package: tfim/metrics
//
// metrics.go: Prometheus collectors of one tfim run.
//
// Contract:
//   • Collectors live in a private registry, never the global default.
//   • Export is a node_exporter textfile; there is no HTTP endpoint.
// Package metrics collects per-run telemetry for the tfim CLI and writes it
// in the node_exporter textfile format, the delivery path for batch jobs
// that have no scrape endpoint.
//
// Every Metrics value owns a private registry; nothing is registered on the
// global default registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/tfim/order"
	"github.com/katalvlaran/tfim/qubo"
)

const namespace = "tfim"

// Metrics holds the collectors of one run.
type Metrics struct {
	reg        *prometheus.Registry
	terms      prometheus.Gauge
	bonds      *prometheus.CounterVec
	records    *prometheus.CounterVec
	meanOrderP prometheus.Gauge
	stage      *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		terms: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "terms",
			Help:      "Consolidated terms in the generated polynomial.",
		}),
		bonds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonds_total",
			Help:      "Bonds visited by the Hamiltonian builder.",
		}, []string{"kind", "outcome"}),
		records: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Order-parameter records by outcome.",
		}, []string{"outcome"}),
		meanOrderP: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mean_order_p",
			Help:      "Mean |psi|^2 over emitted records of the last analysis.",
		}),
		stage: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of pipeline stages.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"stage"}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// ObserveBuild records the outcome of qubo.Build.
func (m *Metrics) ObserveBuild(stats qubo.Stats, terms int) {
	m.terms.Set(float64(terms))
	m.bonds.WithLabelValues("front", "emitted").Add(float64(stats.FrontEmitted))
	m.bonds.WithLabelValues("front", "suppressed").Add(float64(stats.FrontSuppressed))
	m.bonds.WithLabelValues("back", "emitted").Add(float64(stats.BackEmitted))
	m.bonds.WithLabelValues("back", "suppressed").Add(float64(stats.BackSuppressed))
}

// ObserveReport records the outcome of order.Analyze.
func (m *Metrics) ObserveReport(rep *order.Report) {
	m.records.WithLabelValues("emitted").Add(float64(len(rep.Records)))
	m.records.WithLabelValues("skipped").Add(float64(rep.Skipped))
	m.meanOrderP.Set(rep.MeanOrderP())
}

// Time starts timing stage; call the returned func when it ends.
func (m *Metrics) Time(stage string) func() {
	start := time.Now()
	return func() {
		m.stage.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is written to a temp file and renamed into place.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
