// Package monitoring exposes Prometheus metrics for scratch-space
// maintenance: how much gets deleted, how often sweeps run, and how many
// failures were suppressed along the way.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all scratchfs Prometheus metrics.
type Metrics struct {
	// Deletion metrics
	FilesDeleted prometheus.Counter
	StaleDeleted prometheus.Counter

	// Copy metrics
	FilesCopied prometheus.Counter

	// Run metrics
	SweepRuns prometheus.Counter
	ClearRuns prometheus.Counter

	// Suppressed failures by operation
	SuppressedFailures *prometheus.CounterVec
}

// NewMetrics creates a metrics collector registered against reg.
// Pass nil to use the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		FilesDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "scratchfs_files_deleted_total",
				Help: "Total number of files deleted",
			},
		),
		StaleDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "scratchfs_stale_files_deleted_total",
				Help: "Total number of stale temp files deleted by sweeps",
			},
		),
		FilesCopied: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "scratchfs_files_copied_total",
				Help: "Total number of files copied",
			},
		),
		SweepRuns: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "scratchfs_sweep_runs_total",
				Help: "Total number of stale-file sweep runs",
			},
		),
		ClearRuns: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "scratchfs_clear_runs_total",
				Help: "Total number of directory clear runs",
			},
		),
		SuppressedFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scratchfs_suppressed_failures_total",
				Help: "Total number of filesystem failures recorded and suppressed",
			},
			[]string{"op"},
		),
	}
}

// RecordSuppressed records a suppressed failure for an operation.
func (m *Metrics) RecordSuppressed(op string) {
	m.SuppressedFailures.WithLabelValues(op).Inc()
}
