package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	require.NotNil(t, m)

	m.FilesDeleted.Inc()
	m.FilesDeleted.Inc()
	m.SweepRuns.Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.FilesDeleted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SweepRuns))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.FilesCopied))
}

func TestRecordSuppressed(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordSuppressed("delete_file")
	m.RecordSuppressed("delete_file")
	m.RecordSuppressed("copy_dir")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SuppressedFailures.WithLabelValues("delete_file")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SuppressedFailures.WithLabelValues("copy_dir")))
}

func TestNewMetricsIsolatedRegistries(t *testing.T) {
	// Two collectors must be able to coexist when given separate registries.
	a := NewMetrics(prometheus.NewRegistry())
	b := NewMetrics(prometheus.NewRegistry())
	a.ClearRuns.Inc()
	assert.Equal(t, float64(0), testutil.ToFloat64(b.ClearRuns))
}
