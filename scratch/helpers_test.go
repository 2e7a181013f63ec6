package scratch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/scratchfs/config"
	"github.com/GriffinCanCode/scratchfs/logging"
	"github.com/GriffinCanCode/scratchfs/monitoring"
)

// newTestOps builds an Ops with a silent sink and an isolated metrics
// registry so tests never collide on registration.
func newTestOps(t *testing.T, cfg config.ScratchConfig) *Ops {
	t.Helper()
	return New(NewResolver(cfg), logging.NewNop(), monitoring.NewMetrics(prometheus.NewRegistry()))
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
