package scratch

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/scratchfs/logging"
	"github.com/GriffinCanCode/scratchfs/monitoring"
)

// Ops provides the best-effort maintenance operations. All methods share
// the same diagnostic sink: suppressed failures are logged and counted,
// never raised.
type Ops struct {
	resolver *Resolver
	log      *logging.Logger
	metrics  *monitoring.Metrics
}

// New creates an Ops instance. A nil logger discards diagnostics; a nil
// metrics collector records into a private throwaway registry.
func New(resolver *Resolver, log *logging.Logger, metrics *monitoring.Metrics) *Ops {
	if log == nil {
		log = logging.NewNop()
	}
	if metrics == nil {
		metrics = monitoring.NewMetrics(prometheus.NewRegistry())
	}
	return &Ops{resolver: resolver, log: log, metrics: metrics}
}

// suppress forwards a swallowed failure to the diagnostic sink. Every
// catch-site in this package goes through here.
func (o *Ops) suppress(op, path string, err error) {
	o.log.Warn("filesystem failure suppressed",
		zap.String("op", op),
		zap.String("path", path),
		zap.Error(err),
	)
	o.metrics.RecordSuppressed(op)
}
