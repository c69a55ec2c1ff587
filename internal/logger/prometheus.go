package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	metricsOnce sync.Once //nolint:gochecknoglobals

	// statements counts written log events per level.
	statements *prometheus.CounterVec //nolint:gochecknoglobals

	// writeErrors counts events zerolog could not write.
	writeErrors prometheus.Counter //nolint:gochecknoglobals
)

// registerMetrics registers the logger metrics once per process. The service
// label is taken from the first call.
func registerMetrics(service string) {
	metricsOnce.Do(func() {
		labels := prometheus.Labels{"service": service}

		statements = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "log_statements_total",
				Help:        "Number of log statements, differentiated by log level.",
				ConstLabels: labels,
			},
			[]string{"level"},
		)

		writeErrors = promauto.NewCounter(prometheus.CounterOpts{
			Name:        "log_write_errors_total",
			Help:        "Number of log events that could not be written.",
			ConstLabels: labels,
		})
	})
}

// PrometheusHook counts log statements per level.
type PrometheusHook struct{}

// Run implements zerolog.Hook.
func (PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel && statements != nil {
		statements.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook registers the logger metrics and returns the hook.
func NewPrometheusHook(service string) PrometheusHook {
	registerMetrics(service)

	return PrometheusHook{}
}
