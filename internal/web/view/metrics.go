package view

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// dispatchCounter counts gating outcomes per view.
var dispatchCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "view_dispatch_total",
		Help: "Number of gated view dispatches, differentiated by view and outcome.",
	},
	[]string{"view", "outcome"},
)

func observe(name string, o Outcome) {
	dispatchCounter.WithLabelValues(name, o.String()).Inc()
}
