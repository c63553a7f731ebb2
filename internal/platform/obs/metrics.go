package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OpDuration is the only collector registered by importing the client library.
var OpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "radiogarden_op_duration_seconds",
		Help:    "Duration of timed operations (upstream calls, store queries) in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"op", "outcome"},
)

func observe(name string, dur time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	OpDuration.WithLabelValues(name, outcome).Observe(dur.Seconds())
}
