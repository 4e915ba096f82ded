package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of served explorer requests.",
	}, []string{"route", "code"})
	pageRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of served explorer requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "code"})
)

// ObservePage records a served request. route is the router pattern, not the raw path.
func ObservePage(route string, code int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}
	c := strconv.Itoa(code)
	pageRequestsTotal.WithLabelValues(route, c).Inc()
	pageRequestDuration.WithLabelValues(route, c).Observe(time.Since(started).Seconds())
}
