// Package metrics holds the Prometheus collectors of the explorer.
package metrics

import (
	"time"

	"enterl2_explorer/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "enterl2_explorer"

var (
	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Count of outbound REST and JSON-RPC requests.",
	}, []string{"transport", "operation", "status"})
	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound REST and JSON-RPC requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"transport", "operation", "status"})
)

// Transport tracks metrics for one upstream transport ("rest" or "rpc").
type Transport struct {
	transport string
}

// NewTransport constructs a metrics collector for a transport.
func NewTransport(transport string) *Transport {
	if transport == "" {
		transport = "unknown"
	}
	return &Transport{transport: transport}
}

// Observe records a single call outcome and duration.
func (m Transport) Observe(operation string, err error, started time.Time) {
	status := callStatus(err)
	upstreamRequestsTotal.WithLabelValues(m.transport, operation, status).Inc()
	upstreamRequestDuration.WithLabelValues(m.transport, operation, status).Observe(time.Since(started).Seconds())
}

func callStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case entity.IsNotFound(err):
		return "not_found"
	default:
		return "error"
	}
}
