package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"enterl2_explorer/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestTransportRecords(t *testing.T) {
	m := NewTransport("rpc")
	start := time.Now().Add(-time.Second)

	if inc := delta(t, upstreamRequestsTotal.WithLabelValues("rpc", "eth_blockNumber", "success"), func() {
		m.Observe("eth_blockNumber", nil, start)
	}); inc != 1 {
		t.Fatalf("expected success counter increment, got %v", inc)
	}

	if inc := delta(t, upstreamRequestsTotal.WithLabelValues("rpc", "eth_getBlockByHash", "error"), func() {
		m.Observe("eth_getBlockByHash", errors.New("boom"), start)
	}); inc != 1 {
		t.Fatalf("expected error counter increment, got %v", inc)
	}

	notFound := fmt.Errorf("wrapped: %w", &entity.HTTPStatusError{StatusCode: 404})
	if inc := delta(t, upstreamRequestsTotal.WithLabelValues("rpc", "GET /api/v1/addresses/:id", "not_found"), func() {
		m.Observe("GET /api/v1/addresses/:id", notFound, start)
	}); inc != 1 {
		t.Fatalf("expected not_found counter increment, got %v", inc)
	}
}

func TestTransportDefaultsLabel(t *testing.T) {
	m := NewTransport("")
	start := time.Now()

	if inc := delta(t, upstreamRequestsTotal.WithLabelValues("unknown", "op", "success"), func() {
		m.Observe("op", nil, start)
	}); inc != 1 {
		t.Fatalf("expected unknown transport label, got %v", inc)
	}
}

func TestObservePage(t *testing.T) {
	start := time.Now()

	if inc := delta(t, pageRequestsTotal.WithLabelValues("/tx/:hash", "404"), func() {
		ObservePage("/tx/:hash", 404, start)
	}); inc != 1 {
		t.Fatalf("expected page counter increment, got %v", inc)
	}
	if inc := delta(t, pageRequestsTotal.WithLabelValues("unmatched", "404"), func() {
		ObservePage("", 404, start)
	}); inc != 1 {
		t.Fatalf("expected unmatched route label, got %v", inc)
	}
}
