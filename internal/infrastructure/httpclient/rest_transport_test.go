package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"enterl2_explorer/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingMetrics struct {
	operations []string
	errs       []error
}

func (m *recordingMetrics) Observe(operation string, err error, _ time.Time) {
	m.operations = append(m.operations, operation)
	m.errs = append(m.errs, err)
}

func TestRESTTransport_Get(t *testing.T) {
	var gotPath, gotQuery, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"latestBlock":42,"averageTps":1.5}`)
	}))
	defer srv.Close()

	m := &recordingMetrics{}
	tr := NewRESTTransport(srv.URL+"/", zap.NewNop(), m)

	var stats entity.NetworkStats
	require.NoError(t, tr.Get(context.Background(), "/api/v1/stats?limit=3", &stats))

	assert.Equal(t, "/api/v1/stats", gotPath)
	assert.Equal(t, "limit=3", gotQuery)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, uint64(42), stats.LatestBlock)
	assert.InDelta(t, 1.5, stats.AverageTps, 1e-9)
	assert.Equal(t, []string{"GET /api/v1/stats"}, m.operations)
	assert.NoError(t, m.errs[0])
}

func TestRESTTransport_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"address not found"}`)
	}))
	defer srv.Close()

	m := &recordingMetrics{}
	tr := NewRESTTransport(srv.URL, zap.NewNop(), m)

	var addr entity.Address
	err := tr.Get(context.Background(), "/api/v1/addresses/0xabc", &addr)
	require.Error(t, err)

	var statusErr *entity.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "address not found")
	assert.True(t, entity.IsNotFound(err))
	assert.Equal(t, []string{"GET /api/v1/addresses/:id"}, m.operations)
}

func TestRESTTransport_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := NewRESTTransport(srv.URL, zap.NewNop(), &recordingMetrics{})
	err := tr.Get(context.Background(), "/api/v1/blocks?limit=10", nil)

	var statusErr *entity.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.False(t, entity.IsNotFound(err))
}

func TestRESTTransport_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	tr := NewRESTTransport(srv.URL, zap.NewNop(), &recordingMetrics{})
	var blocks []entity.Block
	err := tr.Get(context.Background(), "/api/v1/blocks", &blocks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestRESTTransport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := NewRESTTransport(url, zap.NewNop(), &recordingMetrics{})
	err := tr.Get(context.Background(), "/api/v1/stats", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}

func TestRESTTransport_PostBody(t *testing.T) {
	var gotMethod string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	tr := NewRESTTransport(srv.URL, zap.NewNop(), &recordingMetrics{})
	require.NoError(t, tr.Do(context.Background(), http.MethodPost, "/api/v1/search", map[string]string{"q": "alice"}, nil))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.JSONEq(t, `{"q":"alice"}`, string(gotBody))
}

func TestRESTTransport_CanceledContext(t *testing.T) {
	tr := NewRESTTransport("http://127.0.0.1:1", zap.NewNop(), &recordingMetrics{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tr.Get(ctx, "/api/v1/stats", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOperation(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/v1/stats", want: "GET /api/v1/stats"},
		{path: "/api/v1/transactions?limit=10", want: "GET /api/v1/transactions"},
		{path: "/api/v1/addresses/0xAbC/transactions?page=2&limit=20", want: "GET /api/v1/addresses/:id/transactions"},
		{path: "/api/v1/names/reverse/0x01", want: "GET /api/v1/names/reverse/:id"},
		{path: "/api/v1/search?q=0xabc", want: "GET /api/v1/search"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Operation(http.MethodGet, tt.path))
	}
}
