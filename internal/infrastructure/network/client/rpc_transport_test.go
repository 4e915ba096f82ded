package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"enterl2_explorer/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type nopMetrics struct{ calls []string }

func (m *nopMetrics) Observe(operation string, _ error, _ time.Time) {
	m.calls = append(m.calls, operation)
}

// newNode starts a fake node answering every request with reply(req).
func newNode(t *testing.T, reply func(req rpcRequest) (status int, body string)) (*httptest.Server, *[]rpcRequest) {
	t.Helper()
	var seen []rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		seen = append(seen, req)

		status, body := reply(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func dial(t *testing.T, url string, m *nopMetrics) *RPCTransport {
	t.Helper()
	tr, err := DialRPCTransport(context.Background(), url, nil, zap.NewNop(), m)
	require.NoError(t, err)
	t.Cleanup(tr.Close)
	return tr
}

func TestRPCTransport_CallResult(t *testing.T) {
	srv, seen := newNode(t, func(req rpcRequest) (int, string) {
		return http.StatusOK, `{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":"0x1b4"}`
	})
	m := &nopMetrics{}
	tr := dial(t, srv.URL, m)

	var result string
	require.NoError(t, tr.Call(context.Background(), &result, "eth_blockNumber", nil))

	assert.Equal(t, "0x1b4", result)
	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, "2.0", req.JSONRPC)
	assert.Equal(t, "eth_blockNumber", req.Method)
	assert.NotNil(t, req.Params)
	assert.Empty(t, req.Params)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, []string{"eth_blockNumber"}, m.calls)
}

func TestRPCTransport_PassesParams(t *testing.T) {
	srv, seen := newNode(t, func(req rpcRequest) (int, string) {
		return http.StatusOK, `{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":{"number":255,"hash":"0xbeef"}}`
	})
	tr := dial(t, srv.URL, &nopMetrics{})

	var block *entity.Block
	require.NoError(t, tr.Call(context.Background(), &block, "eth_getBlockByNumber", []any{"0xff", true}))

	require.NotNil(t, block)
	assert.Equal(t, uint64(255), block.Number)
	require.Len(t, (*seen)[0].Params, 2)
	assert.JSONEq(t, `"0xff"`, string((*seen)[0].Params[0]))
	assert.JSONEq(t, `true`, string((*seen)[0].Params[1]))
}

func TestRPCTransport_NullResult(t *testing.T) {
	srv, _ := newNode(t, func(req rpcRequest) (int, string) {
		return http.StatusOK, `{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":null}`
	})
	tr := dial(t, srv.URL, &nopMetrics{})

	tx := &entity.Transaction{Hash: "stale"}
	require.NoError(t, tr.Call(context.Background(), &tx, "eth_getTransactionByHash", []any{"0x01"}))
	assert.Nil(t, tx)
}

func TestRPCTransport_MissingResult(t *testing.T) {
	srv, _ := newNode(t, func(req rpcRequest) (int, string) {
		return http.StatusOK, `{"jsonrpc":"2.0","id":` + string(req.ID) + `}`
	})
	tr := dial(t, srv.URL, &nopMetrics{})

	var tx *entity.Transaction
	err := tr.Call(context.Background(), &tx, "eth_getTransactionByHash", []any{"0x01"})
	require.ErrorIs(t, err, entity.ErrNotFound)
	assert.True(t, entity.IsNotFound(err))
}

func TestRPCTransport_ErrorMember(t *testing.T) {
	srv, _ := newNode(t, func(req rpcRequest) (int, string) {
		return http.StatusOK, `{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":{"code":-32000,"message":"transaction not indexed"}}`
	})
	tr := dial(t, srv.URL, &nopMetrics{})

	var tx *entity.Transaction
	err := tr.Call(context.Background(), &tx, "eth_getTransactionByHash", []any{"0x01"})
	require.Error(t, err)

	var rpcErr *entity.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "transaction not indexed", rpcErr.Error())
	assert.Equal(t, -32000, rpcErr.Code)
	assert.Equal(t, "eth_getTransactionByHash", rpcErr.Method)
}

func TestRPCTransport_Non2xx(t *testing.T) {
	srv, _ := newNode(t, func(rpcRequest) (int, string) {
		return http.StatusServiceUnavailable, `upstream down`
	})
	tr := dial(t, srv.URL, &nopMetrics{})

	var result string
	err := tr.Call(context.Background(), &result, "eth_blockNumber", nil)

	var statusErr *entity.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "upstream down", statusErr.Body)
}

func TestRPCTransport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := dial(t, url, &nopMetrics{})
	var result string
	err := tr.Call(context.Background(), &result, "eth_blockNumber", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RPC request eth_blockNumber failed")
}
