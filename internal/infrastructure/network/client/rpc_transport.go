package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"enterl2_explorer/internal/app/port"
	"enterl2_explorer/internal/domain/entity"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// RPCTransport implements port.RPCTransport on top of the go-ethereum JSON-RPC client.
type RPCTransport struct {
	rpcClient *rpc.Client
	url       string
	logger    *zap.Logger
	metrics   port.TransportMetrics
}

// DialRPCTransport creates a transport for the node at url. For HTTP endpoints
// no connection is made until the first call. httpClient may be nil.
func DialRPCTransport(ctx context.Context, url string, httpClient *http.Client, logger *zap.Logger, metrics port.TransportMetrics) (*RPCTransport, error) {
	var opts []rpc.ClientOption
	if httpClient != nil {
		opts = append(opts, rpc.WithHTTPClient(httpClient))
	}

	c, err := rpc.DialOptions(ctx, url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client for %s: %w", url, err)
	}

	return &RPCTransport{
		rpcClient: c,
		url:       url,
		logger:    logger.Named("RPCTransport"),
		metrics:   metrics,
	}, nil
}

// Call implements port.RPCTransport. One attempt, no retry; a deadline on ctx is honoured.
func (t *RPCTransport) Call(ctx context.Context, out any, method string, params []any) (err error) {
	started := time.Now()
	defer func() {
		t.metrics.Observe(method, err, started)
	}()

	if params == nil {
		// a non-nil slice makes the envelope carry "params":[] instead of dropping the member
		params = []any{}
	}

	t.logger.Debug("Calling node", zap.String("method", method), zap.Any("params", params))

	if callErr := t.rpcClient.CallContext(ctx, out, method, params...); callErr != nil {
		err = t.translate(method, callErr)
		t.logger.Error("RPC request failed", zap.String("method", method), zap.Error(err))
		return err
	}
	return nil
}

// Close releases the underlying client.
func (t *RPCTransport) Close() {
	t.rpcClient.Close()
}

func (t *RPCTransport) translate(method string, err error) error {
	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return &entity.HTTPStatusError{URL: t.url, StatusCode: httpErr.StatusCode, Body: string(httpErr.Body)}
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return &entity.RPCError{Method: method, Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
	}

	if errors.Is(err, rpc.ErrNoResult) {
		return fmt.Errorf("RPC request %s: %w", method, entity.ErrNotFound)
	}

	return fmt.Errorf("RPC request %s failed: %w", method, err)
}
