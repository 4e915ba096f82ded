package port

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/transport_mock.go -package=mocks enterl2_explorer/internal/app/port RESTTransport,RPCTransport

// RESTTransport performs requests against the explorer REST API.
type RESTTransport interface {
	// Get issues GET baseURL+path and decodes the JSON body into out.
	// A non-2xx status is returned as *entity.HTTPStatusError.
	Get(ctx context.Context, path string, out any) error
}

// RPCTransport performs JSON-RPC 2.0 calls against the node.
type RPCTransport interface {
	// Call sends {jsonrpc, method, params, id} and decodes the result member into out.
	// An error member is returned as *entity.RPCError, a non-2xx status as *entity.HTTPStatusError.
	Call(ctx context.Context, out any, method string, params []any) error
}

// TransportMetrics records the outcome of a single outbound call.
type TransportMetrics interface {
	Observe(operation string, err error, started time.Time)
}
