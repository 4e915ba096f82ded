package entity

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound marks a lookup whose entity does not exist upstream.
var ErrNotFound = errors.New("not found")

// HTTPStatusError is returned by both transports for a non-2xx response.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d (%s)", e.StatusCode, e.URL)
}

// RPCError is the error member of a JSON-RPC response.
type RPCError struct {
	Method  string
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("json-rpc error %d", e.Code)
	}
	return e.Message
}

// IsNotFound reports whether err means "does not exist": ErrNotFound or an HTTP 404.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}
