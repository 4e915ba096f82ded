package httpclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"enterl2_explorer/internal/app/port"
	"enterl2_explorer/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxLoggedBody caps how much of an error body ends up in logs and errors.
const maxLoggedBody = 512

// RESTTransport implements port.RESTTransport over fasthttp.
type RESTTransport struct {
	client  *fasthttp.Client
	baseURL string
	logger  *zap.Logger
	metrics port.TransportMetrics
}

// NewRESTTransport creates a transport for the REST API rooted at baseURL.
func NewRESTTransport(baseURL string, logger *zap.Logger, metrics port.TransportMetrics) *RESTTransport {
	return &RESTTransport{
		client:  &fasthttp.Client{Name: "enterl2-explorer"},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.Named("RESTTransport"),
		metrics: metrics,
	}
}

// Get implements port.RESTTransport.
func (t *RESTTransport) Get(ctx context.Context, path string, out any) error {
	return t.Do(ctx, fasthttp.MethodGet, path, nil, out)
}

// Do sends a single request with a JSON body (if any) and decodes the JSON response into out.
// There is no retry and no timeout of its own; a deadline on ctx is honoured.
func (t *RESTTransport) Do(ctx context.Context, method, path string, body, out any) (err error) {
	started := time.Now()
	defer func() {
		t.metrics.Observe(Operation(method, path), err, started)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	requestURL := t.baseURL + path

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s: %w", requestURL, err)
		}
		req.SetBody(payload)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	t.logger.Debug("Requesting explorer API", zap.String("method", method), zap.String("url", requestURL))

	if deadline, ok := ctx.Deadline(); ok {
		err = t.client.DoDeadline(req, resp, deadline)
	} else {
		err = t.client.Do(req, resp)
	}
	if err != nil {
		t.logger.Error("API request failed", zap.String("url", requestURL), zap.Error(err))
		return fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
	}

	rawBody := resp.Body()
	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		t.logger.Error("API request returned non-2xx status",
			zap.String("url", requestURL),
			zap.Int("statusCode", status),
			zap.ByteString("responseBody", truncate(rawBody)),
		)
		return &entity.HTTPStatusError{URL: requestURL, StatusCode: status, Body: string(truncate(rawBody))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		t.logger.Error("Failed to decode API response",
			zap.String("url", requestURL),
			zap.ByteString("responseBody", truncate(rawBody)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to decode response from %s: %w", requestURL, err)
	}
	return nil
}

// Operation turns a request path into a low-cardinality metrics label:
// the query string is dropped and 0x-prefixed segments become ":id".
func Operation(method, path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, "0x") || strings.HasPrefix(segment, "0X") {
			segments[i] = ":id"
		}
	}
	return method + " " + strings.Join(segments, "/")
}

func truncate(b []byte) []byte {
	if len(b) > maxLoggedBody {
		return b[:maxLoggedBody]
	}
	return b
}
