package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"

	"trackerMobility/internal/shared/auth"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBody = 64 << 10

// LatencyObserver receives one observation per upstream round-trip.
type LatencyObserver interface {
	ObserveUpstream(method, path string, status int, elapsed time.Duration)
}

// Config describes how to reach the upstream Tracker Mobility API.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RetryMax applies to GET requests only; writes are never retried.
	RetryMax int
	Logger   *slog.Logger
	Observer LatencyObserver
}

// Requester is the upstream surface the HTTP repositories depend on.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values) (any, error)
	Post(ctx context.Context, path string, payload any) (any, error)
	Put(ctx context.Context, path string, payload any) (any, error)
	Patch(ctx context.Context, path string, payload any) (any, error)
	Delete(ctx context.Context, path string) (any, error)
}

var _ Requester = (*Client)(nil)

// Client wraps the upstream REST API with base URL handling, bearer token
// forwarding and uniform rejection shapes (*ResponseError / *RequestError).
type Client struct {
	baseURL  string
	reads    *retryablehttp.Client
	writes   *retryablehttp.Client
	logger   *slog.Logger
	observer LatencyObserver
}

func NewClient(cfg Config) *Client {
	trimmed := strings.TrimSpace(cfg.BaseURL)
	if trimmed == "" {
		trimmed = "http://localhost:3000"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	retryMax := cfg.RetryMax
	if retryMax < 0 {
		retryMax = 0
	}
	return &Client{
		baseURL:  strings.TrimRight(trimmed, "/"),
		reads:    newRetryClient(timeoutOrDefault(cfg.Timeout), retryMax, logger),
		writes:   newRetryClient(timeoutOrDefault(cfg.Timeout), 0, logger),
		logger:   logger,
		observer: cfg.Observer,
	}
}

func newRetryClient(timeout time.Duration, retryMax int, logger *slog.Logger) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient = &http.Client{Timeout: timeout}
	client.Logger = logger
	// Hand the final response back untouched so status codes survive exhausted retries.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// Get performs a GET request and returns the decoded JSON payload.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post sends payload as JSON with POST.
func (c *Client) Post(ctx context.Context, path string, payload any) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, payload)
}

// Put sends payload as JSON with PUT.
func (c *Client) Put(ctx context.Context, path string, payload any) (any, error) {
	return c.do(ctx, http.MethodPut, path, nil, payload)
}

// Patch sends payload as JSON with PATCH.
func (c *Client) Patch(ctx context.Context, path string, payload any) (any, error) {
	return c.do(ctx, http.MethodPatch, path, nil, payload)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (any, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(strings.TrimSpace(path), "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		c.logger.Error("upstream request build failed", slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := auth.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", requestIDOrNew(ctx))

	client := c.writes
	if method == http.MethodGet {
		client = c.reads
	}

	started := time.Now()
	c.logger.Debug("upstream request", slog.String("method", method), slog.String("url", endpoint))
	res, err := client.Do(req)
	if err != nil {
		c.observe(method, path, 0, time.Since(started))
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.logger.Warn("upstream request interrupted", slog.String("method", method), slog.String("url", endpoint), slog.Any("error", err))
		} else {
			c.logger.Error("upstream request error", slog.String("method", method), slog.String("url", endpoint), slog.Any("error", err))
		}
		return nil, &RequestError{URL: endpoint, Method: method, Err: err}
	}
	defer res.Body.Close()
	c.observe(method, path, res.StatusCode, time.Since(started))
	c.logger.Debug("upstream response", slog.Int("status", res.StatusCode), slog.String("url", endpoint))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, &ResponseError{
			Status:     res.StatusCode,
			StatusText: strings.TrimSpace(strings.TrimPrefix(res.Status, fmt.Sprint(res.StatusCode))),
			Data:       decodeLoose(raw),
			URL:        endpoint,
			Method:     method,
			Payload:    payload,
		}
	}

	if res.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &RequestError{URL: endpoint, Method: method, Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return decoded, nil
}

func (c *Client) observe(method, path string, status int, elapsed time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstream(method, path, status, elapsed)
}

// decodeLoose keeps JSON error bodies structured and falls back to raw text.
func decodeLoose(raw []byte) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err == nil {
		return decoded
	}
	return string(trimmed)
}

type requestIDKey struct{}

// WithRequestID propagates an inbound request id to upstream calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	if strings.TrimSpace(id) == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, strings.TrimSpace(id))
}

func requestIDOrNew(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return 10 * time.Second
	}
	return value
}
