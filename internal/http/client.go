// Package http implements the resilient request executor shared by every
// resource client: request assembly, bearer authentication, error
// classification, bounded retries, and optional GET response caching.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/voctra-ai/easy-appointments-client/internal/constants"
	"github.com/voctra-ai/easy-appointments-client/pkg/easyappointments"
)

// Request describes one HTTP call. It is immutable once built and
// constructed fresh per call; retries re-issue it unchanged.
type Request struct {
	Method string
	Path   string // relative to the base URL; one leading slash is stripped
	Query  url.Values
	Body   interface{} // JSON-marshaled when non-nil, omitted otherwise

	// Headers are applied after the standard ones; the last write wins, so
	// a caller-supplied Authorization deliberately replaces the default.
	Headers map[string]string

	// Timeout overrides the client default for this call. It bounds each
	// attempt individually, not the whole retry sequence.
	Timeout time.Duration
}

// Response is a decoded-enough HTTP response: status, headers, raw body,
// and the server's correlation id.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	RequestID  string
}

// Client executes requests against a fixed base URL. All configuration is
// set at construction and never mutated, so one Client is safe for any
// number of concurrent calls; they share only the pooled transport.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     easyappointments.Logger
	debug      bool
	userAgent  string
	timeout    time.Duration
	policy     RetryPolicy
	sleeper    Sleeper
	cache      easyappointments.Cache
	cacheTTL   time.Duration
	closed     atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger easyappointments.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the default per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetryConfig sets the attempt budget and backoff base delay.
func WithRetryConfig(maxAttempts int, baseDelay time.Duration) Option {
	return func(c *Client) {
		c.policy = RetryPolicy{MaxAttempts: maxAttempts, BaseDelay: baseDelay}
	}
}

// WithHTTPClient replaces the pooled default transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithCache enables serving repeated GETs from a local store.
func WithCache(cache easyappointments.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache

		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithSleeper replaces the backoff sleeper. Tests inject a recording fake.
func WithSleeper(sleeper Sleeper) Option {
	return func(c *Client) {
		if sleeper != nil {
			c.sleeper = sleeper
		}
	}
}

// NewClient creates a request executor for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Transport: cleanhttp.DefaultPooledTransport(),
		},
		timeout:  constants.DefaultHTTPTimeout,
		policy:   DefaultRetryPolicy(),
		sleeper:  timerSleeper{},
		cacheTTL: constants.DefaultCacheTTL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Close releases idle pooled connections and rejects new calls. Calls
// already in flight are not canceled.
func (c *Client) Close() error {
	c.closed.Store(true)
	c.httpClient.CloseIdleConnections()

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Do executes the request, retrying transient failures with capped
// exponential backoff. On success it returns the response; on failure the
// final classified *easyappointments.Error, never wrapped in a generic
// retries-exceeded error. When the caller's context expires during a
// backoff wait, the last observed failure is returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.closed.Load() {
		return nil, easyappointments.ErrClientClosed
	}

	requestURL := c.buildURL(req.Path, req.Query)

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	if req.Method == http.MethodGet && c.cache != nil {
		if cached := c.cachedResponse(ctx, requestURL); cached != nil {
			return cached, nil
		}
	}

	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}

	state := NewRetryState()

	for {
		c.logRequest(req, requestURL, bodyBytes)

		resp, apiErr := c.attempt(ctx, req, requestURL, bodyBytes, timeout)
		if apiErr == nil {
			if req.Method == http.MethodGet && c.cache != nil {
				c.storeResponse(ctx, requestURL, resp)
			}

			return resp, nil
		}

		if !c.policy.ShouldRetry(apiErr, state) {
			return resp, apiErr
		}

		delay := c.policy.NextDelay(state)

		if c.debug && c.logger != nil {
			c.logger.Warn("retrying request", map[string]interface{}{
				"method":  req.Method,
				"url":     requestURL,
				"attempt": state.Attempt,
				"delay":   delay.String(),
				"error":   apiErr.Error(),
			})
		}

		err := c.sleeper.Sleep(ctx, delay)
		if err != nil {
			// Caller canceled between attempts; surface the last failure.
			return resp, apiErr
		}

		state.Attempt++
		state.Elapsed += delay
	}
}

// attempt sends the request once and resolves it to either a success
// response or a classified error.
func (c *Client) attempt(ctx context.Context, req *Request, requestURL string, bodyBytes []byte, timeout time.Duration) (*Response, *easyappointments.Error) {
	attemptCtx := ctx

	if timeout > 0 {
		var cancel context.CancelFunc

		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, easyappointments.NewTransportError(req.Method, requestURL, err)
	}

	c.setHeaders(httpReq, req.Headers)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, easyappointments.NewTransportError(req.Method, requestURL, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, constants.MaxResponseBody))
	if err != nil {
		return nil, easyappointments.NewTransportError(req.Method, requestURL, err)
	}

	requestID := httpResp.Header.Get(constants.RequestIDHeader)

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		RequestID:  requestID,
	}

	c.logResponse(req, requestURL, resp)

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return c.resolveSuccess(resp)
	}

	return resp, easyappointments.Classify(httpResp.StatusCode, respBody, requestID)
}

// resolveSuccess validates a 2xx response. 204 yields an empty payload; any
// other success status must carry a JSON body, otherwise the server broke
// protocol and the call fails with an Unknown-kind error.
func (c *Client) resolveSuccess(resp *Response) (*Response, *easyappointments.Error) {
	if resp.StatusCode == http.StatusNoContent {
		resp.Body = nil

		return resp, nil
	}

	if !json.Valid(resp.Body) {
		return resp, &easyappointments.Error{
			Kind:       easyappointments.ErrorKindUnknown,
			StatusCode: resp.StatusCode,
			Message:    "invalid JSON response: " + excerpt(resp.Body),
			Body:       resp.Body,
			RequestID:  resp.RequestID,
		}
	}

	return resp, nil
}

func (c *Client) setHeaders(httpReq *http.Request, extra map[string]string) {
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for name, value := range extra {
		httpReq.Header.Set(name, value)
	}
}

// buildURL joins the base URL with the path, stripping a single leading
// slash from the path first.
func (c *Client) buildURL(path string, query url.Values) string {
	path = strings.TrimPrefix(path, "/")

	requestURL := c.baseURL + "/" + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	return requestURL
}

func (c *Client) cachedResponse(ctx context.Context, requestURL string) *Response {
	entry, err := c.cache.Get(ctx, requestURL)
	if err != nil || entry == nil {
		return nil
	}

	return &Response{
		StatusCode: http.StatusOK,
		Body:       entry.Data,
	}
}

func (c *Client) storeResponse(ctx context.Context, requestURL string, resp *Response) {
	if resp.StatusCode != http.StatusOK || len(resp.Body) == 0 {
		return
	}

	entry := &easyappointments.CacheEntry{
		Data:      resp.Body,
		ExpiresAt: time.Now().Add(c.cacheTTL),
		ETag:      resp.Headers.Get("ETag"),
	}

	err := c.cache.Set(ctx, requestURL, entry)
	if err != nil && c.debug && c.logger != nil {
		c.logger.Warn("caching response failed", map[string]interface{}{
			"url":   requestURL,
			"error": err.Error(),
		})
	}
}

// logRequest emits one line per attempt, so a retried request is logged on
// every try with its body redacted every time.
func (c *Client) logRequest(req *Request, requestURL string, bodyBytes []byte) {
	if !c.debug || c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method": req.Method,
		"url":    requestURL,
	}

	if len(req.Query) > 0 {
		fields["params"] = req.Query.Encode()
	}

	if bodyBytes != nil {
		fields["body"] = redactBody(bodyBytes)
	}

	c.logger.Info("HTTP Request", fields)
}

func (c *Client) logResponse(req *Request, requestURL string, resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Info("HTTP Response", map[string]interface{}{
		"method":      req.Method,
		"url":         requestURL,
		"status_code": resp.StatusCode,
	})
}

func excerpt(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= constants.BodyExcerptLength {
		return text
	}

	return text[:constants.BodyExcerptLength] + "..."
}
