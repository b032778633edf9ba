package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/tiltify-client/internal/constants"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"github.com/hashicorp/go-retryablehttp"
)

// Static errors for err113 compliance.
var (
	ErrInvalidJSON = errors.New("response body is not JSON")
)

// Logger is the logging interface used by the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Doer performs a single request. *Client implements it.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request describes an outgoing request. Path is appended to the client's
// base URL unless it is already absolute. RawQuery is sent verbatim so the
// caller controls parameter order and encoding.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Headers  map[string]string
}

// Response is a JSON response of any status.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       json.RawMessage
}

// Client fetches JSON documents over HTTP.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
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

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables transport retries for connection errors, 429 and
// 5xx responses.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithHTTPTimeout sets the timeout of the underlying http.Client.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client. Transport retries are off until
// WithRetryConfig is applied; the last response is always returned to the
// caller, whatever its status.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  constants.UserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs an HTTP request. A network failure, or a body that is not JSON,
// is returned as *tiltify.TransportError. Any JSON body is returned with its
// status; interpreting error envelopes is up to the caller.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target := c.resolve(req)
	logged := redactURL(target)

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, nil)
	if err != nil {
		return nil, &tiltify.TransportError{Method: req.Method, URL: logged, Err: err}
	}

	httpReq.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    logged,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &tiltify.TransportError{Method: req.Method, URL: logged, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &tiltify.TransportError{
			Method:     req.Method,
			URL:        logged,
			StatusCode: httpResp.StatusCode,
			Err:        fmt.Errorf("failed to read response body: %w", err),
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"url":      logged,
			"duration": time.Since(start).String(),
			"size":     len(body),
		})
	}

	if !json.Valid(body) {
		return nil, &tiltify.TransportError{
			Method:     req.Method,
			URL:        logged,
			StatusCode: httpResp.StatusCode,
			Err:        ErrInvalidJSON,
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// Get performs a GET request. target may carry a query string.
func (c *Client) Get(ctx context.Context, target string, headers map[string]string) (*Response, error) {
	path, rawQuery, _ := strings.Cut(target, "?")

	return c.Do(ctx, &Request{
		Method:   http.MethodGet,
		Path:     path,
		RawQuery: rawQuery,
		Headers:  headers,
	})
}

// Post performs a POST request without a body. target may carry a query string.
func (c *Client) Post(ctx context.Context, target string, headers map[string]string) (*Response, error) {
	path, rawQuery, _ := strings.Cut(target, "?")

	return c.Do(ctx, &Request{
		Method:   http.MethodPost,
		Path:     path,
		RawQuery: rawQuery,
		Headers:  headers,
	})
}

func (c *Client) resolve(req *Request) string {
	target := req.Path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + "/" + strings.TrimPrefix(target, "/")
	}

	if req.RawQuery != "" {
		target += "?" + req.RawQuery
	}

	return target
}

// redactURL masks the client secret carried by token requests.
func redactURL(target string) string {
	parsed, err := url.Parse(target)
	if err != nil || parsed.RawQuery == "" {
		return target
	}

	query := parsed.Query()
	if !query.Has("client_secret") {
		return target
	}

	query.Set("client_secret", constants.MaskedSecret)
	parsed.RawQuery = query.Encode()

	return parsed.String()
}
