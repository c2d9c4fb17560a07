package zipcodes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/apiverve/zipcodes-api/internal/params"
)

// DefaultBaseURL is the production endpoint of the Zip Codes Lookup API.
const DefaultBaseURL = "https://api.apiverve.com/v1/zipcodes"

const (
	headerAPIKey   = "x-api-key"
	headerAuthMode = "auth-mode"
	authModeValue  = "go-package"
)

// Client wraps one configured HTTP session around the Zip Codes Lookup
// endpoint: it builds authenticated requests, issues a single round trip
// per Execute call and maps every outcome to a *ClientError. It is safe
// for concurrent use; concurrent Execute calls share only the underlying
// connection pool.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	secure     bool
	userAgent  string
	middleware []Middleware
	rules      ValidationRules
	metrics    *MetricsCollector
	debug      *DebugConfig
	logger     Logger

	mu     sync.Mutex
	closed bool
}

// New constructs a Client for the given API key using the provided
// functional options. Construction performs no network I/O: it only
// validates the configuration and prepares the session. A missing or
// blank API key fails with a configuration *ClientError.
func New(apiKey string, options ...Option) (*Client, error) {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:    apiKey,
		baseURL:   DefaultBaseURL,
		secure:    true,
		userAgent: "apiverve-zipcodes-go/" + Version,
		debug:     DefaultDebugConfig(),
	}

	for _, option := range options {
		option(client)
	}

	if err := client.validateConfiguration(); err != nil {
		return nil, err
	}

	if !client.secure {
		client.baseURL = downgradeScheme(client.baseURL)
	}

	return client, nil
}

// Execute issues a single GET request with the given query parameters and
// returns the decoded {status, error, data} envelope. The query is
// forwarded verbatim; no keys are validated unless WithParamValidation is
// configured. Failed calls return a *ClientError and are never retried.
func (c *Client) Execute(ctx context.Context, query Query) (*Result, error) {
	start := time.Now()

	var requestID string
	if c.debug.Enabled && c.debug.RequestIDGen != nil {
		requestID = c.debug.RequestIDGen()
	}

	if err := c.checkOpen(requestID); err != nil {
		return nil, err
	}

	if c.rules != nil {
		if err := c.rules.validate(query); err != nil {
			return nil, err
		}
	}

	values, err := params.Encode(query)
	if err != nil {
		return nil, &ClientError{
			Type:      ErrorTypeValidation,
			Message:   "query encoding failed",
			Cause:     err,
			RequestID: requestID,
			Timestamp: time.Now(),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, &ClientError{
			Type:      ErrorTypeConfiguration,
			Message:   "building request failed",
			Cause:     err,
			RequestID: requestID,
			Timestamp: time.Now(),
		}
	}
	req.URL.RawQuery = values.Encode()
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAuthMode, authModeValue)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	endpoint := endpointFromRequest(req)

	if c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Starting request",
			"requestID", requestID,
			"method", req.Method,
			"url", req.URL.String(),
			"headers", c.redactedHeaders(req.Header))
	}

	if c.metrics != nil {
		c.metrics.RecordRequestStart(req.Method, endpoint)
	}

	resp, err := c.executeMiddleware(req)

	if c.metrics != nil {
		c.metrics.RecordRequestEnd(req.Method, endpoint)
	}

	if err != nil {
		return nil, c.fail(&ClientError{
			Type:      ErrorTypeTransport,
			Message:   "request failed: " + err.Error(),
			Cause:     err,
			RequestID: requestID,
			Method:    req.Method,
			URL:       req.URL.String(),
			Timestamp: time.Now(),
			Duration:  time.Since(start),
		}, req.Method, endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(&ClientError{
			Type:       ErrorTypeTransport,
			Message:    "reading response failed: " + err.Error(),
			Cause:      err,
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Method:     req.Method,
			URL:        req.URL.String(),
			Timestamp:  time.Now(),
			Duration:   time.Since(start),
		}, req.Method, endpoint)
	}

	duration := time.Since(start)
	if c.metrics != nil {
		c.metrics.RecordRequest(req.Method, endpoint, resp.StatusCode, duration)
	}

	if c.debug.Enabled && c.debug.LogResponses && c.logger != nil {
		c.logger.Debug("Received response",
			"requestID", requestID,
			"statusCode", resp.StatusCode,
			"body", string(body))
	}

	var result Result
	jsonErr := json.Unmarshal(body, &result)

	// The API reports logical failures in the envelope even on non-2xx
	// statuses; the envelope message wins over the bare status text.
	if jsonErr == nil && result.Status == "error" {
		message := result.Error
		if message == "" {
			message = "unknown API error"
		}
		return nil, c.fail(&ClientError{
			Type:       ErrorTypeAPI,
			Message:    message,
			StatusCode: resp.StatusCode,
			Response:   string(body),
			RequestID:  requestID,
			Method:     req.Method,
			URL:        req.URL.String(),
			Timestamp:  time.Now(),
			Duration:   duration,
		}, req.Method, endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := http.StatusText(resp.StatusCode)
		if message == "" {
			message = fmt.Sprintf("HTTP %d error", resp.StatusCode)
		}
		return nil, c.fail(&ClientError{
			Type:       ErrorTypeHTTP,
			Message:    message,
			StatusCode: resp.StatusCode,
			Response:   string(body),
			RequestID:  requestID,
			Method:     req.Method,
			URL:        req.URL.String(),
			Timestamp:  time.Now(),
			Duration:   duration,
		}, req.Method, endpoint)
	}

	if jsonErr != nil {
		return nil, c.fail(&ClientError{
			Type:       ErrorTypeFormat,
			Message:    "invalid response format",
			Cause:      jsonErr,
			StatusCode: resp.StatusCode,
			Response:   string(body),
			RequestID:  requestID,
			Method:     req.Method,
			URL:        req.URL.String(),
			Timestamp:  time.Now(),
			Duration:   duration,
		}, req.Method, endpoint)
	}

	if c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Request successful", "requestID", requestID, "duration", duration)
	}

	return &result, nil
}

// Close releases the underlying connection pool. It is idempotent;
// subsequent calls are no-ops. Execute fails fast after Close.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.httpClient.CloseIdleConnections()

	if c.debug.Enabled && c.logger != nil {
		c.logger.Debug("Client closed")
	}
	return nil
}

func (c *Client) checkOpen(requestID string) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if !closed {
		return nil
	}
	err := &ClientError{
		Type:      ErrorTypeClosed,
		Message:   "client is closed",
		RequestID: requestID,
		Timestamp: time.Now(),
	}
	if c.debug.Enabled && c.debug.LogErrors && c.logger != nil {
		c.logger.Error("Execute on closed client", "requestID", requestID)
	}
	return err
}

// fail records the error in metrics and debug output, then returns it
// unchanged. Logging never alters the error value.
func (c *Client) fail(err *ClientError, method, endpoint string) *ClientError {
	if c.metrics != nil {
		c.metrics.RecordError(err.Type, method, endpoint)
	}
	if c.debug.Enabled && c.debug.LogErrors && c.logger != nil {
		c.logger.Error("Request failed",
			"requestID", err.RequestID,
			"errorType", err.Type,
			"message", err.Message,
			"statusCode", err.StatusCode)
	}
	return err
}

func (c *Client) executeMiddleware(req *http.Request) (*http.Response, error) {
	if len(c.middleware) == 0 {
		return c.httpClient.Do(req)
	}

	current := RoundTripperFunc(c.httpClient.Do)

	for i := len(c.middleware) - 1; i >= 0; i-- {
		middleware := c.middleware[i]
		next := current
		current = RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return middleware(r, next)
		})
	}

	return current.RoundTrip(req)
}

func (c *Client) redactedHeaders(h http.Header) string {
	var b strings.Builder
	for name, vals := range h {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		value := strings.Join(vals, ",")
		if c.debug.RedactAPIKey && strings.EqualFold(name, headerAPIKey) {
			value = "<redacted>"
		}
		fmt.Fprintf(&b, "%s:%s", name, value)
	}
	return b.String()
}

// validateConfiguration validates the client configuration and returns a
// configuration *ClientError listing every problem found.
func (c *Client) validateConfiguration() error {
	var errors []string

	errors = append(errors, c.validateAPIKey()...)
	errors = append(errors, c.validateBaseURL()...)
	errors = append(errors, c.validateHTTPClientConfig()...)
	errors = append(errors, c.validateDebugConfig()...)
	errors = append(errors, c.validateMiddlewareConfig()...)

	if len(errors) > 0 {
		return &ClientError{
			Type:      ErrorTypeConfiguration,
			Message:   "configuration validation failed: " + strings.Join(errors, "; "),
			Timestamp: time.Now(),
		}
	}

	return nil
}

func (c *Client) validateAPIKey() []string {
	if strings.TrimSpace(c.apiKey) == "" {
		return []string{"API key is required, get your API key at: https://apiverve.com"}
	}
	return nil
}

func (c *Client) validateBaseURL() []string {
	var errors []string

	u, err := url.Parse(c.baseURL)
	if err != nil {
		errors = append(errors, fmt.Sprintf("base URL is not parseable: %v", err))
		return errors
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, "base URL scheme must be http or https")
	}
	if u.Host == "" {
		errors = append(errors, "base URL host must not be empty")
	}

	return errors
}

func (c *Client) validateHTTPClientConfig() []string {
	if c.httpClient == nil {
		return []string{"HTTP client cannot be nil"}
	}
	if c.httpClient.Timeout < 0 {
		return []string{"HTTP client timeout must be non-negative"}
	}
	return nil
}

func (c *Client) validateDebugConfig() []string {
	var errors []string

	if c.debug == nil {
		errors = append(errors, "debug configuration cannot be nil")
		return errors
	}
	if c.debug.Enabled {
		if c.debug.RequestIDGen == nil {
			errors = append(errors, "debug RequestIDGen must be set when debug is enabled")
		}
		if c.logger == nil {
			errors = append(errors, "logger must be set when debug is enabled")
		}
	}

	return errors
}

func (c *Client) validateMiddlewareConfig() []string {
	var errors []string

	for i, middleware := range c.middleware {
		if middleware == nil {
			errors = append(errors, fmt.Sprintf("middleware[%d] cannot be nil", i))
		}
	}

	return errors
}

func downgradeScheme(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	if u.Scheme == "https" {
		u.Scheme = "http"
	}
	return u.String()
}

func endpointFromRequest(req *http.Request) string {
	if req.URL == nil {
		return "unknown"
	}

	host := req.URL.Host
	path := req.URL.Path

	var builder strings.Builder
	builder.WriteString(host)

	if path != "" && path != "/" {
		builder.WriteString(path)
	} else {
		builder.WriteByte('/')
	}

	return builder.String()
}
