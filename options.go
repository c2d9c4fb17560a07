package zipcodes

import (
	"net/http"
	"time"
)

// WithHTTPClient sets a custom HTTP client. The supplied client's
// connection pool must be safe for concurrent use.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout on the owned HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.httpClient != nil {
			c.httpClient.Timeout = d
		}
	}
}

// WithBaseURL overrides the production endpoint, e.g. to point at a
// staging deployment or a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithSecure toggles TLS for the endpoint. Secure is on by default;
// turning it off downgrades the base URL scheme to plain http.
func WithSecure(secure bool) Option {
	return func(c *Client) {
		c.secure = secure
	}
}

// WithUserAgent overrides the User-Agent header sent on every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithDebug enables debug logging with default configuration, installing
// a SimpleLogger when no logger is configured.
func WithDebug() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
		if c.logger == nil {
			c.logger = NewSimpleLogger()
		}
	}
}

// WithDebugConfig sets custom debug configuration. Pair with WithLogger
// when the configuration enables output.
func WithDebugConfig(config *DebugConfig) Option {
	return func(c *Client) {
		c.debug = config
	}
}

// WithLogger sets a custom logger for debug output
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger
func WithSimpleLogger() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
		c.logger = NewSimpleLogger()
	}
}

// WithRequestIDGenerator sets a custom function for generating request IDs
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.RequestIDGen = gen
	}
}

// WithMetrics enables Prometheus metrics collection on the default registerer
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithMiddleware adds middleware wrapping the request transport
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}

// WithParamValidation enables client-side validation of query parameters
// against the endpoint's published schema (zip: string, exactly 5
// characters). Off by default: the contract is to forward parameters
// verbatim and let the server decide.
func WithParamValidation() Option {
	return func(c *Client) {
		c.rules = DefaultValidationRules()
	}
}

// WithValidationRules enables client-side validation with a custom rule set
func WithValidationRules(rules ValidationRules) Option {
	return func(c *Client) {
		c.rules = rules
	}
}
