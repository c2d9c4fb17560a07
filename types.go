package zipcodes

import (
	"net/http"
)

// Query holds the request parameters forwarded to the API. It is an open
// mapping of parameter name to scalar value (string, bool, integer or
// float); unrecognized keys are forwarded verbatim and the server decides
// how to handle them. A nil Query issues the request with no parameters.
type Query map[string]any

// Result is the {status, error, data} envelope the API returns on every
// call. Data is nil when Status is "error".
type Result struct {
	Status string     `json:"status"`
	Error  string     `json:"error"`
	Data   *ZipRecord `json:"data"`
}

// ZipRecord is the postal metadata for a single zip code. Every field is a
// string, including latitude and longitude: the client passes through
// whatever the server returns without parsing.
type ZipRecord struct {
	Zipcode   string `json:"zipcode"`
	StateAbbr string `json:"state_abbr"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	City      string `json:"city"`
	State     string `json:"state"`
}

// Middleware represents a middleware function wrapping the request transport
type Middleware func(req *http.Request, next RoundTripper) (*http.Response, error)

// RoundTripper represents the HTTP transport interface
type RoundTripper interface {
	RoundTrip(*http.Request) (*http.Response, error)
}

// RoundTripperFunc is a helper type for middleware
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Option represents a configuration option
type Option func(*Client)
