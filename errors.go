package zipcodes

import (
	"errors"
	"fmt"
	"time"
)

// Error type discriminators carried in ClientError.Type.
const (
	// ErrorTypeConfiguration marks invalid construction parameters
	// (missing API key, broken option combinations). Never retried.
	ErrorTypeConfiguration = "ConfigurationError"

	// ErrorTypeValidation marks a query rejected by the optional
	// parameter schema before any network call.
	ErrorTypeValidation = "ValidationError"

	// ErrorTypeTransport marks DNS, connection and timeout failures;
	// no HTTP status is available.
	ErrorTypeTransport = "TransportError"

	// ErrorTypeHTTP marks a non-2xx status whose body carried no
	// API error envelope.
	ErrorTypeHTTP = "HTTPError"

	// ErrorTypeAPI marks a response whose JSON payload signals a
	// logical failure (status != "ok").
	ErrorTypeAPI = "APIError"

	// ErrorTypeFormat marks a 2xx response whose body is not valid JSON.
	ErrorTypeFormat = "FormatError"

	// ErrorTypeClosed marks an Execute call on a closed client.
	ErrorTypeClosed = "ClientClosedError"
)

// ClientError represents an error from the client. Type discriminates the
// failure cause; StatusCode and Response are populated when an HTTP
// response was received, so callers can branch on cause (401 vs 429 vs
// 5xx) without string-parsing the message.
type ClientError struct {
	Type       string
	Message    string
	StatusCode int
	Response   string
	Cause      error
	RequestID  string
	Method     string
	URL        string
	Timestamp  time.Time
	Duration   time.Duration
}

// IsRetryable determines if an error represents a transient failure that
// might succeed on retry: transport failures, 5xx server responses and
// rate limiting (429). The client itself never retries; this helper exists
// for callers implementing their own policy.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		switch clientErr.Type {
		case ErrorTypeTransport:
			return true
		case ErrorTypeHTTP, ErrorTypeAPI:
			return clientErr.StatusCode == 429 || clientErr.StatusCode >= 500
		default:
			return false
		}
	}

	return false
}

// Error implements error interface.
func (e *ClientError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var msg string
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ClientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *ClientError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*ClientError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *ClientError) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Error Type: %s\n", e.Type)
	info += fmt.Sprintf("Message: %s\n", e.Message)
	if e.RequestID != "" {
		info += fmt.Sprintf("Request ID: %s\n", e.RequestID)
	}
	if e.Method != "" {
		info += fmt.Sprintf("Method: %s\n", e.Method)
	}
	if e.URL != "" {
		info += fmt.Sprintf("URL: %s\n", e.URL)
	}
	if e.StatusCode > 0 {
		info += fmt.Sprintf("Status Code: %d\n", e.StatusCode)
	}
	if e.Response != "" {
		info += fmt.Sprintf("Response: %s\n", e.Response)
	}
	if !e.Timestamp.IsZero() {
		info += fmt.Sprintf("Timestamp: %s\n", e.Timestamp.Format(time.RFC3339))
	}
	if e.Duration > 0 {
		info += fmt.Sprintf("Duration: %v\n", e.Duration)
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}
