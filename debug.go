package zipcodes

import (
	"fmt"
	"sync/atomic"
)

// DebugConfig controls the diagnostic output emitted around each request.
// Logging is observational only and never affects control flow or the
// error returned to the caller.
type DebugConfig struct {
	// Enabled turns debug output on. A Logger must be configured when
	// debug is enabled; WithDebug installs a SimpleLogger if none is set.
	Enabled bool
	// LogRequests logs method, URL and headers before each request.
	LogRequests bool
	// LogResponses logs the status code and raw response body.
	LogResponses bool
	// LogErrors logs failed calls with their diagnostic context.
	LogErrors bool
	// RedactAPIKey replaces the x-api-key header value in logged
	// headers. On by default; turn off only in controlled environments.
	RedactAPIKey bool
	// RequestIDGen generates the correlation ID attached to log lines.
	RequestIDGen func() string
}

// DefaultDebugConfig returns the debug configuration used by WithDebug:
// everything logged, API key redacted.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		Enabled:      false,
		LogRequests:  true,
		LogResponses: true,
		LogErrors:    true,
		RedactAPIKey: true,
		RequestIDGen: defaultRequestID,
	}
}

var requestCounter uint64

func defaultRequestID() string {
	return fmt.Sprintf("req-%d", atomic.AddUint64(&requestCounter, 1))
}
