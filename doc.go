// Package zipcodes provides the Go client for the APIVerve Zip Codes
// Lookup API (https://api.apiverve.com/v1/zipcodes):
//
//   - Single-call request/response wrapper: Execute(ctx, query) -> *Result
//   - Key-based authentication (x-api-key header) configured once
//   - Typed errors discriminated by cause (transport, HTTP status,
//     API-level failure, malformed payload) so callers can branch
//     without parsing messages
//   - Structured debug logging with API-key redaction
//   - Optional Prometheus metrics and a middleware chain for
//     cross-cutting concerns (tracing, custom headers, ...)
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - Safe concurrent use of a single *Client instance
//   - Pure transport and translation: no retries, no caching, no
//     client-side reshaping of server data
//
// Typical usage:
//
//	client, err := zipcodes.New(apiKey)
//	if err != nil {
//	    // empty or malformed configuration
//	}
//	defer client.Close()
//
//	result, err := client.Execute(ctx, zipcodes.Query{"zip": "64082"})
//	if err != nil {
//	    // *ClientError carrying status code and raw response
//	}
//	fmt.Println(result.Data.City)
//
// The client never retries a failed call; classify errors with
// IsRetryable if you implement your own retry policy. Debug output is
// off by default: enable it with WithDebug or WithSimpleLogger for
// insight without noise.
package zipcodes
