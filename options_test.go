package zipcodes

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client, err := New(testAPIKey, WithHTTPClient(custom))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if client.httpClient != custom {
		t.Error("Expected custom HTTP client to be used")
	}
}

func TestWithTimeout(t *testing.T) {
	client, err := New(testAPIKey, WithTimeout(7*time.Second))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if client.httpClient.Timeout != 7*time.Second {
		t.Errorf("Expected timeout=7s, got %v", client.httpClient.Timeout)
	}
}

func TestWithBaseURL(t *testing.T) {
	client, err := New(testAPIKey, WithBaseURL("https://staging.apiverve.com/v1/zipcodes"))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if client.baseURL != "https://staging.apiverve.com/v1/zipcodes" {
		t.Errorf("Expected staging base URL, got %s", client.baseURL)
	}
}

func TestWithSecureFalseKeepsCustomHost(t *testing.T) {
	client, err := New(testAPIKey, WithBaseURL("https://staging.apiverve.com/v1/zipcodes"), WithSecure(false))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if client.baseURL != "http://staging.apiverve.com/v1/zipcodes" {
		t.Errorf("Expected downgraded scheme with host preserved, got %s", client.baseURL)
	}
}

func TestWithUserAgent(t *testing.T) {
	client, err := New(testAPIKey, WithUserAgent("my-service/2.0"))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if client.userAgent != "my-service/2.0" {
		t.Errorf("Expected custom User-Agent, got %s", client.userAgent)
	}
}

func TestWithDebug(t *testing.T) {
	client, err := New(testAPIKey, WithDebug())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if !client.debug.Enabled {
		t.Error("Expected debug enabled")
	}
	if client.logger == nil {
		t.Error("Expected a logger to be installed with debug")
	}
	if !client.debug.RedactAPIKey {
		t.Error("Expected API key redaction on by default")
	}
}

func TestWithDebugConfigRequiresLogger(t *testing.T) {
	config := DefaultDebugConfig()
	config.Enabled = true

	_, err := New(testAPIKey, WithDebugConfig(config))
	if err == nil {
		t.Fatal("Expected configuration error for debug without logger")
	}
	if !strings.Contains(err.Error(), "logger must be set") {
		t.Errorf("Expected logger message, got %q", err.Error())
	}

	if _, err := New(testAPIKey, WithDebugConfig(config), WithLogger(NewSimpleLogger())); err != nil {
		t.Errorf("Expected success with logger, got %v", err)
	}
}

func TestWithDebugConfigNil(t *testing.T) {
	_, err := New(testAPIKey, WithDebugConfig(nil))
	if err == nil {
		t.Fatal("Expected configuration error for nil debug config")
	}
}

func TestWithRequestIDGenerator(t *testing.T) {
	gen := func() string { return "fixed-id" }
	client, err := New(testAPIKey, WithRequestIDGenerator(gen))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if client.debug.RequestIDGen() != "fixed-id" {
		t.Error("Expected custom request ID generator to be used")
	}
}

func TestWithMiddlewareNil(t *testing.T) {
	_, err := New(testAPIKey, WithMiddleware(nil))
	if err == nil {
		t.Fatal("Expected configuration error for nil middleware")
	}
	if !strings.Contains(err.Error(), "middleware[0] cannot be nil") {
		t.Errorf("Expected middleware message, got %q", err.Error())
	}
}

func TestWithParamValidation(t *testing.T) {
	client, err := New(testAPIKey, WithParamValidation())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if _, ok := client.rules["zip"]; !ok {
		t.Error("Expected default zip rule to be installed")
	}
}

func TestConfigurationErrorsAreAggregated(t *testing.T) {
	_, err := New("", WithBaseURL("ftp://example.com"))
	if err == nil {
		t.Fatal("Expected configuration error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "API key is required") {
		t.Errorf("Expected API key problem reported, got %q", msg)
	}
	if !strings.Contains(msg, "scheme must be http or https") {
		t.Errorf("Expected base URL problem reported, got %q", msg)
	}
}
