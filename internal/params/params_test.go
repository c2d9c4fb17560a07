package params

import (
	"net"
	"testing"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "64082", "64082"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"negative int", int64(-7), "-7"},
		{"uint", uint(9), "9"},
		{"float", 2.5, "2.5"},
		{"float trailing", float32(1.0), "1"},
		{"stringer", net.IPv4(127, 0, 0, 1), "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(tt.value)
			if err != nil {
				t.Fatalf("FormatValue(%v) returned error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatValueRejectsComposites(t *testing.T) {
	for _, value := range []any{nil, []string{"a"}, map[string]string{}, struct{}{}} {
		if _, err := FormatValue(value); err == nil {
			t.Errorf("FormatValue(%#v) expected error, got nil", value)
		}
	}
}

func TestEncode(t *testing.T) {
	values, err := Encode(map[string]any{"zip": "64082", "limit": 5, "extended": true})
	if err != nil {
		t.Fatalf("Encode() returned error: %v", err)
	}

	if got := values.Get("zip"); got != "64082" {
		t.Errorf("Expected zip=64082, got %s", got)
	}
	if got := values.Get("limit"); got != "5" {
		t.Errorf("Expected limit=5, got %s", got)
	}
	if got := values.Get("extended"); got != "true" {
		t.Errorf("Expected extended=true, got %s", got)
	}

	// Encode sorts keys, so the wire form is deterministic.
	if got := values.Encode(); got != "extended=true&limit=5&zip=64082" {
		t.Errorf("Unexpected encoded query: %s", got)
	}
}

func TestEncodeRejectsCompositeValues(t *testing.T) {
	if _, err := Encode(map[string]any{"zip": []int{1}}); err == nil {
		t.Error("Expected error for composite value, got nil")
	}
}

func TestEncodeNil(t *testing.T) {
	values, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) returned error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("Expected empty values, got %v", values)
	}
}
