package zipcodes

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResultDecodeSuccessEnvelope(t *testing.T) {
	var result Result
	if err := json.Unmarshal([]byte(successBody), &result); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if result.Status != "ok" {
		t.Errorf("Expected status=ok, got %s", result.Status)
	}
	if result.Error != "" {
		t.Errorf("Expected empty error for null, got %q", result.Error)
	}

	want := &ZipRecord{
		Zipcode:   "64082",
		StateAbbr: "MO",
		Latitude:  "38.850243",
		Longitude: "-94.39570",
		City:      "Lees Summit",
		State:     "Missouri",
	}
	if diff := cmp.Diff(want, result.Data); diff != "" {
		t.Errorf("ZipRecord mismatch (-want +got):\n%s", diff)
	}
}

func TestResultDecodeErrorEnvelope(t *testing.T) {
	var result Result
	if err := json.Unmarshal([]byte(invalidKeyBody), &result); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if result.Status != "error" {
		t.Errorf("Expected status=error, got %s", result.Status)
	}
	if result.Error != "Invalid API Key" {
		t.Errorf("Expected error message, got %q", result.Error)
	}
	if result.Data != nil {
		t.Errorf("Expected nil data, got %+v", result.Data)
	}
}

func TestZipRecordFieldsStayStrings(t *testing.T) {
	// Latitude and longitude are passed through as strings, never parsed.
	raw := `{"zipcode":"64082","state_abbr":"MO","latitude":"38.850243","longitude":"-94.39570","city":"Lees Summit","state":"Missouri"}`

	var record ZipRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if record.Latitude != "38.850243" || record.Longitude != "-94.39570" {
		t.Errorf("Expected coordinates preserved verbatim, got %s/%s", record.Latitude, record.Longitude)
	}
}
