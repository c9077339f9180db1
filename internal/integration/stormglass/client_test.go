package stormglass

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DecayAI/windwizard/internal/entities"
)

const sampleSeaLevel = `{
	"data": [
		{"time": "2025-06-07T00:00:00+00:00", "sg": 0.42},
		{"time": "2025-06-07T01:00:00+00:00", "sg": 0.61},
		{"time": "2025-06-07T02:00:00+00:00", "sg": 0.75},
		{"time": "2025-06-07T03:00:00+00:00", "sg": 0.68}
	],
	"meta": {"cost": 1}
}`

const sampleExtremes = `{
	"data": [
		{"time": "2025-06-07T03:12:00+00:00", "height": 0.82, "type": "high"},
		{"time": "2025-06-07T09:30:00+00:00", "height": -0.79, "type": "low"}
	],
	"meta": {"cost": 1}
}`

func TestGetSeaLevel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sea-level/point" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("Expected raw API key in Authorization header, got %q", r.Header.Get("Authorization"))
		}
		q := r.URL.Query()
		if q.Get("lat") != "55.66" || q.Get("lng") != "12.56" {
			t.Errorf("Unexpected coordinates lat=%s lng=%s", q.Get("lat"), q.Get("lng"))
		}
		if q.Get("start") == "" || q.Get("end") == "" {
			t.Error("Expected start and end parameters")
		}
		w.Write([]byte(sampleSeaLevel))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)
	series, err := client.GetSeaLevel(context.Background(), 55.66, 12.56, 3)
	if err != nil {
		t.Fatalf("GetSeaLevel failed: %v", err)
	}

	if series.Source != entities.TideSourceStormglass {
		t.Errorf("Expected stormglass source, got %s", series.Source)
	}
	if len(series.SeaLevel) != 3 {
		t.Fatalf("Expected series truncated to 3 hours, got %d", len(series.SeaLevel))
	}
	if series.SeaLevel[0] != 0.42 {
		t.Errorf("Expected first level 0.42, got %v", series.SeaLevel[0])
	}
	if series.Time[2] != "2025-06-07T02:00:00+00:00" {
		t.Errorf("Expected third timestamp unchanged, got %s", series.Time[2])
	}
}

func TestGetSeaLevelPaymentRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":{"key":"API quota exceeded"}}`, http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)
	_, err := client.GetSeaLevel(context.Background(), 55.66, 12.56, 6)
	if !errors.Is(err, ErrPaymentRequired) {
		t.Errorf("Expected ErrPaymentRequired for status 402, got %v", err)
	}
}

func TestGetSeaLevelServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)
	_, err := client.GetSeaLevel(context.Background(), 55.66, 12.56, 6)
	if err == nil {
		t.Fatal("Expected error for status 500, got nil")
	}
	if errors.Is(err, ErrPaymentRequired) {
		t.Error("Status 500 must not map to ErrPaymentRequired")
	}
}

func TestGetExtremes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extremes" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		// Extremes are requested with date precision, not hour precision
		if len(q.Get("start")) != len("2006-01-02") {
			t.Errorf("Expected date formatted start, got %s", q.Get("start"))
		}
		w.Write([]byte(sampleExtremes))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, 5*time.Second)
	extremes, err := client.GetExtremes(context.Background(), 55.66, 12.56, 2)
	if err != nil {
		t.Fatalf("GetExtremes failed: %v", err)
	}

	if len(extremes) != 2 {
		t.Fatalf("Expected 2 extremes, got %d", len(extremes))
	}
	if extremes[0].Type != entities.TideHigh || extremes[0].Height != 0.82 {
		t.Errorf("Unexpected first extreme %+v", extremes[0])
	}
	if extremes[1].Type != entities.TideLow {
		t.Errorf("Expected second extreme to be low water, got %+v", extremes[1])
	}
}

func TestConfigured(t *testing.T) {
	if NewClient("", "", time.Second).Configured() {
		t.Error("Expected client without key to be unconfigured")
	}
	if !NewClient("key", "", time.Second).Configured() {
		t.Error("Expected client with key to be configured")
	}
}
