package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleForecast = `{
	"latitude": 55.66,
	"longitude": 12.56,
	"hourly_units": {"windspeed_10m": "km/h"},
	"hourly": {
		"time": ["2025-06-07T00:00", "2025-06-07T01:00", "2025-06-07T02:00", "2025-06-07T03:00"],
		"windspeed_10m": [12.5, 14.0, 15.5, 13.0],
		"winddirection_10m": [270, 275, 280, 265]
	}
}`

func TestGetWindForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") != "55.66" {
			t.Errorf("Expected latitude 55.66, got %s", q.Get("latitude"))
		}
		if q.Get("longitude") != "12.56" {
			t.Errorf("Expected longitude 12.56, got %s", q.Get("longitude"))
		}
		if q.Get("hourly") != "windspeed_10m,winddirection_10m" {
			t.Errorf("Unexpected hourly fields: %s", q.Get("hourly"))
		}
		if q.Get("timezone") != "auto" {
			t.Errorf("Expected timezone auto, got %s", q.Get("timezone"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleForecast))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	forecast, err := client.GetWindForecast(context.Background(), 55.66, 12.56, 3)
	if err != nil {
		t.Fatalf("GetWindForecast failed: %v", err)
	}

	if forecast.Hours() != 3 {
		t.Errorf("Expected forecast truncated to 3 hours, got %d", forecast.Hours())
	}
	if len(forecast.WindSpeed) != 3 || len(forecast.WindDirection) != 3 {
		t.Errorf("Expected 3 wind samples, got %d speeds and %d directions",
			len(forecast.WindSpeed), len(forecast.WindDirection))
	}
	if forecast.WindSpeed[0] != 12.5 {
		t.Errorf("Expected first wind speed 12.5, got %v", forecast.WindSpeed[0])
	}
	if forecast.WindDirection[2] != 280 {
		t.Errorf("Expected third direction 280, got %v", forecast.WindDirection[2])
	}
	if forecast.Time[0] != "2025-06-07T00:00" {
		t.Errorf("Expected first timestamp unchanged, got %s", forecast.Time[0])
	}
}

func TestGetWindForecastKeepsShortResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleForecast))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	forecast, err := client.GetWindForecast(context.Background(), 55.66, 12.56, 24)
	if err != nil {
		t.Fatalf("GetWindForecast failed: %v", err)
	}
	// Upstream only had 4 hours, asking for more must not pad or fail
	if forecast.Hours() != 4 {
		t.Errorf("Expected all 4 available hours, got %d", forecast.Hours())
	}
}

func TestGetWindForecastServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.GetWindForecast(context.Background(), 55.66, 12.56, 6); err == nil {
		t.Error("Expected error for status 500, got nil")
	}
}

func TestGetWindForecastBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.GetWindForecast(context.Background(), 55.66, 12.56, 6); err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}

func TestGetWindForecastContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(sampleForecast))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.GetWindForecast(ctx, 55.66, 12.56, 6); err == nil {
		t.Error("Expected error for cancelled context, got nil")
	}
}
