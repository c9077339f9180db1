package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const spotDirectoryHTML = `<!DOCTYPE html>
<html><body>
<h1>Kite spots</h1>
<table>
<tbody>
<tr><th>Name</th><th>Lat</th><th>Lon</th><th>Region</th><th>Notes</th></tr>
<tr><td>Name</td><td>Latitude</td><td>Longitude</td><td>Region</td><td>Notes</td></tr>
<tr><td>Amager Strandpark</td><td>55.658</td><td>12.635</td><td>Copenhagen</td><td>Flat water lagoon</td></tr>
<tr><td>Skanör</td><td>55.416</td><td>12.828</td><td>Skåne</td><td>Sandbanks</td></tr>
<tr><td>Lynæs</td><td>55.942</td><td>11.847</td></tr>
<tr><td>Broken Spot</td><td>999</td><td>12.0</td><td>Nowhere</td></tr>
<tr><td></td><td>55.0</td><td>12.0</td></tr>
</tbody>
</table>
</body></html>`

func TestFetchSpots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(spotDirectoryHTML))
	}))
	defer server.Close()

	scraper := NewSpotScraper(server.URL)
	spots, err := scraper.FetchSpots()
	if err != nil {
		t.Fatalf("FetchSpots failed: %v", err)
	}

	// Header row, out of range row and nameless row are skipped
	if len(spots) != 3 {
		t.Fatalf("Expected 3 spots, got %d: %+v", len(spots), spots)
	}

	// Sorted by name
	if spots[0].Name != "Amager Strandpark" {
		t.Errorf("Expected Amager Strandpark first, got %s", spots[0].Name)
	}
	if spots[0].Lat != 55.658 || spots[0].Lon != 12.635 {
		t.Errorf("Unexpected coordinates for %s: %v, %v", spots[0].Name, spots[0].Lat, spots[0].Lon)
	}
	if spots[0].Region != "Copenhagen" || spots[0].Description != "Flat water lagoon" {
		t.Errorf("Expected region and description parsed, got %+v", spots[0])
	}

	// Rows with only three columns still import
	if spots[1].Name != "Lynæs" {
		t.Errorf("Expected Lynæs second, got %s", spots[1].Name)
	}
	if spots[1].Region != "" {
		t.Errorf("Expected empty region for three column row, got %q", spots[1].Region)
	}
}

func TestFetchSpotsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	scraper := NewSpotScraper(server.URL)
	if _, err := scraper.FetchSpots(); err == nil {
		t.Error("Expected error for status 503, got nil")
	}
}

func TestFetchSpotsRequiresURL(t *testing.T) {
	scraper := NewSpotScraper("")
	if _, err := scraper.FetchSpots(); err == nil {
		t.Error("Expected error for missing URL, got nil")
	}
}

func TestFetchSpotsWithoutTbody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<table><tr><td>Råå</td><td>56.001</td><td>12.738</td></tr></table>`))
	}))
	defer server.Close()

	scraper := NewSpotScraper(server.URL)
	spots, err := scraper.FetchSpots()
	if err != nil {
		t.Fatalf("FetchSpots failed: %v", err)
	}
	if len(spots) != 1 || spots[0].Name != "Råå" {
		t.Errorf("Expected a single spot from a bare table, got %+v", spots)
	}
}
