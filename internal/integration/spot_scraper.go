// Package integration handles external service interactions
package integration

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DecayAI/windwizard/internal/entities"
)

// SpotScraper imports kite spots from an HTML spot directory page.
// It expects a table where each row carries at least name, latitude and
// longitude, optionally followed by region and description columns.
type SpotScraper struct {
	sourceURL string
}

// NewSpotScraper creates a new spot directory scraper
func NewSpotScraper(url string) *SpotScraper {
	return &SpotScraper{sourceURL: url}
}

// FetchSpots retrieves and parses the spot directory page
func (ss *SpotScraper) FetchSpots() ([]entities.Spot, error) {
	if ss.sourceURL == "" {
		return nil, fmt.Errorf("no spot directory URL configured")
	}

	log.Printf("Sending HTTP request to spot directory at %s", ss.sourceURL)
	res, err := http.Get(ss.sourceURL)
	if err != nil {
		log.Printf("Error fetching spot directory: %v", err)
		return nil, fmt.Errorf("failed to fetch the spot directory: %v", err)
	}
	defer res.Body.Close()

	// Check for successful response
	if res.StatusCode != 200 {
		log.Printf("Received unexpected status code: %d %s", res.StatusCode, res.Status)
		return nil, fmt.Errorf("unexpected status code: %d %s", res.StatusCode, res.Status)
	}
	log.Printf("Successfully received HTTP response with status: %s", res.Status)

	// Parse the HTML document
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		log.Printf("Error parsing HTML: %v", err)
		return nil, fmt.Errorf("failed to parse the spot directory: %v", err)
	}

	// Some directories wrap rows in tbody, some don't
	rows := doc.Find("table tbody tr")
	if rows.Length() == 0 {
		rows = doc.Find("table tr")
	}

	var spots []entities.Spot
	processedRows := 0
	skippedRows := 0

	rows.Each(func(index int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		processedRows++

		name := strings.TrimSpace(cells.Eq(0).Text())
		latStr := strings.TrimSpace(cells.Eq(1).Text())
		lonStr := strings.TrimSpace(cells.Eq(2).Text())

		if name == "" {
			skippedRows++
			return
		}

		// Header rows carry column titles instead of coordinates
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			skippedRows++
			return
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			log.Printf("Warning: Skipping spot %s with out of range coordinates %v, %v", name, lat, lon)
			skippedRows++
			return
		}

		spot := entities.Spot{
			Name: name,
			Lat:  lat,
			Lon:  lon,
		}
		if cells.Length() >= 4 {
			spot.Region = strings.TrimSpace(cells.Eq(3).Text())
		}
		if cells.Length() >= 5 {
			spot.Description = strings.TrimSpace(cells.Eq(4).Text())
		}
		spots = append(spots, spot)
	})

	log.Printf("Parsed %d rows, extracted %d valid spots, skipped %d", processedRows, len(spots), skippedRows)

	// Sorting by name for a stable import order
	sort.Slice(spots, func(i, j int) bool {
		return spots[i].Name < spots[j].Name
	})

	return spots, nil
}
