// Package stormglass provides a client for the Stormglass tide API
package stormglass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DecayAI/windwizard/internal/entities"
)

// DefaultBaseURL is the Stormglass v2 tide endpoint
const DefaultBaseURL = "https://api.stormglass.io/v2/tide"

// Request limits accepted by the tide tool
const (
	MaxHours = 240
	MaxDays  = 10
)

// ErrPaymentRequired is returned when Stormglass answers 402, which the free
// tier does once its daily quota runs out. Callers fall back to the
// synthetic tide model.
var ErrPaymentRequired = errors.New("stormglass quota exhausted")

// Client calls the Stormglass tide API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client. An empty baseURL selects the public endpoint;
// an empty apiKey leaves the client unconfigured.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type seaLevelResponse struct {
	Data []struct {
		Time string  `json:"time"`
		Sg   float64 `json:"sg"`
	} `json:"data"`
}

type extremesResponse struct {
	Data []entities.TideExtreme `json:"data"`
}

// GetSeaLevel fetches hourly sea level predictions starting now, truncated
// to the requested number of hours
func (c *Client) GetSeaLevel(ctx context.Context, lat, lon float64, hours int) (entities.TideSeries, error) {
	start := time.Now().UTC()
	end := start.Add(time.Duration(hours) * time.Hour)

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("start", start.Format("2006-01-02T15"))
	params.Set("end", end.Format("2006-01-02T15"))

	var payload seaLevelResponse
	if err := c.get(ctx, "/sea-level/point", params, &payload); err != nil {
		return entities.TideSeries{}, err
	}

	series := entities.TideSeries{
		Time:     make([]string, 0, hours),
		SeaLevel: make([]float64, 0, hours),
		Source:   entities.TideSourceStormglass,
	}
	for i, row := range payload.Data {
		if i == hours {
			break
		}
		series.Time = append(series.Time, row.Time)
		series.SeaLevel = append(series.SeaLevel, row.Sg)
	}
	return series, nil
}

// GetExtremes fetches predicted high and low water events for the coming days
func (c *Client) GetExtremes(ctx context.Context, lat, lon float64, days int) ([]entities.TideExtreme, error) {
	start := time.Now().UTC()
	end := start.AddDate(0, 0, days)

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("start", start.Format("2006-01-02"))
	params.Set("end", end.Format("2006-01-02"))

	var payload extremesResponse
	if err := c.get(ctx, "/extremes", params, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	// Stormglass takes the raw key, no Bearer prefix
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch tide data: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return ErrPaymentRequired
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stormglass returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode tide data: %v", err)
	}
	return nil
}
