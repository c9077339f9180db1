// Package openmeteo provides a client for the Open-Meteo forecast API
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DecayAI/windwizard/internal/entities"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint. No API key needed.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// MaxHours is the longest hourly forecast the API serves (7 days)
const MaxHours = 168

// Client calls the Open-Meteo forecast API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client. An empty baseURL selects the public endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type forecastResponse struct {
	Hourly struct {
		Time          []string  `json:"time"`
		WindSpeed     []float64 `json:"windspeed_10m"`
		WindDirection []float64 `json:"winddirection_10m"`
	} `json:"hourly"`
}

// GetWindForecast fetches hourly wind speed and direction for a location,
// truncated to the requested number of hours
func (c *Client) GetWindForecast(ctx context.Context, lat, lon float64, hours int) (entities.WindForecast, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("hourly", "windspeed_10m,winddirection_10m")
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return entities.WindForecast{}, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.WindForecast{}, fmt.Errorf("failed to fetch forecast: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.WindForecast{}, fmt.Errorf("open-meteo returned status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entities.WindForecast{}, fmt.Errorf("failed to decode forecast: %v", err)
	}

	forecast := entities.WindForecast{
		Time:          truncate(payload.Hourly.Time, hours),
		WindSpeed:     truncate(payload.Hourly.WindSpeed, hours),
		WindDirection: truncate(payload.Hourly.WindDirection, hours),
	}
	return forecast, nil
}

func truncate[T any](values []T, n int) []T {
	if n > 0 && len(values) > n {
		return values[:n]
	}
	return values
}
