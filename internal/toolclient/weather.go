package toolclient

import (
	"context"
	"net/url"
	"time"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/usecases"
)

// WeatherClient calls the weather tool server
type WeatherClient struct {
	httpClient
}

// NewWeatherClient creates a client for the weather tool at baseURL
func NewWeatherClient(baseURL string, timeout time.Duration) *WeatherClient {
	return &WeatherClient{httpClient: newHTTPClient(baseURL, timeout)}
}

// GetWindForecast fetches the hourly wind forecast for a location
func (c *WeatherClient) GetWindForecast(ctx context.Context, lat, lon float64, hours int) (entities.WindForecast, error) {
	query := url.Values{}
	query.Set("lat", formatFloat(lat))
	query.Set("lon", formatFloat(lon))
	query.Set("hours", formatInt(hours))

	var forecast entities.WindForecast
	if err := c.getJSON(ctx, "/forecast", query, &forecast); err != nil {
		return entities.WindForecast{}, err
	}
	return forecast, nil
}

var _ usecases.WindForecaster = (*WeatherClient)(nil)
