package toolclient

import (
	"context"
	"net/url"
	"time"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/usecases"
)

// TideClient calls the tide tool server
type TideClient struct {
	httpClient
}

// NewTideClient creates a client for the tide tool at baseURL
func NewTideClient(baseURL string, timeout time.Duration) *TideClient {
	return &TideClient{httpClient: newHTTPClient(baseURL, timeout)}
}

// GetSeaLevel fetches the hourly sea level series for a location
func (c *TideClient) GetSeaLevel(ctx context.Context, lat, lon float64, hours int) (entities.TideSeries, error) {
	query := url.Values{}
	query.Set("lat", formatFloat(lat))
	query.Set("lon", formatFloat(lon))
	query.Set("hours", formatInt(hours))

	var series entities.TideSeries
	if err := c.getJSON(ctx, "/sea-level", query, &series); err != nil {
		return entities.TideSeries{}, err
	}
	return series, nil
}

// GetExtremes fetches upcoming high and low water events for a location
func (c *TideClient) GetExtremes(ctx context.Context, lat, lon float64, days int) ([]entities.TideExtreme, error) {
	query := url.Values{}
	query.Set("lat", formatFloat(lat))
	query.Set("lon", formatFloat(lon))
	query.Set("days", formatInt(days))

	var extremes []entities.TideExtreme
	if err := c.getJSON(ctx, "/extremes", query, &extremes); err != nil {
		return nil, err
	}
	return extremes, nil
}

var _ usecases.SeaLevelProvider = (*TideClient)(nil)
