package toolclient

import (
	"context"
	"net/url"
	"time"

	"github.com/DecayAI/windwizard/internal/entities"
)

// SpotClient calls the spot database tool server
type SpotClient struct {
	httpClient
}

// NewSpotClient creates a client for the spot tool at baseURL
func NewSpotClient(baseURL string, timeout time.Duration) *SpotClient {
	return &SpotClient{httpClient: newHTTPClient(baseURL, timeout)}
}

// GetSpotsNear fetches the spots within maxKm of a location, closest first
func (c *SpotClient) GetSpotsNear(ctx context.Context, lat, lon, maxKm float64) ([]entities.NearbySpot, error) {
	query := url.Values{}
	query.Set("lat", formatFloat(lat))
	query.Set("lon", formatFloat(lon))
	query.Set("max_km", formatFloat(maxKm))

	var spots []entities.NearbySpot
	if err := c.getJSON(ctx, "/spots/near", query, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

// ListSpots fetches the whole spot catalogue
func (c *SpotClient) ListSpots(ctx context.Context) ([]entities.Spot, error) {
	var spots []entities.Spot
	if err := c.getJSON(ctx, "/spots", nil, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}
