package toolclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/usecases"
)

// ProfileClient calls the user profile tool server
type ProfileClient struct {
	httpClient
}

// NewProfileClient creates a client for the profile tool at baseURL
func NewProfileClient(baseURL string, timeout time.Duration) *ProfileClient {
	return &ProfileClient{httpClient: newHTTPClient(baseURL, timeout)}
}

// GetProfile fetches the stored profile for a rider. Unknown riders come
// back as a zero profile, the server answers them with an empty object.
func (c *ProfileClient) GetProfile(ctx context.Context, userID string) (entities.Profile, error) {
	query := url.Values{}
	query.Set("user_id", userID)

	var profile entities.Profile
	if err := c.getJSON(ctx, "/profile", query, &profile); err != nil {
		return entities.Profile{}, err
	}
	return profile, nil
}

// SetProfile stores a rider profile, replacing any existing one
func (c *ProfileClient) SetProfile(ctx context.Context, profile entities.Profile) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.postJSON(ctx, "/profile", profile, &status); err != nil {
		return err
	}
	if status.Status != "ok" {
		return fmt.Errorf("profile tool answered status %q", status.Status)
	}
	return nil
}

var _ usecases.ProfileDirectory = (*ProfileClient)(nil)
