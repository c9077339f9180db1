package usecases

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/repository"
)

// DefaultMaxKm is the spot search radius applied when none is given
const DefaultMaxKm = 150.0

// SpotUseCase finds kite spots near a location
type SpotUseCase struct {
	repo repository.SpotRepository
}

// NewSpotUseCase creates a new spot use case
func NewSpotUseCase(repo repository.SpotRepository) *SpotUseCase {
	return &SpotUseCase{repo: repo}
}

// ListSpots returns every spot in the database ordered by name
func (uc *SpotUseCase) ListSpots() ([]entities.Spot, error) {
	spots, err := uc.repo.GetAllSpots()
	if err != nil {
		return nil, fmt.Errorf("failed to load spots: %v", err)
	}
	if spots == nil {
		spots = []entities.Spot{}
	}
	return spots, nil
}

// FindSpotsNear returns spots within maxKm kilometres of the point,
// closest first. A non-positive radius falls back to the default.
func (uc *SpotUseCase) FindSpotsNear(lat, lon, maxKm float64) ([]entities.NearbySpot, error) {
	if maxKm <= 0 {
		maxKm = DefaultMaxKm
	}

	spots, err := uc.repo.GetAllSpots()
	if err != nil {
		return nil, fmt.Errorf("failed to load spots: %v", err)
	}

	// Non-nil so an empty result marshals as [] instead of null
	nearby := make([]entities.NearbySpot, 0, len(spots))
	for _, s := range spots {
		d := haversineKm(lat, lon, s.Lat, s.Lon)
		if d <= maxKm {
			nearby = append(nearby, entities.NearbySpot{
				Spot:       s,
				DistanceKm: math.Round(d*10) / 10,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	log.Printf("Found %d spots within %.0f km of %.4f, %.4f", len(nearby), maxKm, lat, lon)
	return nearby, nil
}

// haversineKm computes the great circle distance between two points in km
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
