package usecases

import (
	"fmt"
	"math"
	"testing"

	"github.com/DecayAI/windwizard/internal/entities"
)

type fakeSpotRepo struct {
	spots []entities.Spot
	err   error
}

func (f *fakeSpotRepo) SaveSpots(spots []entities.Spot) error { return nil }
func (f *fakeSpotRepo) GetAllSpots() ([]entities.Spot, error) { return f.spots, f.err }
func (f *fakeSpotRepo) CountSpots() (int, error)              { return len(f.spots), nil }
func (f *fakeSpotRepo) Close() error                          { return nil }

func TestFindSpotsNear(t *testing.T) {
	repo := &fakeSpotRepo{spots: []entities.Spot{
		{ID: 1, Name: "Amager Strandpark", Lat: 55.658, Lon: 12.635},
		{ID: 2, Name: "Skanör", Lat: 55.416, Lon: 12.828},
		{ID: 3, Name: "Klitmøller", Lat: 57.038, Lon: 8.513},
	}}
	uc := NewSpotUseCase(repo)

	nearby, err := uc.FindSpotsNear(55.66, 12.56, 150)
	if err != nil {
		t.Fatalf("FindSpotsNear failed: %v", err)
	}

	// Klitmøller is roughly 280 km away and must be filtered out
	if len(nearby) != 2 {
		t.Fatalf("Expected 2 spots within 150 km, got %d: %+v", len(nearby), nearby)
	}
	// Closest first
	if nearby[0].Name != "Amager Strandpark" {
		t.Errorf("Expected Amager Strandpark closest, got %s", nearby[0].Name)
	}
	if nearby[0].DistanceKm >= nearby[1].DistanceKm {
		t.Errorf("Expected ascending distances, got %v then %v", nearby[0].DistanceKm, nearby[1].DistanceKm)
	}
	// Distances are rounded to a tenth of a kilometre
	for _, s := range nearby {
		if math.Abs(s.DistanceKm*10-math.Round(s.DistanceKm*10)) > 1e-9 {
			t.Errorf("Expected distance rounded to 0.1 km, got %v", s.DistanceKm)
		}
	}
}

func TestFindSpotsNearDefaultRadius(t *testing.T) {
	repo := &fakeSpotRepo{spots: []entities.Spot{
		{Name: "Nearby", Lat: 55.7, Lon: 12.6},
		{Name: "Far Away", Lat: 45.0, Lon: 10.0},
	}}
	uc := NewSpotUseCase(repo)

	nearby, err := uc.FindSpotsNear(55.66, 12.56, 0)
	if err != nil {
		t.Fatalf("FindSpotsNear failed: %v", err)
	}
	if len(nearby) != 1 || nearby[0].Name != "Nearby" {
		t.Errorf("Expected the default 150 km radius to apply, got %+v", nearby)
	}
}

func TestFindSpotsNearEmptyResult(t *testing.T) {
	repo := &fakeSpotRepo{spots: []entities.Spot{
		{Name: "Klitmøller", Lat: 57.038, Lon: 8.513},
	}}
	uc := NewSpotUseCase(repo)

	nearby, err := uc.FindSpotsNear(55.66, 12.56, 50)
	if err != nil {
		t.Fatalf("FindSpotsNear failed: %v", err)
	}
	if nearby == nil {
		t.Fatal("Expected an empty slice, got nil")
	}
	if len(nearby) != 0 {
		t.Errorf("Expected no spots within 50 km, got %+v", nearby)
	}
}

func TestFindSpotsNearRepoError(t *testing.T) {
	repo := &fakeSpotRepo{err: fmt.Errorf("database is locked")}
	uc := NewSpotUseCase(repo)

	if _, err := uc.FindSpotsNear(55.66, 12.56, 150); err == nil {
		t.Error("Expected repository error to propagate, got nil")
	}
}

func TestHaversineKm(t *testing.T) {
	// Same point
	if d := haversineKm(55.66, 12.56, 55.66, 12.56); d != 0 {
		t.Errorf("Expected zero distance for identical points, got %v", d)
	}

	// One degree of latitude is about 111.2 km
	d := haversineKm(55.0, 12.0, 56.0, 12.0)
	if d < 110 || d > 112.5 {
		t.Errorf("Expected roughly 111 km for one degree of latitude, got %v", d)
	}

	// Copenhagen to Malmö is about 28 km
	d = haversineKm(55.676, 12.568, 55.605, 13.004)
	if d < 25 || d > 31 {
		t.Errorf("Expected roughly 28 km Copenhagen to Malmö, got %v", d)
	}
}
