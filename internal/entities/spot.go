// Package entities contains the core domain objects for the windwizard application
package entities

// Spot represents a single kite spot in the system
type Spot struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"` // decimal degrees
	Lon         float64 `json:"lon"` // decimal degrees
	Region      string  `json:"region,omitempty"`
	Description string  `json:"description,omitempty"`
}

// NearbySpot is a spot annotated with its distance from a query point
type NearbySpot struct {
	Spot
	DistanceKm float64 `json:"distance_km"`
}
