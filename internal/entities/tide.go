package entities

// Tide data sources reported in TideSeries.Source
const (
	TideSourceStormglass = "stormglass"
	TideSourceSynthetic  = "synthetic"
)

// Tide extreme kinds
const (
	TideHigh = "high"
	TideLow  = "low"
)

// TideSeries holds hourly sea level values relative to mean sea level.
// Slices are index-aligned like WindForecast.
type TideSeries struct {
	Time     []string  `json:"time"`
	SeaLevel []float64 `json:"sea_level"` // metres
	Source   string    `json:"source"`
}

// TideExtreme is a single predicted high or low water event
type TideExtreme struct {
	Time   string  `json:"time"`
	Height float64 `json:"height"` // metres
	Type   string  `json:"type"`   // TideHigh or TideLow
}
