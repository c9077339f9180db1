package entities

// WindForecast holds hourly wind values for a single location.
// Slices are index-aligned: Time[i] describes WindSpeed[i] and WindDirection[i].
type WindForecast struct {
	Time          []string  `json:"time"`
	WindSpeed     []float64 `json:"windspeed_10m"`
	WindDirection []float64 `json:"winddirection_10m"` // degrees, 0 = north
}

// Hours returns the number of hourly samples in the forecast
func (f WindForecast) Hours() int {
	return len(f.Time)
}
