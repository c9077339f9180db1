package entities

// StokeRequest is a request to rate the kitesurfing conditions at a location
type StokeRequest struct {
	UserID string  `json:"user_id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Hours  int     `json:"hours"`
	Alert  bool    `json:"alert"`
}

// StokeReport is the full result of a conditions check.
// AvgWind and AvgTide feed the briefing prompt and alert decision but are
// already baked into Message, so they stay out of the JSON body.
type StokeReport struct {
	Profile   Profile   `json:"profile"`
	AvgWind   float64   `json:"-"`
	AvgTide   float64   `json:"-"`
	Stoke     int       `json:"stoke"`
	Kite      string    `json:"kite"`
	Message   string    `json:"message"`
	Briefing  *Briefing `json:"briefing,omitempty"`
	AlertSent bool      `json:"alert_sent,omitempty"`
}

// Briefing is a short AI generated summary of the conditions
type Briefing struct {
	Headline string `json:"headline" jsonschema_description:"One punchy sentence summarizing the session outlook"`
	Advice   string `json:"advice" jsonschema_description:"Practical advice for the rider given the wind, tide and their skill level"`
}
