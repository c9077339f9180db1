package entities

// Default values applied when a rider never filled in their profile
const (
	DefaultWeightKg = 80.0
	DefaultSkill    = "intermediate"
)

// Profile holds a rider's personal settings used for recommendations and alerts
type Profile struct {
	UserID         string  `json:"user_id,omitempty"`
	Weight         float64 `json:"weight,omitempty"` // kilograms
	Skill          string  `json:"skill,omitempty"`  // beginner, intermediate or advanced
	Phone          string  `json:"phone,omitempty"`  // E.164 number for SMS alerts
	Email          string  `json:"email,omitempty"`
	TelegramChatID int64   `json:"telegram_chat_id,omitempty"`
	HomeLat        float64 `json:"home_lat,omitempty"`
	HomeLon        float64 `json:"home_lon,omitempty"`
	AlertsEnabled  bool    `json:"alerts_enabled,omitempty"`
}

// WeightOrDefault returns the rider weight, falling back to the default
func (p Profile) WeightOrDefault() float64 {
	if p.Weight <= 0 {
		return DefaultWeightKg
	}
	return p.Weight
}

// SkillOrDefault returns the rider skill level, falling back to the default
func (p Profile) SkillOrDefault() string {
	if p.Skill == "" {
		return DefaultSkill
	}
	return p.Skill
}
