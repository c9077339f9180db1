// Package config loads windwizard configuration from environment variables
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the corresponding environment variable is unset
const (
	DefaultWeatherAddr = ":7860"
	DefaultTideAddr    = ":7861"
	DefaultSpotAddr    = ":7862"
	DefaultProfileAddr = ":7863"
	DefaultNotifyAddr  = ":7864"
	DefaultAgentAddr   = ":7865"

	DefaultOpenMeteoURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultStormglassURL = "https://api.stormglass.io/v2/tide"

	DefaultSpotDBPath    = "data/spots.db"
	DefaultProfileDBPath = "data/profiles.db"

	DefaultAlertThreshold = 60
	DefaultWatchCron      = "0 * * * *"
	DefaultWatchHours     = 6
	DefaultHTTPTimeout    = 10 * time.Second
)

// Config holds all settings for the windwizard services. Every binary reads
// the same struct and uses the fields it needs.
type Config struct {
	// Listen addresses for the tool servers and the agent UI
	WeatherAddr string
	TideAddr    string
	SpotAddr    string
	ProfileAddr string
	NotifyAddr  string
	AgentAddr   string

	// Upstream APIs
	OpenMeteoURL  string
	StormglassURL string
	StormglassKey string

	// Storage
	SpotDBPath    string
	ProfileDBPath string

	// Notification credentials
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	SendgridAPIKey   string
	SendgridFrom     string
	TelegramBotToken string

	// AI briefings
	OpenAIAPIKey string

	// Tool endpoints used by the agent and the watcher
	WeatherURL string
	TideURL    string
	SpotURL    string
	ProfileURL string
	NotifyURL  string

	// Alerting
	AlertThreshold int
	WatchCron      string
	WatchHours     int

	HTTPTimeout time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present, so the demo can be
// configured with a single file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		WeatherAddr: getEnv("WEATHER_ADDR", DefaultWeatherAddr),
		TideAddr:    getEnv("TIDE_ADDR", DefaultTideAddr),
		SpotAddr:    getEnv("SPOT_ADDR", DefaultSpotAddr),
		ProfileAddr: getEnv("PROFILE_ADDR", DefaultProfileAddr),
		NotifyAddr:  getEnv("NOTIFY_ADDR", DefaultNotifyAddr),
		AgentAddr:   getEnv("AGENT_ADDR", DefaultAgentAddr),

		OpenMeteoURL:  getEnv("OPEN_METEO_URL", DefaultOpenMeteoURL),
		StormglassURL: getEnv("STORMGLASS_URL", DefaultStormglassURL),
		StormglassKey: os.Getenv("STORMGLASS_API_KEY"),

		SpotDBPath:    getEnv("SPOT_DB_PATH", DefaultSpotDBPath),
		ProfileDBPath: getEnv("PROFILE_DB_PATH", DefaultProfileDBPath),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		SendgridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		SendgridFrom:     getEnv("SENDGRID_FROM_EMAIL", "alerts@windwizard.example"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),

		WeatherURL: getEnv("WEATHER_URL", "http://127.0.0.1:7860"),
		TideURL:    getEnv("TIDE_URL", "http://127.0.0.1:7861"),
		SpotURL:    getEnv("SPOT_URL", "http://127.0.0.1:7862"),
		ProfileURL: getEnv("PROFILE_URL", "http://127.0.0.1:7863"),
		NotifyURL:  getEnv("NOTIFY_URL", "http://127.0.0.1:7864"),

		WatchCron: getEnv("WATCH_CRON", DefaultWatchCron),
	}

	var err error
	cfg.AlertThreshold, err = getEnvInt("STOKE_ALERT_THRESHOLD", DefaultAlertThreshold)
	if err != nil {
		return nil, err
	}
	cfg.WatchHours, err = getEnvInt("WATCH_HOURS", DefaultWatchHours)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout, err = getEnvDuration("HTTP_TIMEOUT", DefaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	if cfg.AlertThreshold < 0 || cfg.AlertThreshold > 100 {
		return nil, fmt.Errorf("STOKE_ALERT_THRESHOLD must be between 0 and 100, got %d", cfg.AlertThreshold)
	}
	if cfg.WatchHours < 1 || cfg.WatchHours > 24 {
		return nil, fmt.Errorf("WATCH_HOURS must be between 1 and 24, got %d", cfg.WatchHours)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", cfg.HTTPTimeout)
	}

	return cfg, nil
}

// TwilioConfigured reports whether SMS sending credentials are present
func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// SendgridConfigured reports whether email sending credentials are present
func (c *Config) SendgridConfigured() bool {
	return c.SendgridAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return d, nil
}
