// Package usecases contains the application's business logic
package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/integration/openai"
	"github.com/DecayAI/windwizard/internal/observability"
)

// Bounds for the hours window a stoke check looks ahead
const (
	DefaultStokeHours = 6
	MaxStokeHours     = 24
)

// Score computes the stoke score from average wind and tide.
// The naive formula weighs wind four to one over tide and clamps to 0..100.
func Score(avgWind, avgTide float64) int {
	score := int(avgWind*4 + avgTide*10)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// KiteSize recommends a kite for the average wind speed
func KiteSize(avgWind float64) string {
	switch {
	case avgWind < 10:
		return "Too little wind"
	case avgWind < 15:
		return "12m kite"
	case avgWind < 20:
		return "9m kite"
	default:
		return "7m kite"
	}
}

// ConditionsMessage renders the one line summary shown to riders
func ConditionsMessage(avgWind, avgTide float64, score int, kite string) string {
	return fmt.Sprintf("Avg wind %.1f kt, tide %.2fm. Stoke %d/100. Use %s.", avgWind, avgTide, score, kite)
}

// ProfileDirectory provides rider profiles for stoke checks
type ProfileDirectory interface {
	GetProfile(ctx context.Context, userID string) (entities.Profile, error)
}

// WindForecaster provides hourly wind forecasts
type WindForecaster interface {
	GetWindForecast(ctx context.Context, lat, lon float64, hours int) (entities.WindForecast, error)
}

// SeaLevelProvider provides hourly sea level series
type SeaLevelProvider interface {
	GetSeaLevel(ctx context.Context, lat, lon float64, hours int) (entities.TideSeries, error)
}

// AlertSender delivers SMS stoke alerts
type AlertSender interface {
	SendSMS(ctx context.Context, to, message string) (string, error)
}

// StokeUseCase rates kitesurfing conditions by combining the tool services
type StokeUseCase struct {
	profiles       ProfileDirectory
	weather        WindForecaster
	tides          SeaLevelProvider
	notifier       AlertSender
	briefing       openai.BriefingService
	alertThreshold int
	metrics        *observability.Metrics
}

// NewStokeUseCase creates a new stoke use case. The notifier and briefing
// service are optional; nil disables alerts and AI briefings respectively.
func NewStokeUseCase(
	profiles ProfileDirectory,
	weather WindForecaster,
	tides SeaLevelProvider,
	notifier AlertSender,
	briefing openai.BriefingService,
	alertThreshold int,
	metrics *observability.Metrics,
) *StokeUseCase {
	return &StokeUseCase{
		profiles:       profiles,
		weather:        weather,
		tides:          tides,
		notifier:       notifier,
		briefing:       briefing,
		alertThreshold: alertThreshold,
		metrics:        metrics,
	}
}

// ComputeStoke fetches the rider profile, wind and tide for a location and
// turns them into a stoke report. When the request asks for an alert and the
// score clears the threshold, the rider is texted the summary.
func (uc *StokeUseCase) ComputeStoke(ctx context.Context, req entities.StokeRequest) (entities.StokeReport, error) {
	if req.Hours <= 0 {
		req.Hours = DefaultStokeHours
	}
	if req.Hours > MaxStokeHours {
		req.Hours = MaxStokeHours
	}

	log.Printf("Computing stoke for user %q at %.4f, %.4f over %d hours", req.UserID, req.Lat, req.Lon, req.Hours)

	profile, err := uc.profiles.GetProfile(ctx, req.UserID)
	if err != nil {
		return entities.StokeReport{}, fmt.Errorf("failed to fetch profile: %v", err)
	}

	forecast, err := uc.weather.GetWindForecast(ctx, req.Lat, req.Lon, req.Hours)
	if err != nil {
		return entities.StokeReport{}, fmt.Errorf("failed to fetch wind forecast: %v", err)
	}
	avgWind, err := mean(forecast.WindSpeed)
	if err != nil {
		return entities.StokeReport{}, fmt.Errorf("wind forecast is empty")
	}

	series, err := uc.tides.GetSeaLevel(ctx, req.Lat, req.Lon, req.Hours)
	if err != nil {
		return entities.StokeReport{}, fmt.Errorf("failed to fetch tide data: %v", err)
	}
	avgTide, err := mean(series.SeaLevel)
	if err != nil {
		return entities.StokeReport{}, fmt.Errorf("tide series is empty")
	}

	score := Score(avgWind, avgTide)
	kite := KiteSize(avgWind)

	report := entities.StokeReport{
		Profile: profile,
		AvgWind: avgWind,
		AvgTide: avgTide,
		Stoke:   score,
		Kite:    kite,
		Message: ConditionsMessage(avgWind, avgTide, score, kite),
	}
	uc.metrics.StokeScores.Observe(float64(score))

	if uc.briefing != nil {
		briefing, err := uc.briefing.GenerateBriefing(ctx, report)
		if err != nil {
			log.Printf("Warning: failed to generate briefing: %v", err)
		} else {
			report.Briefing = briefing
		}
	}

	if req.Alert && score >= uc.alertThreshold && uc.notifier != nil {
		if profile.Phone == "" {
			log.Printf("Alert requested for user %q but profile has no phone number", req.UserID)
		} else if _, err := uc.notifier.SendSMS(ctx, profile.Phone, report.Message); err != nil {
			log.Printf("Warning: failed to send stoke alert: %v", err)
		} else {
			report.AlertSent = true
			uc.metrics.AlertsSent.Inc()
		}
	}

	return report, nil
}

func mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("empty series")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}
