package usecases

import (
	"context"
	"errors"
	"log"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/integration/stormglass"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/tide"
)

// TideUseCase serves tide data from Stormglass with a synthetic fallback.
// The fallback kicks in when no API key is configured and when Stormglass
// answers 402, so the demo keeps working after the free quota dries up.
type TideUseCase struct {
	stormglass *stormglass.Client
	metrics    *observability.Metrics
}

// NewTideUseCase creates a new tide use case
func NewTideUseCase(client *stormglass.Client, metrics *observability.Metrics) *TideUseCase {
	return &TideUseCase{
		stormglass: client,
		metrics:    metrics,
	}
}

// GetSeaLevel returns hourly sea levels for the coming hours
func (uc *TideUseCase) GetSeaLevel(ctx context.Context, lat, lon float64, hours int) (entities.TideSeries, error) {
	if !uc.stormglass.Configured() {
		log.Printf("Stormglass key missing, serving synthetic tide")
		uc.metrics.TideFallbacks.Inc()
		return tide.SyntheticSeaLevel(hours), nil
	}

	series, err := uc.stormglass.GetSeaLevel(ctx, lat, lon, hours)
	if err != nil {
		uc.metrics.UpstreamCalls.WithLabelValues("stormglass", observability.OutcomeError).Inc()
		if errors.Is(err, stormglass.ErrPaymentRequired) {
			log.Printf("Stormglass quota exhausted, serving synthetic tide")
			uc.metrics.TideFallbacks.Inc()
			return tide.SyntheticSeaLevel(hours), nil
		}
		return entities.TideSeries{}, err
	}

	uc.metrics.UpstreamCalls.WithLabelValues("stormglass", observability.OutcomeOK).Inc()
	return series, nil
}

// GetExtremes returns predicted high and low water events for the coming days
func (uc *TideUseCase) GetExtremes(ctx context.Context, lat, lon float64, days int) ([]entities.TideExtreme, error) {
	if !uc.stormglass.Configured() {
		log.Printf("Stormglass key missing, serving synthetic extremes")
		uc.metrics.TideFallbacks.Inc()
		return tide.SyntheticExtremes(days), nil
	}

	extremes, err := uc.stormglass.GetExtremes(ctx, lat, lon, days)
	if err != nil {
		uc.metrics.UpstreamCalls.WithLabelValues("stormglass", observability.OutcomeError).Inc()
		if errors.Is(err, stormglass.ErrPaymentRequired) {
			log.Printf("Stormglass quota exhausted, serving synthetic extremes")
			uc.metrics.TideFallbacks.Inc()
			return tide.SyntheticExtremes(days), nil
		}
		return nil, err
	}

	uc.metrics.UpstreamCalls.WithLabelValues("stormglass", observability.OutcomeOK).Inc()
	return extremes, nil
}
