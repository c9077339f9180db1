package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/repository"
)

// NotifySender delivers alert messages over the available channels
type NotifySender interface {
	SendSMS(ctx context.Context, to, message string) (string, error)
	SendEmail(ctx context.Context, to, subject, message string) (int, error)
	SendTelegram(ctx context.Context, chatID int64, message string) (int, error)
}

// ConditionsEvaluator rates conditions at a location
type ConditionsEvaluator interface {
	ComputeStoke(ctx context.Context, req entities.StokeRequest) (entities.StokeReport, error)
}

// WatchUseCase periodically checks conditions at every subscriber's home
// spot and notifies the ones whose stoke clears the threshold
type WatchUseCase struct {
	profiles  repository.ProfileRepository
	evaluator ConditionsEvaluator
	notifier  NotifySender
	threshold int
	hours     int
	metrics   *observability.Metrics
}

// NewWatchUseCase creates a new watch use case
func NewWatchUseCase(
	profiles repository.ProfileRepository,
	evaluator ConditionsEvaluator,
	notifier NotifySender,
	threshold int,
	hours int,
	metrics *observability.Metrics,
) *WatchUseCase {
	return &WatchUseCase{
		profiles:  profiles,
		evaluator: evaluator,
		notifier:  notifier,
		threshold: threshold,
		hours:     hours,
		metrics:   metrics,
	}
}

// RunOnce sweeps all alert subscribers once
func (uc *WatchUseCase) RunOnce(ctx context.Context) error {
	log.Println("Starting stoke watch sweep...")

	profiles, err := uc.profiles.ListAlertProfiles()
	if err != nil {
		uc.metrics.WatchRuns.WithLabelValues(observability.OutcomeError).Inc()
		return fmt.Errorf("failed to list alert profiles: %v", err)
	}
	if len(profiles) == 0 {
		log.Println("No alert subscribers, nothing to do")
		uc.metrics.WatchRuns.WithLabelValues(observability.OutcomeSkipped).Inc()
		return nil
	}

	notified := 0
	for _, p := range profiles {
		if p.HomeLat == 0 && p.HomeLon == 0 {
			log.Printf("Skipping %s: no home spot configured", p.UserID)
			continue
		}

		report, err := uc.evaluator.ComputeStoke(ctx, entities.StokeRequest{
			UserID: p.UserID,
			Lat:    p.HomeLat,
			Lon:    p.HomeLon,
			Hours:  uc.hours,
		})
		if err != nil {
			log.Printf("Warning: failed to rate conditions for %s: %v", p.UserID, err)
			continue
		}

		if report.Stoke < uc.threshold {
			log.Printf("Stoke %d/100 for %s is below threshold %d, staying quiet", report.Stoke, p.UserID, uc.threshold)
			continue
		}

		if err := uc.notify(ctx, p, report.Message); err != nil {
			log.Printf("Warning: failed to notify %s: %v", p.UserID, err)
			continue
		}
		notified++
		uc.metrics.AlertsSent.Inc()
	}

	log.Printf("Stoke watch sweep complete, notified %d of %d subscribers", notified, len(profiles))
	uc.metrics.WatchRuns.WithLabelValues(observability.OutcomeOK).Inc()
	return nil
}

// notify picks the first channel the profile has filled in:
// SMS, then email, then Telegram
func (uc *WatchUseCase) notify(ctx context.Context, p entities.Profile, message string) error {
	switch {
	case p.Phone != "":
		_, err := uc.notifier.SendSMS(ctx, p.Phone, message)
		return err
	case p.Email != "":
		_, err := uc.notifier.SendEmail(ctx, p.Email, "WindWizard stoke alert", message)
		return err
	case p.TelegramChatID != 0:
		_, err := uc.notifier.SendTelegram(ctx, p.TelegramChatID, message)
		return err
	default:
		return fmt.Errorf("no notification channel configured for %s", p.UserID)
	}
}
