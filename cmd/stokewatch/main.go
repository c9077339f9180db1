package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DecayAI/windwizard/internal/config"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/repository"
	"github.com/DecayAI/windwizard/internal/toolclient"
	"github.com/DecayAI/windwizard/internal/usecases"
	"github.com/robfig/cron/v3"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting WindWizard stoke watcher...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	metrics := observability.NewMetrics()

	// The watcher reads subscriptions straight from the profile database;
	// the profile tool only serves one rider at a time over HTTP
	repo, err := repository.NewSQLiteProfileRepository(cfg.ProfileDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize profile repository: %v", err)
	}
	defer repo.Close()

	profiles := toolclient.NewProfileClient(cfg.ProfileURL, cfg.HTTPTimeout)
	weather := toolclient.NewWeatherClient(cfg.WeatherURL, cfg.HTTPTimeout)
	tides := toolclient.NewTideClient(cfg.TideURL, cfg.HTTPTimeout)
	notifier := toolclient.NewNotifyClient(cfg.NotifyURL, cfg.HTTPTimeout)

	// Delivery goes through the watch loop, so the evaluator itself
	// sends no alerts and skips the briefing
	evaluator := usecases.NewStokeUseCase(profiles, weather, tides, nil, nil, cfg.AlertThreshold, metrics)
	watch := usecases.NewWatchUseCase(repo, evaluator, notifier, cfg.AlertThreshold, cfg.WatchHours, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run the sweep immediately on startup
	if err := watch.RunOnce(ctx); err != nil {
		log.Printf("Initial stoke sweep failed: %v", err)
	}

	c := cron.New()
	_, err = c.AddFunc(cfg.WatchCron, func() {
		if err := watch.RunOnce(ctx); err != nil {
			log.Printf("Scheduled stoke sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to set up cron job: %v", err)
	}

	log.Printf("Watcher has been scheduled with %q", cfg.WatchCron)
	c.Start()

	<-ctx.Done()
	c.Stop()
}
