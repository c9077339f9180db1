package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DecayAI/windwizard/internal/api"
	"github.com/DecayAI/windwizard/internal/config"
	"github.com/DecayAI/windwizard/internal/integration/openai"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/toolclient"
	"github.com/DecayAI/windwizard/internal/usecases"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting WindWizard agent...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	metrics := observability.NewMetrics()

	profiles := toolclient.NewProfileClient(cfg.ProfileURL, cfg.HTTPTimeout)
	weather := toolclient.NewWeatherClient(cfg.WeatherURL, cfg.HTTPTimeout)
	tides := toolclient.NewTideClient(cfg.TideURL, cfg.HTTPTimeout)
	notifier := toolclient.NewNotifyClient(cfg.NotifyURL, cfg.HTTPTimeout)

	// Without an OpenAI key the agent still scores conditions, it just
	// skips the coach briefing
	var briefing openai.BriefingService
	if service, err := openai.NewBriefingService(); err != nil {
		log.Printf("AI briefings disabled: %v", err)
	} else {
		briefing = service
	}

	stoke := usecases.NewStokeUseCase(profiles, weather, tides, notifier, briefing, cfg.AlertThreshold, metrics)
	srv := api.NewServer("windwizard-agent", cfg.AgentAddr, api.NewAgentServer(stoke, cfg.AlertThreshold, metrics).Handler())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
