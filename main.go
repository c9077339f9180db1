// Command windwizard-all runs every WindWizard service in a single
// process: the five tool servers plus the agent UI. The agent still
// talks to the tools over HTTP, exactly as it does when each runs as
// its own binary, so this is the quickest way to demo the full stack.
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
	"github.com/DecayAI/windwizard/internal/integration/openmeteo"
	"github.com/DecayAI/windwizard/internal/integration/stormglass"
	"github.com/DecayAI/windwizard/internal/notify"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/repository"
	"github.com/DecayAI/windwizard/internal/toolclient"
	"github.com/DecayAI/windwizard/internal/usecases"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting WindWizard (all services in one process)...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	metrics := observability.NewMetrics()

	// Weather tool
	meteo := openmeteo.NewClient(cfg.OpenMeteoURL, cfg.HTTPTimeout)
	weatherSrv := api.NewServer("weather-tool", cfg.WeatherAddr, api.NewWeatherServer(meteo, metrics).Handler())

	// Tide tool
	glass := stormglass.NewClient(cfg.StormglassKey, cfg.StormglassURL, cfg.HTTPTimeout)
	if !glass.Configured() {
		log.Println("STORMGLASS_API_KEY is not set, serving synthetic tides only")
	}
	tideSrv := api.NewServer("tide-tool", cfg.TideAddr, api.NewTideServer(usecases.NewTideUseCase(glass, metrics), metrics).Handler())

	// Spot tool
	spotRepo, err := repository.NewSQLiteSpotRepository(cfg.SpotDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize spot repository: %v", err)
	}
	defer spotRepo.Close()
	seeded, err := spotRepo.SeedDefaults()
	if err != nil {
		log.Fatalf("Failed to seed spot database: %v", err)
	}
	if seeded > 0 {
		metrics.SpotsImported.Add(float64(seeded))
	}
	spotSrv := api.NewServer("spot-db-tool", cfg.SpotAddr, api.NewSpotServer(usecases.NewSpotUseCase(spotRepo), metrics).Handler())

	// Profile tool
	profileRepo, err := repository.NewSQLiteProfileRepository(cfg.ProfileDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize profile repository: %v", err)
	}
	defer profileRepo.Close()
	profileSrv := api.NewServer("user-profile-tool", cfg.ProfileAddr, api.NewProfileServer(profileRepo, metrics).Handler())

	// Notify tool
	notifySrv := api.NewServer("push-notify-tool", cfg.NotifyAddr, api.NewNotifyServer(
		notify.NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber),
		notify.NewEmailSender(cfg.SendgridAPIKey, cfg.SendgridFrom),
		notify.NewTelegramSender(cfg.TelegramBotToken),
		metrics,
	).Handler())

	// Agent, wired to the tools through their HTTP clients
	var briefing openai.BriefingService
	if service, err := openai.NewBriefingService(); err != nil {
		log.Printf("AI briefings disabled: %v", err)
	} else {
		briefing = service
	}
	stoke := usecases.NewStokeUseCase(
		toolclient.NewProfileClient(cfg.ProfileURL, cfg.HTTPTimeout),
		toolclient.NewWeatherClient(cfg.WeatherURL, cfg.HTTPTimeout),
		toolclient.NewTideClient(cfg.TideURL, cfg.HTTPTimeout),
		toolclient.NewNotifyClient(cfg.NotifyURL, cfg.HTTPTimeout),
		briefing,
		cfg.AlertThreshold,
		metrics,
	)
	agentSrv := api.NewServer("windwizard-agent", cfg.AgentAddr, api.NewAgentServer(stoke, cfg.AlertThreshold, metrics).Handler())

	servers := []*api.Server{weatherSrv, tideSrv, spotSrv, profileSrv, notifySrv, agentSrv}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, srv := range servers {
		go func() {
			if err := srv.Start(); err != nil {
				log.Fatalf("Server error: %v", err)
			}
		}()
	}
	log.Printf("WindWizard UI is up on http://127.0.0.1%s", cfg.AgentAddr)

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}
}
