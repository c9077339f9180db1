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
	"github.com/DecayAI/windwizard/internal/integration/stormglass"
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/usecases"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting WindWizard tide tool...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	metrics := observability.NewMetrics()
	client := stormglass.NewClient(cfg.StormglassKey, cfg.StormglassURL, cfg.HTTPTimeout)
	if !client.Configured() {
		log.Println("STORMGLASS_API_KEY is not set, serving synthetic tides only")
	}
	tides := usecases.NewTideUseCase(client, metrics)

	srv := api.NewServer("tide-tool", cfg.TideAddr, api.NewTideServer(tides, metrics).Handler())

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
