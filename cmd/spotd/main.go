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
	"github.com/DecayAI/windwizard/internal/observability"
	"github.com/DecayAI/windwizard/internal/repository"
	"github.com/DecayAI/windwizard/internal/usecases"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting WindWizard spot tool...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	metrics := observability.NewMetrics()

	repo, err := repository.NewSQLiteSpotRepository(cfg.SpotDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize spot repository: %v", err)
	}
	defer repo.Close()

	// A fresh database gets the bundled Øresund spots so the tool is
	// usable out of the box
	seeded, err := repo.SeedDefaults()
	if err != nil {
		log.Fatalf("Failed to seed spots: %v", err)
	}
	if seeded > 0 {
		metrics.SpotsImported.Add(float64(seeded))
	}

	spots := usecases.NewSpotUseCase(repo)
	srv := api.NewServer("spot-db-tool", cfg.SpotAddr, api.NewSpotServer(spots, metrics).Handler())

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
