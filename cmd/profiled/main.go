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
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting WindWizard profile tool...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	metrics := observability.NewMetrics()

	repo, err := repository.NewSQLiteProfileRepository(cfg.ProfileDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize profile repository: %v", err)
	}
	defer repo.Close()

	srv := api.NewServer("user-profile-tool", cfg.ProfileAddr, api.NewProfileServer(repo, metrics).Handler())

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
