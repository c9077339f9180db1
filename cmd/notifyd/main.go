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
	"github.com/DecayAI/windwizard/internal/notify"
	"github.com/DecayAI/windwizard/internal/observability"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting WindWizard notify tool...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	metrics := observability.NewMetrics()

	sms := notify.NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	email := notify.NewEmailSender(cfg.SendgridAPIKey, cfg.SendgridFrom)
	telegram := notify.NewTelegramSender(cfg.TelegramBotToken)

	// The tool runs fine without credentials, it just answers every send
	// with a not configured error
	if !sms.Configured() {
		log.Println("Twilio credentials missing, SMS channel disabled")
	}
	if !email.Configured() {
		log.Println("SendGrid credentials missing, email channel disabled")
	}
	if !telegram.Configured() {
		log.Println("Telegram token missing, Telegram channel disabled")
	}

	srv := api.NewServer("push-notify-tool", cfg.NotifyAddr, api.NewNotifyServer(sms, email, telegram, metrics).Handler())

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
