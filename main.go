package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/medivoice/medivoice-api/config"
	"github.com/medivoice/medivoice-api/data"
	"github.com/medivoice/medivoice-api/logging"
	"github.com/medivoice/medivoice-api/medicines"
	"github.com/medivoice/medivoice-api/scheduler"
	"github.com/medivoice/medivoice-api/server"
	"github.com/medivoice/medivoice-api/speech"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logging.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Init("logs", cfg.LogLevel, cfg.LogRetentionWeeks, cfg.MaxLogFileSize)
	defer logging.Close()

	// Load the catalog before serving: the first query must see a
	// fully built read model
	container := data.NewContainer()
	loader := medicines.NewLoader(cfg.DataDir)

	sched := scheduler.NewScheduler(container, loader)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	adapters := server.Adapters{
		Speaker:     speech.NewMurfTTS(cfg.MurfAPIKey, cfg.ExternalTimeout),
		Transcriber: speech.NewDeepgramASR(cfg.DeepgramAPIKey, cfg.ExternalTimeout),
		Assistant:   speech.NewChatAssistant(cfg.LLMProvider, cfg.OpenAIAPIKey, cfg.GroqAPIKey),
	}

	srv := server.NewServer(cfg, container, adapters)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logging.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	logging.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}

	logging.Info("Server shutdown complete")
}
