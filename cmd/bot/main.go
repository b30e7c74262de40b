package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/delivery"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Could not load application configuration, shutting down")
	}
	logger.Init(cfg)
	mainLogger := logger.Get().WithField("app", "homework_status_bot")

	mainLogger.WithFields(logrus.Fields{
		"environment":   cfg.Environment,
		"endpoint":      cfg.Endpoint,
		"poll_interval": cfg.PollInterval.String(),
	}).Info("Configuration loaded.")

	// Initialize Telegram Bot
	bot, err := telegram.NewBot(telegram.BotSettings{Token: cfg.TelegramToken})
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot, shutting down")
	}
	mainLogger.WithField("bot_username", bot.Me.Username).Debug("Telegram bot initialized.")
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, mainLogger)

	// Optional delivery journal
	var journal delivery.Repository
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not connect to database")
		}
		defer db.Close()

		repo := idb.NewPostgresDeliveryRepository(db)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = repo.EnsureSchema(ctx)
		cancel()
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not prepare delivery journal")
		}
		journal = repo
		mainLogger.Info("Delivery journal enabled.")
	}

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, &http.Client{}, mainLogger)
	pollService := app.NewPollingServiceImpl(apiClient, notifier, journal, mainLogger, time.Now())
	pollScheduler := scheduler.NewPollScheduler(pollService, mainLogger, cfg.PollInterval)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	mainLogger.Info("Application setup complete. Polling is starting...")
	pollScheduler.Start()

	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	pollScheduler.Stop()
	mainLogger.Info("Application shut down gracefully.")
}
