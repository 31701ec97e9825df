package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"moderation-srv/config"
	"moderation-srv/internal/enforcement"
	"moderation-srv/pkg/discord"
	"moderation-srv/pkg/log"
	pkgRabb "moderation-srv/pkg/rabbitmq"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Enforcement Worker...")

	// RabbitMQ
	rabbitConn, err := pkgRabb.NewRabbitMQ(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer rabbitConn.Close()
	logger.Info(ctx, "RabbitMQ client initialized")

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Enforcement worker
	worker, err := enforcement.NewWorker(logger, rabbitConn, cfg.RabbitMQ.Exchange, discordClient)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize enforcement worker: %v", err)
		return
	}

	if err := worker.Run(ctx); err != nil {
		logger.Errorf(ctx, "Enforcement worker stopped with error: %v", err)
		return
	}

	logger.Info(ctx, "Enforcement worker stopped.")
}
