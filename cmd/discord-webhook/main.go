package main

import (
	"context"
	"log"

	"github.com/O-Mutt/discord-webhook/internal/config"
	"github.com/O-Mutt/discord-webhook/internal/httpclient"
	"github.com/O-Mutt/discord-webhook/internal/inputs"
	"github.com/O-Mutt/discord-webhook/internal/logger"
	"github.com/O-Mutt/discord-webhook/internal/notifier"
	"github.com/O-Mutt/discord-webhook/internal/payload"
)

func main() {
	flags := ParseFlags()

	cfg, err := config.LoadConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load config using path '%s': %v", flags.ConfigFile, err)
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	// Input precedence: command-line flags, then INPUT_* environment
	// variables, then config-file defaults
	source := inputs.NewOverlay(
		inputs.MapSource(flags.AsSource()),
		inputs.NewEnvSource(),
		inputs.MapSource{
			"webhook-url": cfg.WebhookConfig.WebhookURL,
			"username":    cfg.WebhookConfig.Username,
			"avatar-url":  cfg.WebhookConfig.AvatarURL,
		},
	)

	messagePayload, err := payload.NewBuilder(source, zLogger).Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to build webhook payload")
	}

	client := httpclient.NewHTTPClient(httpclient.DefaultHTTPClientConfig(), zLogger)
	webhookNotifier := notifier.NewWebhookNotifier(zLogger, client)

	delivery := notifier.Delivery{
		WebhookURL: source.Get("webhook-url"),
		ThreadID:   source.Get("thread-id"),
		FilePath:   source.Get("filename"),
	}

	if err := webhookNotifier.Send(context.Background(), delivery, messagePayload); err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to deliver webhook notification")
	}
}
