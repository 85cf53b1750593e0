package app

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/filedrop/file-delivery-bot/internal/clients/telegram"
	"github.com/filedrop/file-delivery-bot/internal/config"
	"github.com/filedrop/file-delivery-bot/internal/controllers/webhook"
	"github.com/filedrop/file-delivery-bot/internal/delivery"
	"github.com/filedrop/file-delivery-bot/internal/services/mappingcache"
	"github.com/filedrop/file-delivery-bot/internal/services/mappingrepo"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// Deps holds the process-wide clients. It is built once by the entry point, which owns
// its lifetime and must call Close on shutdown.
type Deps struct {
	Telegram *telegram.Client
	Mongo    *mongo.Client
	Mappings delivery.MappingFinder
	Handler  *delivery.Handler
}

// NewDeps connects the bot and store clients and builds the delivery handler on top of them.
func NewDeps(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*Deps, error) {
	tg, err := telegram.New(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	mongoClient, err := mappingrepo.Connect(ctx, settings)
	if err != nil {
		return nil, err
	}
	repo := mappingrepo.NewRepositoryFromSettings(mongoClient, settings)
	if err := repo.Ping(ctx); err != nil {
		// requests still run and answer with the store error until it comes back
		logger.Error().Err(err).Msg("MongoDB is not reachable")
	}

	var mappings delivery.MappingFinder = repo
	if settings.MappingCacheTTL > 0 {
		mappings = mappingcache.New(settings.MappingCacheTTL, repo)
	}

	handler := delivery.NewHandler(tg, mappings, tg, tg, delivery.Options{
		BotUsername:     settings.BotUsername,
		GateChannelLink: settings.GateChannelLink,
	})

	return &Deps{
		Telegram: tg,
		Mongo:    mongoClient,
		Mappings: mappings,
		Handler:  handler,
	}, nil
}

// Close disconnects the store client.
func (d *Deps) Close(ctx context.Context) error {
	if d.Mongo == nil {
		return nil
	}
	if err := d.Mongo.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}

// CreateFiberApp sets up the webhook routes.
func CreateFiberApp(logger zerolog.Logger, processor webhook.UpdateProcessor, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting file delivery bot...")

	app := fiber.New(fiber.Config{
		ErrorHandler:          webhook.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	webhookController := webhook.NewWebhookController(processor, settings.WebhookSecret)
	logger.Info().Msg("Registering routes...")

	// the serverless deployment served the webhook at /api/webhook; keep both paths
	for _, path := range []string{"/", "/api/webhook"} {
		app.Get(path, webhookController.Health)
		app.Post(path, webhookController.ReceiveUpdate)
	}

	return app
}
