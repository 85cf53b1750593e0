package main

import (
	"context"
	"log"
	"os"

	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/filedrop/file-delivery-bot/internal/app"
	"github.com/filedrop/file-delivery-bot/internal/config"
	"github.com/filedrop/file-delivery-bot/internal/controllers/lambdahandler"
	"github.com/rs/zerolog"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	settings, err := env.LoadSettings[config.Settings](envFile)
	if err != nil {
		log.Fatalf("could not load settings: %s", err)
	}
	if err := settings.Validate(); err != nil {
		log.Fatalf("invalid settings: %s", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("could not parse log level: %s", err)
	}
	zerolog.SetGlobalLevel(level)
	logger := logging.GetAndSetDefaultLogger(settings.ServiceName)

	// the deps live as long as the execution environment; Lambda gives no shutdown hook
	deps, err := app.NewDeps(context.Background(), &settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create dependencies")
	}

	handler := lambdahandler.New(deps.Handler, settings.WebhookSecret)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return handler.Handle(logger.WithContext(ctx), req)
	})
}
