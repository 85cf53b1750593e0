package config

import (
	"errors"
	"fmt"
	"time"
)

const invalidSettings = constError("invalid settings")

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"file-delivery-bot"`

	BotToken         string        `env:"FILE_SERVER_BOT_TOKEN"`
	BotUsername      string        `env:"BOT_USERNAME"`
	StorageChannelID int64         `env:"STORAGE_CHANNEL_ID"`
	GateChannelID    int64         `env:"F_SUB_CHANNEL_ID"`
	GateChannelLink  string        `env:"F_SUB_CHANNEL_LINK"`
	TelegramTimeout  time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`
	WebhookSecret    string        `env:"WEBHOOK_SECRET"`

	MongoURI        string        `env:"MONGODB_URI"`
	MongoDBName     string        `env:"MONGO_DB_NAME"`
	MongoCollection string        `env:"MONGO_COLLECTION" envDefault:"mappings"`
	MongoTimeout    time.Duration `env:"MONGO_TIMEOUT" envDefault:"5s"`
	MappingCacheTTL time.Duration `env:"MAPPING_CACHE_TTL" envDefault:"5m"`
}

// Validate checks that everything needed to serve a request is present.
func (s *Settings) Validate() error {
	if s.BotToken == "" {
		return fmt.Errorf("%w FILE_SERVER_BOT_TOKEN is required", invalidSettings)
	}
	if s.BotUsername == "" {
		return fmt.Errorf("%w BOT_USERNAME is required", invalidSettings)
	}
	if s.StorageChannelID == 0 {
		return fmt.Errorf("%w STORAGE_CHANNEL_ID is required", invalidSettings)
	}
	if s.GateChannelID == 0 {
		return fmt.Errorf("%w F_SUB_CHANNEL_ID is required", invalidSettings)
	}
	if s.GateChannelLink == "" {
		return fmt.Errorf("%w F_SUB_CHANNEL_LINK is required", invalidSettings)
	}
	if s.MongoURI == "" {
		return fmt.Errorf("%w MONGODB_URI is required", invalidSettings)
	}
	if s.MongoDBName == "" {
		return fmt.Errorf("%w MONGO_DB_NAME is required", invalidSettings)
	}
	if s.MongoCollection == "" {
		s.MongoCollection = "mappings"
	}
	if s.MappingCacheTTL < 0 {
		return fmt.Errorf("%w MAPPING_CACHE_TTL cannot be negative", invalidSettings)
	}
	return nil
}

// IsInvalidSettings reports whether err came from Validate.
func IsInvalidSettings(err error) bool {
	return errors.Is(err, invalidSettings)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
