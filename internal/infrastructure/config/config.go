package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// GoogleClientID is the OAuth client the ID tokens must be issued for.
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`
	// GeminiAPIKey is required: the process refuses to start without it.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	// AllowedEmailDomain restricts sign-in to one campus domain.
	AllowedEmailDomain string `env:"ALLOWED_EMAIL_DOMAIN, default=nyu.edu"`
	// UploadDir is where uploaded listing images are stored and served from.
	UploadDir string `env:"UPLOAD_DIR, default=uploads"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=campus_rentals"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("config: GEMINI_API_KEY is not set")
	}
	return &cfg, nil
}
