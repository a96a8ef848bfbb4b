// Package config holds the service configuration loaded from environment
// variables and an optional .env file.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"noteful/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigurationLoaded     = "configuration loaded successfully"
	errFailedLoadConfiguration = "failed to load configuration"

	envFile = ".env"
)

// Config aggregates all service configuration sections.
type Config struct {
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logging  LoggingConfig
	JWT      JWTConfig
	Shutdown ShutdownConfig
}

// Load reads configuration from the .env file when present, falling back to
// process environment variables.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)
	log.Info(ctx, msgLoadingConfiguration, zap.String("path", envFile))

	var cfg Config

	if _, err := os.Stat(envFile); err == nil {
		if err := cleanenv.ReadConfig(envFile, &cfg); err != nil {
			log.Error(ctx, errFailedLoadConfiguration, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Error(ctx, errFailedLoadConfiguration, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
		}
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}
