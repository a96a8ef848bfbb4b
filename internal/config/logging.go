package config

import (
	"noteful/pkg/logger"
)

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"NOTEFUL_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"NOTEFUL_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment maps the mode string to a logger environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}
