package config

import (
	"ctchen222/tictactoe/internal/validator"
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Color     bool      `yaml:"color" env:"TICTACTOE_COLOR" env-default:"true"`
	HTTPAddr  string    `yaml:"http-addr" env:"TICTACTOE_HTTP_ADDR" env-default:":8080" validate:"required"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Telemetry selects the OpenTelemetry exporters. "none" disables a signal.
type Telemetry struct {
	ServiceName  string `yaml:"service-name" env:"TICTACTOE_SERVICE_NAME" env-default:"tictactoe" validate:"required"`
	Traces       string `yaml:"traces" env:"TICTACTOE_TRACES" env-default:"none" validate:"oneof=none stdout otlp"`
	Metrics      string `yaml:"metrics" env:"TICTACTOE_METRICS" env-default:"none" validate:"oneof=none stdout otlp prometheus"`
	Logs         string `yaml:"logs" env:"TICTACTOE_LOGS" env-default:"none" validate:"oneof=none otlp"`
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"TICTACTOE_OTLP_ENDPOINT" env-default:"otel-collector:4317"`
}

// UsesOTLP reports whether any signal is exported over OTLP.
func (t Telemetry) UsesOTLP() bool {
	return t.Traces == "otlp" || t.Metrics == "otlp" || t.Logs == "otlp"
}

// Load reads the configuration from the YAML file at path, or only from the
// environment when path is empty, and validates it.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
