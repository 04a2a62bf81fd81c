package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App         App
	HTTP        HTTP
	Probe       Probe
	Metrics     Metrics
	Log         Log
	NumbersAPI  NumbersAPI
	FactCache   FactCache
	Redis       Redis
	FactRefresh FactRefresh
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"numclass" validate:"required"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081" validate:"required"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090" validate:"required"`
}

type Log struct {
	Level          string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format         string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	FieldMaxLength int    `env:"LOG_FIELD_MAX_LENGTH" envDefault:"4096" validate:"gte=0"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(c); err != nil {
		return fmt.Errorf("validator.Struct: %w", err)
	}

	if c.FactRefresh.Enabled && !c.Redis.Enabled() {
		return fmt.Errorf("fact refresh requires REDIS_ADDRESS")
	}

	return nil
}
