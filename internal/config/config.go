package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	HTTPServer HTTPServer
	PG         PG
}

type HTTPServer struct {
	Address         string        `env:"HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type PG struct {
	URL string `env:"DATABASE_URL" env-required:"true"`
}

// Load reads .env first (if present), then the process environment.
func Load() (*Config, error) {
	cfg := &Config{}

	// A missing .env is fine; env vars alone are enough.
	_ = cleanenv.ReadConfig(".env", cfg)

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment configuration: %w", err)
	}
	return cfg, nil
}
