package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel          string
	PlaygroundEnabled bool
	ShutdownTimeout   time.Duration
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found")
	}
}

// Load читает конфигурацию из окружения, .env должен быть загружен заранее
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:          GetEnvDefault("LOG_LEVEL", "info"),
		PlaygroundEnabled: true,
		ShutdownTimeout:   5 * time.Second,
	}

	if v := os.Getenv("PLAYGROUND_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("PLAYGROUND_ENABLED: %w", err)
		}
		cfg.PlaygroundEnabled = enabled
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func GetEnvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}
