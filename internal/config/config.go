package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Token          string
	DatabaseURL    string
	Prefix         string
	BotOwnerID     string
	UpdateInterval time.Duration
	QueryTimeout   time.Duration
	WorkerPoolSize int
	QueryRateLimit float64
	MetricsAddr    string
	LogLevel       string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := readSecret("discord_token")
	if token == "" {
		token = os.Getenv("DISCORD_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set (via secret or env var)")
	}

	dbURL := readSecret("database_url")
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set (via secret or env var)")
	}

	cfg := &Config{
		Token:          token,
		DatabaseURL:    dbURL,
		Prefix:         envString("COMMAND_PREFIX", "!"),
		BotOwnerID:     envString("BOT_OWNER_ID", ""),
		UpdateInterval: envDuration("UPDATE_INTERVAL", 2*time.Minute),
		QueryTimeout:   envDuration("QUERY_TIMEOUT", 5*time.Second),
		WorkerPoolSize: envInt("WORKER_POOL_SIZE", 10),
		QueryRateLimit: envFloat("QUERY_RATE_LIMIT", 5),
		MetricsAddr:    envString("METRICS_ADDR", ":2112"),
		LogLevel:       envString("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
