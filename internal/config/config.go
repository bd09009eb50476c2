package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port      string
	Env       string
	StorePath string
	JWTSecret string

	TokenExpiry time.Duration

	// Simulated round-trip latency for session and event mutations.
	AuthLatency  time.Duration
	EventLatency time.Duration

	// Size of the generated collection when storage holds no events.
	SeedEvents int
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		StorePath:    getEnv("STORE_PATH", "eventdeck.db"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		TokenExpiry:  24 * time.Hour,
		AuthLatency:  500 * time.Millisecond,
		EventLatency: 300 * time.Millisecond,
		SeedEvents:   20,
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
