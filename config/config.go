package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings, all overridable through environment
// variables. A .env file in the working directory is loaded first if present.
type Config struct {
	Port        string
	LogLevel    string
	RenderDelay time.Duration
}

// Load reads the environment and returns the effective configuration.
// Missing variables fall back to development defaults.
func Load() *Config {
	// Ignore the error: a missing .env file just means plain env vars.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RenderDelay: time.Duration(getEnvInt("RENDER_DELAY_MS", 1200)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
