package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	envServerBaseURL  = "LOSTFOUND_SERVER_URL"
	envRequestTimeout = "LOSTFOUND_TIMEOUT_SECONDS"
	envDatabaseDSN    = "LOSTFOUND_DB"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, without overriding
// variables already set in the environment.
func parseEnv(cfg *Config) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv(envServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
}
