package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T) {
	t.Helper()
	old := os.Args
	os.Args = []string{"client"}
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "lostfound.db", cfg.DatabaseDSN)
}

func TestLoadConfigDefaultsOnly(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestEnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv(envServerBaseURL, "http://backend:9090")
	t.Setenv(envRequestTimeout, "30")
	t.Setenv(envDatabaseDSN, "/tmp/session.db")

	cfg := LoadConfig()
	require.Equal(t, "http://backend:9090", cfg.ServerBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/session.db", cfg.DatabaseDSN)
}

func TestEnvIgnoresInvalidTimeout(t *testing.T) {
	resetArgs(t)
	t.Setenv(envRequestTimeout, "not-a-number")

	cfg := LoadConfig()
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
