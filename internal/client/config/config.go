package config

import "time"

// Config holds runtime settings for the lost-and-found CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the backend; the /api/v1 prefix
//     is appended by the API client.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabaseDSN: sqlite DSN for the local session database.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "lostfound.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
