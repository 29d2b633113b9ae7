// Package config assembles runtime settings for the TalentHub CLI from
// defaults, an optional JSON file, environment variables, and command-line
// flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the TalentHub CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabasePath: path of the local sqlite database holding the persisted
//     token slot and bookmarks.
type Config struct {
	ServerBaseURL  string        `env:"TALENTHUB_SERVER_URL"`
	RequestTimeout time.Duration `env:"TALENTHUB_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"TALENTHUB_DB_PATH"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "talenthub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
