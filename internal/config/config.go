// Package config holds runtime settings for the payment console CLI,
// layered defaults -> JSON file -> command-line flags, later sources
// winning.
package config

import "time"

// Config holds the console's runtime settings.
//
// Fields:
//   - BaseURL: root of the backend REST API, including any path prefix.
//   - DatabasePath: location of the local SQLite credential database.
//   - RequestTimeout: per-request deadline on gateway calls.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	BaseURL        string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.DatabasePath = "payconsole.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from defaults, then a JSON file (if one was
// named via -c/-config), then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
