package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/tzpay/payconsole/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON settings file. The timeout is
// given in whole seconds to keep the file format flat.
type jsonConfig struct {
	BaseURL               string `json:"base_url"`
	DatabasePath          string `json:"database_path"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	LogLevel              string `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// No flag, no file read. Fields absent from the file keep their current
// values. Read and unmarshal errors panic; configuration is settled before
// anything else starts, so a broken file should stop the program.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
