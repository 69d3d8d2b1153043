package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. BusyTimeout accepts
// "5s"-style strings or integer nanoseconds.
type JsonConfig struct {
	DatabasePath string          `json:"database_path"`
	LogLevel     string          `json:"log_level"`
	BusyTimeout  *timex.Duration `json:"busy_timeout"`
}

// parseJson overlays Config with the file named by -c/-config, if any.
// Keys missing from the file keep their current values. Panics on read or
// decode errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.BusyTimeout != nil {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
}
