package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/filex"
)

// Config holds runtime settings for the CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding users and the session marker.
//   - LogLevel: debug, info, warn or error.
//   - BusyTimeout: how long SQLite waits on a locked database.
type Config struct {
	DatabasePath string        `env:"GOPHAUTH_DATABASE_PATH"`
	LogLevel     string        `env:"GOPHAUTH_LOG_LEVEL"`
	BusyTimeout  time.Duration `env:"GOPHAUTH_BUSY_TIMEOUT"`
}

// userConfigDir is a seam for os.UserConfigDir.
var userConfigDir = os.UserConfigDir

const (
	appDirName     = "gophauth"
	databaseFile   = "auth.db"
	defaultLevel   = "info"
	defaultTimeout = 5 * time.Second
)

func defaultDatabasePath() string {
	dir, err := userConfigDir()
	if err != nil || dir == "" {
		return databaseFile
	}
	return filepath.Join(dir, appDirName, databaseFile)
}

// LoadDefaults populates c with defaults. The database lives in the per-user
// config directory, falling back to the working directory.
func (c *Config) LoadDefaults() {
	c.DatabasePath = defaultDatabasePath()
	c.LogLevel = defaultLevel
	c.BusyTimeout = defaultTimeout
}

// LoadConfig applies defaults, then the JSON file, then environment
// variables, then command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}

// EnsureDatabaseDir creates the parent directory of DatabasePath.
func (c *Config) EnsureDatabaseDir() error {
	return filex.EnsureParentDir(c.DatabasePath)
}
