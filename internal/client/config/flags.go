package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
//	-d string   path to the SQLite database file
//	-l string   log level (debug, info, warn, error)
//	-b int      SQLite busy timeout in milliseconds
//
// Only these flags are looked at; anything else in args is skipped.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	busyTimeout := fs.Int("b", int(cfg.BusyTimeout.Milliseconds()), "busy timeout (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.BusyTimeout = time.Duration(*busyTimeout) * time.Millisecond
}
