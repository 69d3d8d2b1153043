// Package config loads runtime configuration for the CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables GOPHAUTH_DATABASE_PATH, GOPHAUTH_LOG_LEVEL,
//     GOPHAUTH_BUSY_TIMEOUT (Go duration syntax).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   database file
//	-l string   log level
//	-b int      busy timeout (milliseconds)
//
// # JSON schema
//
//	{
//	  "database_path": "/home/me/.config/gophauth/auth.db",
//	  "log_level": "debug",
//	  "busy_timeout": "5s"
//	}
package config
