// Package client bootstraps the local SQLite database used by the CLI.
//
// OpenDatabase opens the file with the pure-Go modernc driver and calls
// Initialize, which is safe to run on every start: it enables WAL on a fresh
// database, applies the embedded goose migrations (a no-op when up to date)
// and reports whether the schema already existed.
//
// InstallationID returns the identifier generated the first time a database
// is initialized; it is stored in the metadata table and never changes.
package client
