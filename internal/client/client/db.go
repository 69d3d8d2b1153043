package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/gophauth/internal/client/migrations"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/logging"

	_ "modernc.org/sqlite"
)

// InstallationIDKey is the metadata key holding the installation identifier.
const InstallationIDKey = "installation_id"

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, ".")
}

// Initialize makes sure the schema exists. It can be called any number of
// times; rows are never touched.
func Initialize(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	var name string
	exists := true
	err := db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name='users'`).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	if !exists {
		var mode string
		if err := db.QueryRowContext(ctx, `PRAGMA journal_mode = WAL`).Scan(&mode); err != nil {
			return fmt.Errorf("failed to enable WAL: %w", err)
		}
		logger.Debug(ctx, "journal mode set", "mode", mode)
	}

	if err := RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if exists {
		logger.Info(ctx, "database already initialized")
	} else {
		logger.Info(ctx, "database initialized")
	}
	return nil
}

func buildDSN(path string, busyTimeout time.Duration) string {
	if busyTimeout <= 0 {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)", path, sep, busyTimeout.Milliseconds())
}

// OpenDatabase opens (creating if needed) the SQLite file at path and
// initializes it. The caller owns the returned handle.
func OpenDatabase(ctx context.Context, path string, busyTimeout time.Duration, logger logging.Logger) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("database path is required")
	}

	db, err := sql.Open("sqlite", buildDSN(path, busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Initialize(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// InstallationID returns the stored installation identifier, generating and
// saving a new UUID when none (or an unparsable one) is present.
func InstallationID(ctx context.Context, repo metadata.Repository) (string, error) {
	raw, err := repo.Get(ctx, InstallationIDKey)
	if err != nil {
		return "", err
	}
	if raw != nil {
		if id, err := uuid.ParseBytes(raw); err == nil {
			return id.String(), nil
		}
	}

	id := uuid.NewString()
	if err := repo.Set(ctx, InstallationIDKey, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}
