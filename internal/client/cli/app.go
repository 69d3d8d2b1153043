package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// Screen is the UI position the prompt reflects.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenHome     Screen = "home"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	logger      logging.Logger
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
	screen      Screen
}

// NewApp opens (and initializes) the database and resolves the initial
// authentication state.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.EnsureDatabaseDir(); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := client.OpenDatabase(ctx, c.DatabasePath, c.BusyTimeout, logger)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	as := services.NewAuthService(ctx, db, repomanager.NewSQLiteRepositoryManager(), logger)

	return &App{
		config:      c,
		authService: as,
		logger:      logger,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run shows the initial screen and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.authService.CurrentUser()
	return ok
}

func (a *App) getStatus() string {
	if user, ok := a.authService.CurrentUser(); ok {
		return fmt.Sprintf("(%s %s)", user, a.screen)
	}
	return fmt.Sprintf("(%s)", a.screen)
}

// Root picks the initial screen from the session context and starts the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to gophauth (type 'help' for commands)")

	if a.isLoggedIn() {
		_ = a.Home(ctx)
	} else {
		a.screen = ScreenLogin
		fmt.Fprintln(a.out, "Please log in. Don't have an account? Type 'register'.")
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
