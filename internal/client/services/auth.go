// Package services contains application services for the client.
// This file defines the authentication flow: login, registration with
// auto-login, logout, and the session context resolved at startup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// AuthService drives the authentication state machine.
//
// Contract:
//   - Login: two-step lookup (username, then username+password), then session write.
//   - Register: validate, pre-check uniqueness, insert and write the session
//     in one transaction; success leaves the user logged in.
//   - Logout: clear the session; calling it while logged out is a no-op.
//   - State/CurrentUser: the in-memory session context.
//
// Failures are matched with errors.Is against the sentinels in package common.
// A failed attempt never changes the persisted state. Implementations are not
// safe for concurrent use; callers run one action at a time.
type AuthService interface {
	State() State
	CurrentUser() (string, bool)
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password, confirmPassword string) error
	Logout(ctx context.Context) error
	InstallationID(ctx context.Context) (string, error)
}

type authService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger

	state    State
	username string
}

// NewAuthService builds the service and resolves the initial state from the
// persisted session marker: present means Authenticated, anything else
// means Unauthenticated.
func NewAuthService(ctx context.Context, db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) AuthService {
	a := &authService{db: db, repos: repos, logger: logger, state: StateUnauthenticated}

	if username, ok := a.flag(db).CurrentUser(ctx); ok {
		a.username = username
		a.state = StateAuthenticated
	}
	logger.Debug(ctx, "initial auth state resolved", "state", a.state, "user", a.username)

	return a
}

func (a *authService) flag(db dbx.DBTX) *session.Flag {
	return session.NewFlag(a.repos.Metadata(db), a.logger)
}

func (a *authService) State() State {
	return a.state
}

func (a *authService) CurrentUser() (string, bool) {
	if a.state != StateAuthenticated {
		return "", false
	}
	return a.username, true
}

func (a *authService) setState(ctx context.Context, to State) {
	if a.state == to {
		return
	}
	a.logger.Debug(ctx, "auth state changed", "from", a.state, "to", to)
	a.state = to
}

func (a *authService) storeError(ctx context.Context, op string, err error) error {
	a.logger.Error(ctx, "store failure", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", common.ErrStore, op, err)
}

// Login authenticates an existing user and persists the session marker.
func (a *authService) Login(ctx context.Context, username, password string) error {
	if a.state == StateAuthenticated {
		return common.ErrAlreadyAuthenticated
	}
	if username == "" || password == "" {
		return common.ErrRequiredField
	}

	a.setState(ctx, StateAuthenticating)
	if err := a.login(ctx, username, password); err != nil {
		a.setState(ctx, StateUnauthenticated)
		return err
	}

	a.username = username
	a.setState(ctx, StateAuthenticated)
	a.logger.Info(ctx, "login successful", "user", username)
	return nil
}

func (a *authService) login(ctx context.Context, username, password string) error {
	repo := a.repos.Users(a.db)

	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		return a.storeError(ctx, "login", err)
	}
	if user == nil {
		return common.ErrUnknownUser
	}

	valid, err := repo.FindByUsernameAndPassword(ctx, username, password)
	if err != nil {
		return a.storeError(ctx, "login", err)
	}
	if valid == nil {
		return common.ErrInvalidCredentials
	}

	if err := a.flag(a.db).SetCurrentUser(ctx, username); err != nil {
		return a.storeError(ctx, "login", err)
	}
	return nil
}

// Register creates the account and logs it in.
func (a *authService) Register(ctx context.Context, username, password, confirmPassword string) error {
	if a.state == StateAuthenticated {
		return common.ErrAlreadyAuthenticated
	}
	if username == "" || password == "" || confirmPassword == "" {
		return common.ErrRequiredField
	}
	if password != confirmPassword {
		return common.ErrPasswordMismatch
	}

	a.setState(ctx, StateAuthenticating)
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.repos.Users(tx)

		existing, err := repo.FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return common.ErrDuplicateUsername
		}

		if _, err := repo.Insert(ctx, username, password); err != nil {
			return err
		}

		return a.flag(tx).SetCurrentUser(ctx, username)
	})
	if err != nil {
		a.setState(ctx, StateUnauthenticated)
		if errors.Is(err, common.ErrDuplicateUsername) {
			return common.ErrDuplicateUsername
		}
		return a.storeError(ctx, "register", err)
	}

	a.username = username
	a.setState(ctx, StateAuthenticated)
	a.logger.Info(ctx, "registration successful", "user", username)
	return nil
}

// Logout clears the session marker.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.flag(a.db).ClearCurrentUser(ctx); err != nil {
		return a.storeError(ctx, "logout", err)
	}

	if a.username != "" {
		a.logger.Info(ctx, "logged out", "user", a.username)
	}
	a.username = ""
	a.setState(ctx, StateUnauthenticated)
	return nil
}

// InstallationID returns the identifier of this local database.
func (a *authService) InstallationID(ctx context.Context) (string, error) {
	id, err := client.InstallationID(ctx, a.repos.Metadata(a.db))
	if err != nil {
		return "", a.storeError(ctx, "installation id", err)
	}
	return id, nil
}
