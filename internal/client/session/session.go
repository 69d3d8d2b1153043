// Package session persists which user, if any, is logged in on this device.
//
// The marker is a single metadata entry under Key holding
// {"username": "<name>"}. At most one marker exists at a time.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// Key is the metadata key of the session marker.
const Key = "user"

// Flag reads and writes the session marker through a metadata repository.
type Flag struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewFlag(repo metadata.Repository, logger logging.Logger) *Flag {
	return &Flag{repo: repo, logger: logger}
}

// CurrentUser returns the logged-in username. It never fails: an absent,
// malformed or unreadable marker reports ("", false).
func (f *Flag) CurrentUser(ctx context.Context) (string, bool) {
	raw, err := f.repo.Get(ctx, Key)
	if err != nil {
		f.logger.Warn(ctx, "session marker unreadable", "error", err)
		return "", false
	}
	if raw == nil {
		return "", false
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		f.logger.Warn(ctx, "session marker malformed", "error", err)
		return "", false
	}
	if s.Username == "" {
		f.logger.Warn(ctx, "session marker has no username")
		return "", false
	}
	return s.Username, true
}

// SetCurrentUser overwrites the marker.
func (f *Flag) SetCurrentUser(ctx context.Context, username string) error {
	raw, err := json.Marshal(models.Session{Username: username})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return f.repo.Set(ctx, Key, raw)
}

// ClearCurrentUser removes the marker; clearing an absent marker is a no-op.
func (f *Flag) ClearCurrentUser(ctx context.Context) error {
	return f.repo.Delete(ctx, Key)
}
