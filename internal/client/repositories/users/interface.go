package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// Repository describes lookups and inserts on the users table.
type Repository interface {
	// FindByUsername returns the user with exactly this username, or nil.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByUsernameAndPassword returns the user only if both fields match, or nil.
	FindByUsernameAndPassword(ctx context.Context, username, password string) (*models.User, error)

	// Insert creates a row and returns it with its assigned ID. A taken
	// username yields common.ErrDuplicateUsername.
	Insert(ctx context.Context, username, password string) (*models.User, error)
}
