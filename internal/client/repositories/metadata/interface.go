// Package metadata is the local key/value area: small named blobs stored in
// the metadata table next to the credential table.
package metadata

import (
	"context"
)

// Repository stores opaque values by key.
//
// Get returns (nil, nil) when the key is absent. Set overwrites
// unconditionally. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
