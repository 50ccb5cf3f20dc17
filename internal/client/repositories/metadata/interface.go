// Package metadata stores raw key/value pairs in the vault's metadata table.
package metadata

import (
	"context"
)

// Repository is a byte-valued key/value store. Get reports a missing key
// with common.ErrorNotFound.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
