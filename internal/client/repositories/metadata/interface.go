// Package metadata is a small key/value table in the local SQLite store.
// The session keeps its credential token here.
package metadata

import (
	"context"
)

// Repository reads and writes string values by key.
//
// Get reports found=false (and no error) for a missing key. Delete of a
// missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
