package store

import (
	"context"

	"dotdb/internal/value"
)

// Backend is the storage adapter boundary. It is record-granular: every
// method loads or persists exactly one top-level record, except LoadAll
// and Clear which act on the whole document.
//
// The file backend implements record granularity over whole-document
// read/rewrite; the SQLite backend maps each record to one row. Both must
// yield identical observable semantics through this interface.
type Backend interface {
	// LoadRecord fetches the record named key. The second return is false
	// when no such record exists (not an error).
	LoadRecord(ctx context.Context, key string) (value.Value, bool, error)

	// SaveRecord upserts the record named key.
	SaveRecord(ctx context.Context, key string, v value.Value) error

	// DeleteRecord removes the record named key, reporting whether it existed.
	DeleteRecord(ctx context.Context, key string) (bool, error)

	// LoadAll returns the entire document as a top-level object.
	LoadAll(ctx context.Context) (value.Object, error)

	// Clear erases every record.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
