// Package storage defines the key-value record store backing persisted
// planner state
package storage

//go:generate mockgen -destination=mock/mock_store.go -package=storagemock github.com/paragonforge/planner-api/internal/storage Store

import "context"

// Store is a minimal key-value record store.
// Values are opaque byte records; callers own serialization.
type Store interface {
	// Get retrieves the record stored under key
	// Returns errors.NotFound when no record exists
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the record under key, replacing any existing record
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the record under key; deleting a missing key is not
	// an error
	Delete(ctx context.Context, key string) error
}
