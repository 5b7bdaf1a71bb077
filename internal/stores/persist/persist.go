// Package persist decorates a store with durable persistence of a declared
// subset of its state
package persist

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/paragonforge/planner-api/internal/errors"
	"github.com/paragonforge/planner-api/internal/storage"
)

// Envelope is the durable record layout: the projected state plus a schema
// version for forward migration
type Envelope[P any] struct {
	State   P   `json:"state"`
	Version int `json:"version"`
}

// Config holds the dependencies for a Persister.
// S is the live store state, P the persisted projection of it.
type Config[S, P any] struct {
	// Key the record is stored under
	Key string
	// Version written into the envelope
	Version int
	// Backend record store
	Backend storage.Store
	// Partialize projects the persisted subset out of the live state
	Partialize func(S) P
	// Logger is optional; defaults to slog.Default()
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config[S, P]) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Key == "" {
		vb.RequiredField("Key")
	}
	if c.Backend == nil {
		vb.RequiredField("Backend")
	}
	if c.Partialize == nil {
		vb.RequiredField("Partialize")
	}

	return vb.Build()
}

// Persister writes the projected subset of a store's state to a key-value
// backend after each mutation, and reads it back for hydration.
//
// Persistence is best effort: the in-memory mutation is already visible to
// subscribers by the time Write runs, and a failed write never undoes it.
type Persister[S, P any] struct {
	key        string
	version    int
	backend    storage.Store
	partialize func(S) P
	logger     *slog.Logger
}

// New creates a persister from the given config
func New[S, P any](cfg *Config[S, P]) (*Persister[S, P], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Persister[S, P]{
		key:        cfg.Key,
		version:    cfg.Version,
		backend:    cfg.Backend,
		partialize: cfg.Partialize,
		logger:     logger,
	}, nil
}

// Write serializes the projection of state into the configured record.
// Failures are logged and returned; callers running inside a subscription
// callback typically drop the error.
func (p *Persister[S, P]) Write(ctx context.Context, state S) error {
	envelope := Envelope[P]{
		State:   p.partialize(state),
		Version: p.version,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		p.logger.Error("failed to marshal persisted state", "key", p.key, "error", err)
		return errors.Wrapf(err, "failed to marshal record %q", p.key)
	}

	if err := p.backend.Set(ctx, p.key, data); err != nil {
		p.logger.Error("failed to persist state", "key", p.key, "error", err)
		return err
	}

	return nil
}

// Load reads the stored projection. The second return is false when no
// record exists. A corrupt record is treated as missing, with a warning,
// so hydration fails soft into the default state.
func (p *Persister[S, P]) Load(ctx context.Context) (P, bool, error) {
	var zero P

	data, err := p.backend.Get(ctx, p.key)
	if err != nil {
		if errors.IsNotFound(err) {
			return zero, false, nil
		}
		return zero, false, err
	}

	var envelope Envelope[P]
	if err := json.Unmarshal(data, &envelope); err != nil {
		p.logger.Warn("discarding corrupt persisted record", "key", p.key, "error", err)
		return zero, false, nil
	}

	return envelope.State, true, nil
}
