// Package recalc drives debounced build recalculation: it watches the build
// store, waits for edits to go quiet, and writes the calculated totals back
package recalc

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/paragonforge/planner-api/internal/clients/calculation"
	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/errors"
	"github.com/paragonforge/planner-api/internal/stores/build"
)

// DefaultWindow is the quiescence window after the last edit before a
// calculation request is issued
const DefaultWindow = 200 * time.Millisecond

// Config holds the dependencies for a Trigger
type Config struct {
	Store  *build.Store
	Client calculation.Client
	// Window overrides DefaultWindow when positive
	Window time.Duration
	// Logger is optional; defaults to slog.Default()
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

// Trigger debounces build edits into calculation requests.
//
// Results are applied in last-request-wins order: each issued request gets a
// monotonically increasing sequence number, and a response is discarded if a
// newer request has been issued since. There is no hard cancellation of
// in-flight requests, only this ignore-stale-response policy.
type Trigger struct {
	store  *build.Store
	client calculation.Client
	window time.Duration
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	timer        *time.Timer
	lastRevision uint64
	seq          uint64
	closed       bool

	unsubscribe func()
}

// New creates a trigger and subscribes it to the store
func New(cfg *Config) (*Trigger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	window := cfg.Window
	if window <= 0 {
		window = DefaultWindow
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &Trigger{
		store:  cfg.Store,
		client: cfg.Client,
		window: window,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
	t.unsubscribe = cfg.Store.Subscribe(t.onChange)

	return t, nil
}

// onChange restarts the quiescence timer on every content mutation. Totals
// and calculating-flag write-backs keep the previous revision and are
// ignored, which is what keeps the trigger from feeding back on itself.
func (t *Trigger) onChange(snap build.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || snap.Revision == t.lastRevision {
		return
	}
	t.lastRevision = snap.Revision

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.window, t.fire)
}

// Recalculate bypasses the debounce window and re-issues a calculation for
// the current state. Used for user-driven retry after a failure.
func (t *Trigger) Recalculate() {
	t.fire()
}

func (t *Trigger) fire() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.seq++
	seq := t.seq
	t.mu.Unlock()

	state := t.store.GetState()

	// Empty builds never hit the network; the zero snapshot is synthesized
	// locally. The flag reset matters when this path supersedes an in-flight
	// request, whose discarded response would otherwise leave it stuck true.
	if state.Archetype == nil || len(state.Powers) == 0 {
		if t.isLatest(seq) {
			t.store.SetTotals(entities.ZeroTotals())
			t.store.SetIsCalculating(false)
		}
		return
	}

	t.store.SetIsCalculating(true)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		totals, err := t.client.CalculateTotals(t.ctx, calculation.BuildRequest(state))

		if !t.isLatest(seq) {
			// A newer request owns the totals now; drop this response,
			// whatever it was.
			return
		}

		if err != nil {
			t.logger.Error("build calculation failed", "error", err)
			t.store.SetTotals(nil)
			t.store.SetIsCalculating(false)
			return
		}

		t.store.SetTotals(totals)
		t.store.SetIsCalculating(false)
	}()
}

func (t *Trigger) isLatest(seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.closed && seq == t.seq
}

// Close detaches the trigger from the store, cancels the pending timer and
// any in-flight request context, and waits for outstanding goroutines.
// No store write-backs happen after Close returns.
func (t *Trigger) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.mu.Unlock()

	t.unsubscribe()
	t.cancel()
	t.wg.Wait()
}
