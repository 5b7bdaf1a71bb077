// Package session owns the per-session store pairs: it creates, hydrates,
// and tears down the build and preference stores together with their
// persistence and recalculation wiring
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/paragonforge/planner-api/internal/clients/calculation"
	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/errors"
	"github.com/paragonforge/planner-api/internal/pkg/clock"
	"github.com/paragonforge/planner-api/internal/pkg/idgen"
	"github.com/paragonforge/planner-api/internal/recalc"
	"github.com/paragonforge/planner-api/internal/storage"
	"github.com/paragonforge/planner-api/internal/stores/build"
	"github.com/paragonforge/planner-api/internal/stores/persist"
	"github.com/paragonforge/planner-api/internal/stores/uiprefs"
)

// Record keys within a session's storage namespace
const (
	buildRecordKey = "character-build-storage"
	prefsRecordKey = "ui-preferences-storage"

	buildRecordVersion = 1
	prefsRecordVersion = 1
)

// persistTimeout bounds each best-effort storage write
const persistTimeout = 5 * time.Second

// Config holds the dependencies for the session manager
type Config struct {
	Storage     storage.Store
	Calculation calculation.Client
	// DebounceWindow overrides the recalculation quiescence window
	DebounceWindow time.Duration
	// IDGen is optional; defaults to UUID session IDs
	IDGen idgen.Generator
	// Clock is optional; defaults to the system clock
	Clock clock.Clock
	// Logger is optional; defaults to slog.Default()
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided and fills in
// defaults for the optional ones
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Storage == nil {
		vb.RequiredField("Storage")
	}
	if c.Calculation == nil {
		vb.RequiredField("Calculation")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.IDGen == nil {
		c.IDGen = idgen.NewUUID("session")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}

// Session is one live editing session: a build store and a preference
// store with persistence and debounced recalculation attached
type Session struct {
	ID        string
	CreatedAt time.Time
	Build     *build.Store
	Prefs     *uiprefs.Store

	trigger *recalc.Trigger
	unsubs  []func()
}

// Retry re-issues the calculation for the current build, bypassing the
// debounce window. Used after a failed calculation.
func (s *Session) Retry() {
	s.trigger.Recalculate()
}

func (s *Session) close() {
	s.trigger.Close()
	for _, unsub := range s.unsubs {
		unsub()
	}
}

// Manager creates and tracks live sessions
type Manager struct {
	storage     storage.Store
	calculation calculation.Client
	window      time.Duration
	idgen       idgen.Generator
	clock       clock.Clock
	logger      *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager
func NewManager(cfg *Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Manager{
		storage:     cfg.Storage,
		calculation: cfg.Calculation,
		window:      cfg.DebounceWindow,
		idgen:       cfg.IDGen,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
		sessions:    make(map[string]*Session),
	}, nil
}

// Create starts a fresh session with empty build state and default
// preferences
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	return m.open(ctx, m.idgen.Generate())
}

// Open resumes the session with the given ID, hydrating its stores from
// persisted storage. A live session with that ID is returned as is; an
// unknown ID starts from persisted records, falling back to defaults when
// none exist.
func (m *Manager) Open(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}

	m.mu.RLock()
	existing, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if ok {
		return existing, nil
	}

	return m.open(ctx, sessionID)
}

// Get returns the live session with the given ID
func (m *Manager) Get(sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, errors.NotFoundf("session %s not found", sessionID)
	}
	return session, nil
}

// Close tears down the session: the recalc trigger is cancelled and the
// persisters detached. Persisted records remain, so the session can be
// reopened later.
func (m *Manager) Close(sessionID string) error {
	m.mu.Lock()
	session, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		return errors.NotFoundf("session %s not found", sessionID)
	}

	session.close()
	return nil
}

// Shutdown tears down every live session
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}

func (m *Manager) open(ctx context.Context, sessionID string) (*Session, error) {
	buildPersister, err := persist.New(&persist.Config[entities.BuildState, build.PersistedState]{
		Key:        m.recordKey(sessionID, buildRecordKey),
		Version:    buildRecordVersion,
		Backend:    m.storage,
		Partialize: build.Partialize,
		Logger:     m.logger,
	})
	if err != nil {
		return nil, err
	}

	prefsPersister, err := persist.New(&persist.Config[entities.UIPreferenceState, entities.UIPreferenceState]{
		Key:     m.recordKey(sessionID, prefsRecordKey),
		Version: prefsRecordVersion,
		Backend: m.storage,
		Partialize: func(s entities.UIPreferenceState) entities.UIPreferenceState {
			return s
		},
		Logger: m.logger,
	})
	if err != nil {
		return nil, err
	}

	buildStore, err := m.hydrateBuild(ctx, buildPersister)
	if err != nil {
		return nil, err
	}
	prefsStore, err := m.hydratePrefs(ctx, prefsPersister)
	if err != nil {
		return nil, err
	}

	trigger, err := recalc.New(&recalc.Config{
		Store:  buildStore,
		Client: m.calculation,
		Window: m.window,
		Logger: m.logger,
	})
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        sessionID,
		CreatedAt: m.clock.Now(),
		Build:     buildStore,
		Prefs:     prefsStore,
		trigger:   trigger,
	}

	// Persist after every content mutation. The in-memory state is already
	// visible to subscribers; a failed write only logs.
	var lastPersisted uint64
	var persistMu sync.Mutex
	session.unsubs = append(session.unsubs, buildStore.Subscribe(func(snap build.Snapshot) {
		persistMu.Lock()
		skip := snap.Revision == lastPersisted
		if !skip {
			lastPersisted = snap.Revision
		}
		persistMu.Unlock()
		if skip {
			return
		}
		writeCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		_ = buildPersister.Write(writeCtx, snap.State)
	}))

	session.unsubs = append(session.unsubs, prefsStore.Subscribe(func(state entities.UIPreferenceState) {
		writeCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		_ = prefsPersister.Write(writeCtx, state)
	}))

	// A concurrent open for the same ID may have won while this one was
	// hydrating; keep the registered session and tear this one down so only
	// one trigger and persister pair stays attached to the storage keys.
	m.mu.Lock()
	if existing, ok := m.sessions[sessionID]; ok {
		m.mu.Unlock()
		session.close()
		return existing, nil
	}
	m.sessions[sessionID] = session
	m.mu.Unlock()

	m.logger.Info("session opened", "session_id", sessionID)
	return session, nil
}

func (m *Manager) hydrateBuild(ctx context.Context, p *persist.Persister[entities.BuildState, build.PersistedState]) (*build.Store, error) {
	persisted, found, err := p.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load persisted build")
	}
	if !found {
		return build.New(), nil
	}
	return build.NewWithState(persisted.State()), nil
}

func (m *Manager) hydratePrefs(ctx context.Context, p *persist.Persister[entities.UIPreferenceState, entities.UIPreferenceState]) (*uiprefs.Store, error) {
	persisted, found, err := p.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load persisted preferences")
	}
	if !found {
		return uiprefs.New(), nil
	}
	return uiprefs.NewWithState(persisted), nil
}

func (m *Manager) recordKey(sessionID, record string) string {
	return fmt.Sprintf("planner:session:%s:%s", sessionID, record)
}
