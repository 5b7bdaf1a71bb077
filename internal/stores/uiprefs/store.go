// Package uiprefs implements the display preference store
package uiprefs

import (
	"sync"

	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/stores"
)

// Store holds display preferences, independent of build content.
//
// The store itself accepts any value its setters are handed; the
// presentation layer is the guard for the column-layout bounds. Unlike the
// build store's level clamp, no runtime correction happens here.
type Store struct {
	mu    sync.RWMutex
	state entities.UIPreferenceState

	notifier stores.Notifier[entities.UIPreferenceState]
}

// New creates a store holding the default preferences
func New() *Store {
	return NewWithState(entities.NewUIPreferenceState())
}

// NewWithState creates a store hydrated with the given preferences
func NewWithState(state entities.UIPreferenceState) *Store {
	return &Store{state: state}
}

// GetState returns the current preferences
func (s *Store) GetState() entities.UIPreferenceState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a listener invoked with the full preference state
// after every mutation. Returns the unsubscribe function.
func (s *Store) Subscribe(l func(entities.UIPreferenceState)) func() {
	return s.notifier.Subscribe(l)
}

func (s *Store) mutate(fn func(*entities.UIPreferenceState)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state
	s.mu.Unlock()

	s.notifier.Notify(snap)
}

// SetColumnLayout sets the panel column count
func (s *Store) SetColumnLayout(columns int32) {
	s.mutate(func(p *entities.UIPreferenceState) {
		p.ColumnLayout = columns
	})
}

// SetSidebarCollapsed sets the sidebar collapsed flag
func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.mutate(func(p *entities.UIPreferenceState) {
		p.SidebarCollapsed = collapsed
	})
}

// ToggleSidebar flips the sidebar collapsed flag
func (s *Store) ToggleSidebar() {
	s.mutate(func(p *entities.UIPreferenceState) {
		p.SidebarCollapsed = !p.SidebarCollapsed
	})
}

// SetShowTotalsWindow sets the totals window visibility
func (s *Store) SetShowTotalsWindow(show bool) {
	s.mutate(func(p *entities.UIPreferenceState) {
		p.ShowTotalsWindow = show
	})
}

// SetShowSetBonusPanel sets the set bonus panel visibility
func (s *Store) SetShowSetBonusPanel(show bool) {
	s.mutate(func(p *entities.UIPreferenceState) {
		p.ShowSetBonusPanel = show
	})
}

// SetTheme sets the display theme
func (s *Store) SetTheme(theme entities.Theme) {
	s.mutate(func(p *entities.UIPreferenceState) {
		p.Theme = theme
	})
}
