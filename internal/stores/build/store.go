// Package build implements the character build state store
package build

import (
	"sync"

	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/stores"
)

// Snapshot is the state delivered to subscribers after each mutation.
// Revision increases with every build-content mutation; totals and
// calculating-flag write-backs reuse the current revision so that
// persistence and recalculation subscribers can tell the two apart.
type Snapshot struct {
	State    entities.BuildState
	Revision uint64
}

// Store is the single source of truth for the build being edited.
//
// Out-of-bounds indices passed to any mutator are silently ignored, and
// out-of-range levels are clamped rather than rejected. UI-driven callers
// are expected to respect these bounds already; the store's job is to never
// end up in an invalid state even when a caller misbehaves.
type Store struct {
	mu       sync.RWMutex
	state    entities.BuildState
	revision uint64

	notifier stores.Notifier[Snapshot]
}

// New creates a store holding the documented empty build
func New() *Store {
	return NewWithState(entities.NewBuildState())
}

// NewWithState creates a store hydrated with the given state, used when
// resuming a persisted session
func NewWithState(state entities.BuildState) *Store {
	return &Store{state: state.Clone()}
}

// GetState returns a deep copy of the current build state
func (s *Store) GetState() entities.BuildState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Snapshot returns the current state together with its content revision
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state.Clone(), Revision: s.revision}
}

// Subscribe registers a listener invoked with a snapshot after every
// mutation. Returns the unsubscribe function.
func (s *Store) Subscribe(l func(Snapshot)) func() {
	return s.notifier.Subscribe(l)
}

// mutate applies fn under the write lock, bumps the content revision when
// requested, and notifies subscribers with a post-mutation snapshot. When fn
// reports no change (an ignored out-of-bounds index) nothing is bumped and
// no notification fires.
func (s *Store) mutate(bumpRevision bool, fn func(*entities.BuildState) bool) {
	s.mu.Lock()
	if !fn(&s.state) {
		s.mu.Unlock()
		return
	}
	if bumpRevision {
		s.revision++
	}
	snap := Snapshot{State: s.state.Clone(), Revision: s.revision}
	s.mu.Unlock()

	s.notifier.Notify(snap)
}

// SetName replaces the character name
func (s *Store) SetName(name string) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.Name = name
		return true
	})
}

// SetArchetype replaces the selected archetype
func (s *Store) SetArchetype(archetype *entities.Archetype) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.Archetype = archetype
		return true
	})
}

// SetOrigin replaces the selected origin
func (s *Store) SetOrigin(origin *entities.Origin) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.Origin = origin
		return true
	})
}

// SetAlignment replaces the selected alignment
func (s *Store) SetAlignment(alignment *entities.Alignment) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.Alignment = alignment
		return true
	})
}

// SetLevel sets the character level, silently clamped to [MinLevel, MaxLevel]
func (s *Store) SetLevel(level int32) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.Level = clampLevel(level)
		return true
	})
}

// SetPrimaryPowerset replaces the primary powerset
func (s *Store) SetPrimaryPowerset(ps *entities.Powerset) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.PrimaryPowerset = ps
		return true
	})
}

// SetSecondaryPowerset replaces the secondary powerset
func (s *Store) SetSecondaryPowerset(ps *entities.Powerset) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.SecondaryPowerset = ps
		return true
	})
}

// SetAncillaryPowerset replaces the ancillary powerset
func (s *Store) SetAncillaryPowerset(ps *entities.Powerset) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.AncillaryPowerset = ps
		return true
	})
}

// SetPoolPowerset replaces exactly the pool slot at index, leaving the other
// three untouched. Indices outside 0..3 are ignored. Duplicate powersets
// across slots are the caller's responsibility to prevent.
func (s *Store) SetPoolPowerset(index int, ps *entities.Powerset) {
	if index < 0 || index >= entities.PoolSlotCount {
		return
	}
	s.mutate(true, func(b *entities.BuildState) bool {
		b.PoolPowersets[index] = ps
		return true
	})
}

// AddPower appends a new power entry with an empty slot list. Duplicate
// powers are representable; the store never deduplicates.
func (s *Store) AddPower(power *entities.Power, levelTaken int32) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.Powers = append(b.Powers, entities.PowerEntry{
			Power:      power,
			LevelTaken: levelTaken,
			Slots:      []entities.Slot{},
		})
		return true
	})
}

// RemovePower removes the power entry at index
func (s *Store) RemovePower(index int) {
	s.mutate(true, func(b *entities.BuildState) bool {
		if index < 0 || index >= len(b.Powers) {
			return false
		}
		b.Powers = append(b.Powers[:index], b.Powers[index+1:]...)
		return true
	})
}

// UpdatePowerLevel replaces only the level-taken field of the entry at index
func (s *Store) UpdatePowerLevel(index int, levelTaken int32) {
	s.mutate(true, func(b *entities.BuildState) bool {
		if index < 0 || index >= len(b.Powers) {
			return false
		}
		b.Powers[index].LevelTaken = levelTaken
		return true
	})
}

// AddSlot appends an empty slot to the entry's slot list. The slot's level
// defaults to the current character level. Once the entry holds
// MaxSlotsPerPower slots the call is a no-op.
func (s *Store) AddSlot(powerIndex int) {
	s.mutate(true, func(b *entities.BuildState) bool {
		if powerIndex < 0 || powerIndex >= len(b.Powers) {
			return false
		}
		entry := &b.Powers[powerIndex]
		if len(entry.Slots) >= entities.MaxSlotsPerPower {
			return false
		}
		entry.Slots = append(entry.Slots, entities.Slot{Level: b.Level})
		return true
	})
}

// RemoveSlot removes the slot at the given position, shifting subsequent
// slots down
func (s *Store) RemoveSlot(powerIndex, slotIndex int) {
	s.mutate(true, func(b *entities.BuildState) bool {
		if powerIndex < 0 || powerIndex >= len(b.Powers) {
			return false
		}
		entry := &b.Powers[powerIndex]
		if slotIndex < 0 || slotIndex >= len(entry.Slots) {
			return false
		}
		entry.Slots = append(entry.Slots[:slotIndex], entry.Slots[slotIndex+1:]...)
		return true
	})
}

// SlotEnhancement overwrites the enhancement and level of an existing slot.
// The slot must have been created via AddSlot first.
func (s *Store) SlotEnhancement(powerIndex, slotIndex int, enhancement *entities.Enhancement, level int32) {
	s.mutate(true, func(b *entities.BuildState) bool {
		if powerIndex < 0 || powerIndex >= len(b.Powers) {
			return false
		}
		entry := &b.Powers[powerIndex]
		if slotIndex < 0 || slotIndex >= len(entry.Slots) {
			return false
		}
		entry.Slots[slotIndex].Enhancement = enhancement
		entry.Slots[slotIndex].Level = level
		return true
	})
}

// RemoveEnhancement clears the slot's enhancement, preserving its level
func (s *Store) RemoveEnhancement(powerIndex, slotIndex int) {
	s.mutate(true, func(b *entities.BuildState) bool {
		if powerIndex < 0 || powerIndex >= len(b.Powers) {
			return false
		}
		entry := &b.Powers[powerIndex]
		if slotIndex < 0 || slotIndex >= len(entry.Slots) {
			return false
		}
		entry.Slots[slotIndex].Enhancement = nil
		return true
	})
}

// SetTotals replaces the calculated totals snapshot. Used exclusively by
// the recalculation trigger; does not bump the content revision.
func (s *Store) SetTotals(totals *entities.CalculatedTotals) {
	s.mutate(false, func(b *entities.BuildState) bool {
		b.Totals = totals.Clone()
		return true
	})
}

// SetIsCalculating sets the transient calculation-in-flight flag. Does not
// bump the content revision.
func (s *Store) SetIsCalculating(calculating bool) {
	s.mutate(false, func(b *entities.BuildState) bool {
		b.IsCalculating = calculating
		return true
	})
}

// LoadBuild replaces every character, powerset, and power field from the
// document in one atomic update. Does not touch IsCalculating.
func (s *Store) LoadBuild(doc entities.BuildDocument) {
	s.mutate(true, func(b *entities.BuildState) bool {
		b.Name = doc.Character.Name
		b.Archetype = doc.Character.Archetype
		b.Origin = doc.Character.Origin
		b.Alignment = doc.Character.Alignment
		b.Level = clampLevel(doc.Character.Level)
		b.PrimaryPowerset = doc.Powersets.Primary
		b.SecondaryPowerset = doc.Powersets.Secondary
		b.PoolPowersets = doc.Powersets.Pools
		b.AncillaryPowerset = doc.Powersets.Ancillary
		b.Powers = entities.ClonePowers(doc.Powers)
		b.Totals = doc.Totals.Clone()
		return true
	})
}

// ClearBuild resets every field to the documented initial state
func (s *Store) ClearBuild() {
	s.mutate(true, func(b *entities.BuildState) bool {
		*b = entities.NewBuildState()
		return true
	})
}

// ExportBuild returns a document copied deeply enough that later store
// mutations never alter it
func (s *Store) ExportBuild() entities.BuildDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entities.BuildDocument{
		Character: entities.CharacterBlock{
			Name:      s.state.Name,
			Archetype: s.state.Archetype,
			Origin:    s.state.Origin,
			Alignment: s.state.Alignment,
			Level:     s.state.Level,
		},
		Powersets: entities.PowersetsBlock{
			Primary:   s.state.PrimaryPowerset,
			Secondary: s.state.SecondaryPowerset,
			Pools:     s.state.PoolPowersets,
			Ancillary: s.state.AncillaryPowerset,
		},
		Powers: entities.ClonePowers(s.state.Powers),
		Totals: s.state.Totals.Clone(),
	}
}

func clampLevel(level int32) int32 {
	if level < entities.MinLevel {
		return entities.MinLevel
	}
	if level > entities.MaxLevel {
		return entities.MaxLevel
	}
	return level
}
