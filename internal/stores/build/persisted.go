package build

import "github.com/paragonforge/planner-api/internal/entities"

// PersistedState is the durable subset of the build state. Totals and the
// calculating flag are derived or transient and deliberately excluded.
type PersistedState struct {
	Name              string                                     `json:"name"`
	Archetype         *entities.Archetype                        `json:"archetype"`
	Origin            *entities.Origin                           `json:"origin"`
	Alignment         *entities.Alignment                        `json:"alignment"`
	Level             int32                                      `json:"level"`
	PrimaryPowerset   *entities.Powerset                         `json:"primaryPowerset"`
	SecondaryPowerset *entities.Powerset                         `json:"secondaryPowerset"`
	PoolPowersets     [entities.PoolSlotCount]*entities.Powerset `json:"poolPowersets"`
	AncillaryPowerset *entities.Powerset                         `json:"ancillaryPowerset"`
	Powers            []entities.PowerEntry                      `json:"powers"`
}

// Partialize projects the persisted subset out of a live build state
func Partialize(s entities.BuildState) PersistedState {
	return PersistedState{
		Name:              s.Name,
		Archetype:         s.Archetype,
		Origin:            s.Origin,
		Alignment:         s.Alignment,
		Level:             s.Level,
		PrimaryPowerset:   s.PrimaryPowerset,
		SecondaryPowerset: s.SecondaryPowerset,
		PoolPowersets:     s.PoolPowersets,
		AncillaryPowerset: s.AncillaryPowerset,
		Powers:            s.Powers,
	}
}

// State rebuilds a live build state from the persisted subset. Totals start
// empty and the calculating flag false.
func (p PersistedState) State() entities.BuildState {
	state := entities.NewBuildState()
	state.Name = p.Name
	state.Archetype = p.Archetype
	state.Origin = p.Origin
	state.Alignment = p.Alignment
	state.Level = p.Level
	if state.Level < entities.MinLevel {
		state.Level = entities.MinLevel
	}
	state.PrimaryPowerset = p.PrimaryPowerset
	state.SecondaryPowerset = p.SecondaryPowerset
	state.PoolPowersets = p.PoolPowersets
	state.AncillaryPowerset = p.AncillaryPowerset
	if p.Powers != nil {
		state.Powers = p.Powers
	}
	return state
}
