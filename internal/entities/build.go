package entities

// Build limits enforced by the build store
const (
	MinLevel         int32 = 1
	MaxLevel         int32 = 50
	MaxSlotsPerPower       = 6
	PoolSlotCount          = 4
)

// Slot is a per-power enhancement attachment point
type Slot struct {
	Enhancement *Enhancement `json:"enhancement,omitempty"`
	Level       int32        `json:"level"`
}

// PowerEntry is a taken power with its slots, in selection order
type PowerEntry struct {
	Power      *Power `json:"power"`
	LevelTaken int32  `json:"levelTaken"`
	Slots      []Slot `json:"slots"`
}

// BuildState is the in-progress character build being edited.
// Reference-data pointers (archetype, powersets, powers, enhancements) are
// immutable and shared between copies; everything mutable is deep-copied
// by Clone.
type BuildState struct {
	Name              string                   `json:"name"`
	Archetype         *Archetype               `json:"archetype"`
	Origin            *Origin                  `json:"origin"`
	Alignment         *Alignment               `json:"alignment"`
	Level             int32                    `json:"level"`
	PrimaryPowerset   *Powerset                `json:"primaryPowerset"`
	SecondaryPowerset *Powerset                `json:"secondaryPowerset"`
	PoolPowersets     [PoolSlotCount]*Powerset `json:"poolPowersets"`
	AncillaryPowerset *Powerset                `json:"ancillaryPowerset"`
	Powers            []PowerEntry             `json:"powers"`
	Totals            *CalculatedTotals        `json:"totals,omitempty"`
	IsCalculating     bool                     `json:"isCalculating"`
}

// NewBuildState returns the documented empty build
func NewBuildState() BuildState {
	return BuildState{
		Level:  MinLevel,
		Powers: []PowerEntry{},
	}
}

// Clone returns a copy whose nested power and slot lists are independent
// of the receiver's
func (b BuildState) Clone() BuildState {
	out := b
	out.Powers = ClonePowers(b.Powers)
	out.Totals = b.Totals.Clone()
	return out
}

// ClonePowers deep-copies a power entry list including each entry's slots
func ClonePowers(powers []PowerEntry) []PowerEntry {
	out := make([]PowerEntry, len(powers))
	copy(out, powers)
	for i := range out {
		slots := make([]Slot, len(out[i].Slots))
		copy(slots, out[i].Slots)
		out[i].Slots = slots
	}
	return out
}

// BuildDocument is the serialized form of a build used for export and import
type BuildDocument struct {
	Character CharacterBlock    `json:"character"`
	Powersets PowersetsBlock    `json:"powersets"`
	Powers    []PowerEntry      `json:"powers"`
	Totals    *CalculatedTotals `json:"totals,omitempty"`
}

// CharacterBlock holds the identity fields of an exported build
type CharacterBlock struct {
	Name      string     `json:"name"`
	Archetype *Archetype `json:"archetype"`
	Origin    *Origin    `json:"origin"`
	Alignment *Alignment `json:"alignment"`
	Level     int32      `json:"level"`
}

// PowersetsBlock holds the four powerset selections of an exported build
type PowersetsBlock struct {
	Primary   *Powerset                `json:"primary"`
	Secondary *Powerset                `json:"secondary"`
	Pools     [PoolSlotCount]*Powerset `json:"pools"`
	Ancillary *Powerset                `json:"ancillary"`
}
