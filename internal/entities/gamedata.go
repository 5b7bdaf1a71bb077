// Package entities holds the core domain types for the build planner
package entities

// PowersetType classifies a powerset's role within a build
type PowersetType string

// Powerset types
const (
	PowersetTypePrimary   PowersetType = "primary"
	PowersetTypeSecondary PowersetType = "secondary"
	PowersetTypePool      PowersetType = "pool"
	PowersetTypeAncillary PowersetType = "ancillary"
	PowersetTypeEpic      PowersetType = "epic"
	PowersetTypeInherent  PowersetType = "inherent"
)

// EnhancementType classifies an enhancement's grade
type EnhancementType string

// Enhancement types
const (
	EnhancementTypeTraining     EnhancementType = "TO"
	EnhancementTypeDualOrigin   EnhancementType = "DO"
	EnhancementTypeSingleOrigin EnhancementType = "SO"
	EnhancementTypeInvention    EnhancementType = "IO"
)

// Archetype is a character class defining base stats and caps.
// Reference data fetched from the backend; never mutated by the client.
type Archetype struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	DisplayName string              `json:"displayName"`
	Modifiers   *ArchetypeModifiers `json:"modifiers,omitempty"`
	Caps        *ArchetypeCaps      `json:"caps,omitempty"`
}

// ArchetypeModifiers holds the archetype's base stat modifiers
type ArchetypeModifiers struct {
	BaseHP       float64 `json:"baseHP"`
	BaseRegen    float64 `json:"baseRegen"`
	BaseRecovery float64 `json:"baseRecovery"`
	BaseThreat   float64 `json:"baseThreat"`
}

// ArchetypeCaps holds the maximum meaningful value per stat for an archetype
type ArchetypeCaps struct {
	Damage       float64 `json:"damage"`
	Resistance   float64 `json:"resistance"`
	Defense      float64 `json:"defense"`
	HP           float64 `json:"hp"`
	Regeneration float64 `json:"regeneration"`
	Recovery     float64 `json:"recovery"`
	Recharge     float64 `json:"recharge"`
}

// Powerset is a themed group of powers belonging to an archetype
type Powerset struct {
	ID          string       `json:"id"`
	ArchetypeID string       `json:"archetypeId"`
	Name        string       `json:"name"`
	Type        PowersetType `json:"type"`
	Description string       `json:"description,omitempty"`
}

// Power is an individual selectable ability
type Power struct {
	ID             string   `json:"id"`
	PowersetID     string   `json:"powersetId"`
	Name           string   `json:"name"`
	LevelAvailable int32    `json:"levelAvailable"`
	Prerequisites  []string `json:"prerequisites,omitempty"`
	Effects        []Effect `json:"effects,omitempty"`
	// Priority orders inherent powers for display
	Priority *int32 `json:"priority,omitempty"`
}

// Effect is a single attribute modification granted by a power
type Effect struct {
	Attribute string  `json:"attribute"`
	Magnitude float64 `json:"magnitude"`
}

// Origin is a character origin reference
type Origin struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Alignment is a character alignment reference
type Alignment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Enhancement is an item placed in a slot to modify a power's effects
type Enhancement struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Type    EnhancementType    `json:"type"`
	SetID   string             `json:"setId,omitempty"`
	Bonuses []EnhancementBonus `json:"bonuses,omitempty"`
}

// EnhancementBonus is a single (attribute, percentage) pair on an enhancement
type EnhancementBonus struct {
	Attribute  string  `json:"attribute"`
	Percentage float64 `json:"percentage"`
}

// EnhancementSet groups invention enhancements that grant set bonuses
// when multiple pieces are slotted into the same power
type EnhancementSet struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Bonuses []SetBonus `json:"bonuses,omitempty"`
}

// SetBonus is granted once SlottedCount pieces of the set share a power
type SetBonus struct {
	Attribute    string  `json:"attribute"`
	Percentage   float64 `json:"percentage"`
	SlottedCount int32   `json:"slottedCount"`
}
