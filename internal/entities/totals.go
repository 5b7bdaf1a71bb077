package entities

// DefenseTypes lists every typed and positional defense category reported
// by the calculation backend
var DefenseTypes = []string{
	"smashing", "lethal", "fire", "cold", "energy", "negative", "psionic",
	"melee", "ranged", "aoe",
}

// ResistanceTypes lists every damage resistance category reported by the
// calculation backend
var ResistanceTypes = []string{
	"smashing", "lethal", "fire", "cold", "energy", "negative", "toxic", "psionic",
}

// CalculatedTotals is the backend-computed aggregate figures for a build.
// The client treats it as an opaque snapshot and never recomputes it
// locally, except for the zero-filled default for an empty build.
type CalculatedTotals struct {
	Defense        map[string]float64 `json:"defense"`
	Resistance     map[string]float64 `json:"resistance"`
	MaxHP          float64            `json:"maxHP"`
	MaxEndurance   float64            `json:"maxEndurance"`
	Regeneration   float64            `json:"regeneration"`
	Recovery       float64            `json:"recovery"`
	GlobalRecharge float64            `json:"globalRecharge"`
	GlobalDamage   float64            `json:"globalDamage"`
	GlobalAccuracy float64            `json:"globalAccuracy"`
	GlobalToHit    float64            `json:"globalToHit"`
}

// ZeroTotals returns the documented all-zero snapshot used for an empty
// build, with every defense and resistance category present
func ZeroTotals() *CalculatedTotals {
	t := &CalculatedTotals{
		Defense:    make(map[string]float64, len(DefenseTypes)),
		Resistance: make(map[string]float64, len(ResistanceTypes)),
	}
	for _, dt := range DefenseTypes {
		t.Defense[dt] = 0
	}
	for _, rt := range ResistanceTypes {
		t.Resistance[rt] = 0
	}
	return t
}

// Clone returns a copy with independent defense and resistance maps.
// Cloning a nil totals returns nil.
func (t *CalculatedTotals) Clone() *CalculatedTotals {
	if t == nil {
		return nil
	}
	out := *t
	out.Defense = make(map[string]float64, len(t.Defense))
	for k, v := range t.Defense {
		out.Defense[k] = v
	}
	out.Resistance = make(map[string]float64, len(t.Resistance))
	for k, v := range t.Resistance {
		out.Resistance[k] = v
	}
	return &out
}
