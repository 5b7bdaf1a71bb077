package statnorm

import "github.com/paragonforge/planner-api/internal/entities"

// rechargeMilestone is the named global-recharge threshold surfaced as a
// boolean indicator on the recharge bar
const rechargeMilestone = 70.0

// Bar categories
const (
	CategoryDefense    = "defense"
	CategoryResistance = "resistance"
	CategoryVitals     = "vitals"
	CategoryGlobals    = "globals"
)

// Bar is one display row of a stat panel
type Bar struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	// Label is the signed numeric text shown alongside the bar
	Label     string  `json:"label"`
	Stat      BarStat `json:"stat"`
	Milestone bool    `json:"milestone,omitempty"`
}

// BuildBars assembles the full stat-panel bar list from calculated totals
// and the selected archetype's caps. Either argument may be nil; missing
// caps produce uncapped bars.
func BuildBars(totals *entities.CalculatedTotals, caps *entities.ArchetypeCaps) []Bar {
	if totals == nil {
		totals = entities.ZeroTotals()
	}

	var defenseCap, resistanceCap, rechargeCap float64
	if caps != nil {
		defenseCap = caps.Defense
		resistanceCap = caps.Resistance
		rechargeCap = caps.Recharge
	}

	bars := make([]Bar, 0, len(entities.DefenseTypes)+len(entities.ResistanceTypes)+6)

	for _, dt := range entities.DefenseTypes {
		bars = append(bars, makeBar(CategoryDefense, dt, totals.Defense[dt], defenseCap))
	}
	for _, rt := range entities.ResistanceTypes {
		bars = append(bars, makeBar(CategoryResistance, rt, totals.Resistance[rt], resistanceCap))
	}

	bars = append(bars,
		makeBar(CategoryVitals, "maxHP", totals.MaxHP, capOrZero(caps, func(c *entities.ArchetypeCaps) float64 { return c.HP })),
		makeBar(CategoryVitals, "maxEndurance", totals.MaxEndurance, 0),
		makeBar(CategoryVitals, "regeneration", totals.Regeneration, capOrZero(caps, func(c *entities.ArchetypeCaps) float64 { return c.Regeneration })),
		makeBar(CategoryVitals, "recovery", totals.Recovery, capOrZero(caps, func(c *entities.ArchetypeCaps) float64 { return c.Recovery })),
	)

	recharge := makeBar(CategoryGlobals, "globalRecharge", totals.GlobalRecharge, rechargeCap)
	recharge.Milestone = MilestoneReached(totals.GlobalRecharge, rechargeMilestone)
	bars = append(bars,
		recharge,
		makeBar(CategoryGlobals, "globalDamage", totals.GlobalDamage, capOrZero(caps, func(c *entities.ArchetypeCaps) float64 { return c.Damage })),
		makeBar(CategoryGlobals, "globalAccuracy", totals.GlobalAccuracy, 0),
		makeBar(CategoryGlobals, "globalToHit", totals.GlobalToHit, 0),
	)

	return bars
}

func makeBar(category, name string, value, cap float64) Bar {
	return Bar{
		Category: category,
		Name:     name,
		Value:    value,
		Label:    FormatSignedPercent(value),
		Stat:     Normalize(value, cap),
	}
}

func capOrZero(caps *entities.ArchetypeCaps, pick func(*entities.ArchetypeCaps) float64) float64 {
	if caps == nil {
		return 0
	}
	return pick(caps)
}
