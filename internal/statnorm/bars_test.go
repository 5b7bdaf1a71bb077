package statnorm_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/statnorm"
)

type BuildBarsTestSuite struct {
	suite.Suite
}

func (s *BuildBarsTestSuite) TestNilTotalsYieldsZeroBars() {
	bars := statnorm.BuildBars(nil, nil)

	s.Len(bars, len(entities.DefenseTypes)+len(entities.ResistanceTypes)+8)
	for _, bar := range bars {
		s.Equal(0.0, bar.Value, "bar %s/%s", bar.Category, bar.Name)
		s.Equal("0.0%", bar.Label)
		s.False(bar.Milestone)
	}
}

func (s *BuildBarsTestSuite) TestDefenseBarsUseDefenseCap() {
	totals := entities.ZeroTotals()
	totals.Defense["smashing"] = 45
	totals.Defense["fire"] = 30

	bars := statnorm.BuildBars(totals, &entities.ArchetypeCaps{Defense: 45})

	byName := barsByName(bars, statnorm.CategoryDefense)
	s.Equal(statnorm.StatusAtCap, byName["smashing"].Stat.CapStatus)
	s.Equal(100.0, byName["smashing"].Stat.PercentOfCap)
	s.Equal(statnorm.StatusNormal, byName["fire"].Stat.CapStatus)
	s.InDelta(66.67, byName["fire"].Stat.PercentOfCap, 0.01)
}

func (s *BuildBarsTestSuite) TestResistanceBarsUseResistanceCap() {
	totals := entities.ZeroTotals()
	totals.Resistance["lethal"] = 95

	bars := statnorm.BuildBars(totals, &entities.ArchetypeCaps{Resistance: 75})

	byName := barsByName(bars, statnorm.CategoryResistance)
	s.Equal(statnorm.StatusOverCap, byName["lethal"].Stat.CapStatus)
	s.Equal(100.0, byName["lethal"].Stat.PercentOfCap)
}

func (s *BuildBarsTestSuite) TestNegativeDefenseKeepsSignedLabel() {
	totals := entities.ZeroTotals()
	totals.Defense["psionic"] = -12.5

	bars := statnorm.BuildBars(totals, &entities.ArchetypeCaps{Defense: 45})

	bar := barsByName(bars, statnorm.CategoryDefense)["psionic"]
	s.Equal("-12.5%", bar.Label)
	s.Equal(0.0, bar.Stat.ClampedValue)
	s.Equal(0.0, bar.Stat.PercentOfCap)
}

func (s *BuildBarsTestSuite) TestRechargeMilestone() {
	totals := entities.ZeroTotals()
	totals.GlobalRecharge = 72.5

	bars := statnorm.BuildBars(totals, nil)

	bar := barsByName(bars, statnorm.CategoryGlobals)["globalRecharge"]
	s.True(bar.Milestone)

	totals.GlobalRecharge = 69.9
	bars = statnorm.BuildBars(totals, nil)
	s.False(barsByName(bars, statnorm.CategoryGlobals)["globalRecharge"].Milestone)
}

func (s *BuildBarsTestSuite) TestMissingCapsProduceUncappedBars() {
	totals := entities.ZeroTotals()
	totals.Defense["melee"] = 50

	bars := statnorm.BuildBars(totals, nil)

	bar := barsByName(bars, statnorm.CategoryDefense)["melee"]
	s.Equal(statnorm.StatusNormal, bar.Stat.CapStatus)
	s.Equal(0.0, bar.Stat.PercentOfCap)
}

func barsByName(bars []statnorm.Bar, category string) map[string]statnorm.Bar {
	out := make(map[string]statnorm.Bar)
	for _, bar := range bars {
		if bar.Category == category {
			out[bar.Name] = bar
		}
	}
	return out
}

func TestBuildBarsSuite(t *testing.T) {
	suite.Run(t, new(BuildBarsTestSuite))
}
