package build_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/stores/build"
	"github.com/paragonforge/planner-api/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	store *build.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.store = build.New()
}

func (s *StoreTestSuite) testArchetype() *entities.Archetype {
	return &entities.Archetype{
		ID:   "arch_blaster",
		Name: "blaster",
		Caps: &entities.ArchetypeCaps{Defense: 45, Resistance: 75},
	}
}

func (s *StoreTestSuite) testPower(id string) *entities.Power {
	return &entities.Power{ID: id, Name: id, LevelAvailable: 1}
}

func (s *StoreTestSuite) TestInitialState() {
	state := s.store.GetState()

	s.Empty(state.Name)
	s.Nil(state.Archetype)
	s.Equal(entities.MinLevel, state.Level)
	s.Empty(state.Powers)
	s.Nil(state.Totals)
	s.False(state.IsCalculating)
	for i := range state.PoolPowersets {
		s.Nil(state.PoolPowersets[i])
	}
}

func (s *StoreTestSuite) TestSetName() {
	s.store.SetName("Frost Vector")
	s.Equal("Frost Vector", s.store.GetState().Name)
}

func (s *StoreTestSuite) TestSetLevelClamping() {
	s.Run("below minimum clamps to minimum", func() {
		s.store.SetLevel(0)
		s.Equal(entities.MinLevel, s.store.GetState().Level)

		s.store.SetLevel(-5)
		s.Equal(entities.MinLevel, s.store.GetState().Level)
	})

	s.Run("above maximum clamps to maximum", func() {
		s.store.SetLevel(100)
		s.Equal(entities.MaxLevel, s.store.GetState().Level)
	})

	s.Run("in-range value kept as is", func() {
		s.store.SetLevel(25)
		s.Equal(int32(25), s.store.GetState().Level)
	})
}

func (s *StoreTestSuite) TestPoolSlotsAreIndependent() {
	fly := &entities.Powerset{ID: "pool_flight", Type: entities.PowersetTypePool}
	speed := &entities.Powerset{ID: "pool_speed", Type: entities.PowersetTypePool}

	s.store.SetPoolPowerset(0, fly)
	s.store.SetPoolPowerset(2, speed)

	state := s.store.GetState()
	s.Equal("pool_flight", state.PoolPowersets[0].ID)
	s.Nil(state.PoolPowersets[1])
	s.Equal("pool_speed", state.PoolPowersets[2].ID)
	s.Nil(state.PoolPowersets[3])

	s.store.SetPoolPowerset(0, nil)
	state = s.store.GetState()
	s.Nil(state.PoolPowersets[0])
	s.Equal("pool_speed", state.PoolPowersets[2].ID)
}

func (s *StoreTestSuite) TestSetPoolPowersetIgnoresOutOfBounds() {
	fly := &entities.Powerset{ID: "pool_flight"}

	s.store.SetPoolPowerset(-1, fly)
	s.store.SetPoolPowerset(entities.PoolSlotCount, fly)

	state := s.store.GetState()
	for i := range state.PoolPowersets {
		s.Nil(state.PoolPowersets[i])
	}
}

func (s *StoreTestSuite) TestAddPowerStartsWithEmptySlots() {
	s.store.AddPower(s.testPower("power_blast"), 1)

	state := s.store.GetState()
	s.Require().Len(state.Powers, 1)
	s.Equal("power_blast", state.Powers[0].Power.ID)
	s.Equal(int32(1), state.Powers[0].LevelTaken)
	s.Empty(state.Powers[0].Slots)
}

func (s *StoreTestSuite) TestAddPowerAllowsDuplicates() {
	s.store.AddPower(s.testPower("power_blast"), 1)
	s.store.AddPower(s.testPower("power_blast"), 2)

	s.Len(s.store.GetState().Powers, 2)
}

func (s *StoreTestSuite) TestRemovePowerPreservesOrder() {
	s.store.AddPower(s.testPower("a"), 1)
	s.store.AddPower(s.testPower("b"), 2)
	s.store.AddPower(s.testPower("c"), 4)

	s.store.RemovePower(1)

	state := s.store.GetState()
	s.Require().Len(state.Powers, 2)
	s.Equal("a", state.Powers[0].Power.ID)
	s.Equal("c", state.Powers[1].Power.ID)
}

func (s *StoreTestSuite) TestRemovePowerIgnoresOutOfBounds() {
	s.store.AddPower(s.testPower("a"), 1)

	s.store.RemovePower(-1)
	s.store.RemovePower(1)

	s.Len(s.store.GetState().Powers, 1)
}

func (s *StoreTestSuite) TestUpdatePowerLevel() {
	s.store.AddPower(s.testPower("a"), 1)
	s.store.AddPower(s.testPower("b"), 2)

	s.store.UpdatePowerLevel(1, 22)

	state := s.store.GetState()
	s.Equal(int32(1), state.Powers[0].LevelTaken)
	s.Equal(int32(22), state.Powers[1].LevelTaken)
}

func (s *StoreTestSuite) TestAddSlotCapsAtMax() {
	s.store.AddPower(s.testPower("a"), 1)

	for i := 0; i < entities.MaxSlotsPerPower+1; i++ {
		s.store.AddSlot(0)
	}

	s.Len(s.store.GetState().Powers[0].Slots, entities.MaxSlotsPerPower)
}

func (s *StoreTestSuite) TestAddSlotDefaultsToCurrentLevel() {
	s.store.SetLevel(27)
	s.store.AddPower(s.testPower("a"), 1)

	s.store.AddSlot(0)

	slot := s.store.GetState().Powers[0].Slots[0]
	s.Nil(slot.Enhancement)
	s.Equal(int32(27), slot.Level)
}

func (s *StoreTestSuite) TestSlotEnhancementAndRemove() {
	s.store.AddPower(s.testPower("a"), 1)
	s.store.AddSlot(0)
	s.store.AddSlot(0)

	enh := &entities.Enhancement{ID: "enh_dam", Type: entities.EnhancementTypeSingleOrigin}
	s.store.SlotEnhancement(0, 1, enh, 30)

	state := s.store.GetState()
	s.Nil(state.Powers[0].Slots[0].Enhancement)
	s.Require().NotNil(state.Powers[0].Slots[1].Enhancement)
	s.Equal("enh_dam", state.Powers[0].Slots[1].Enhancement.ID)
	s.Equal(int32(30), state.Powers[0].Slots[1].Level)

	s.store.RemoveEnhancement(0, 1)
	state = s.store.GetState()
	s.Nil(state.Powers[0].Slots[1].Enhancement)
	s.Equal(int32(30), state.Powers[0].Slots[1].Level, "slot level survives enhancement removal")
}

func (s *StoreTestSuite) TestRemoveSlotShiftsRemaining() {
	s.store.AddPower(s.testPower("a"), 1)
	s.store.AddSlot(0)
	s.store.AddSlot(0)
	s.store.SlotEnhancement(0, 1, &entities.Enhancement{ID: "enh_acc"}, 25)

	s.store.RemoveSlot(0, 0)

	state := s.store.GetState()
	s.Require().Len(state.Powers[0].Slots, 1)
	s.Equal("enh_acc", state.Powers[0].Slots[0].Enhancement.ID)
}

func (s *StoreTestSuite) TestSlotMutatorsIgnoreOutOfBounds() {
	s.store.AddPower(s.testPower("a"), 1)
	s.store.AddSlot(0)

	s.store.RemoveSlot(0, 5)
	s.store.RemoveSlot(3, 0)
	s.store.SlotEnhancement(0, 5, &entities.Enhancement{ID: "x"}, 1)
	s.store.RemoveEnhancement(0, 5)
	s.store.AddSlot(7)

	state := s.store.GetState()
	s.Require().Len(state.Powers, 1)
	s.Len(state.Powers[0].Slots, 1)
	s.Nil(state.Powers[0].Slots[0].Enhancement)
}

func (s *StoreTestSuite) TestSetTotalsAndCalculatingFlag() {
	totals := entities.ZeroTotals()
	totals.GlobalRecharge = 42.5

	s.store.SetIsCalculating(true)
	s.store.SetTotals(totals)
	s.store.SetIsCalculating(false)

	state := s.store.GetState()
	s.Require().NotNil(state.Totals)
	s.Equal(42.5, state.Totals.GlobalRecharge)
	s.False(state.IsCalculating)
}

func (s *StoreTestSuite) TestClearBuildResetsEverything() {
	s.store.SetName("somebody")
	s.store.SetArchetype(s.testArchetype())
	s.store.SetLevel(50)
	s.store.AddPower(s.testPower("a"), 1)
	s.store.SetTotals(entities.ZeroTotals())

	s.store.ClearBuild()

	state := s.store.GetState()
	s.Empty(state.Name)
	s.Nil(state.Archetype)
	s.Equal(entities.MinLevel, state.Level)
	s.Empty(state.Powers)
	s.Nil(state.Totals)
}

func (s *StoreTestSuite) TestExportLoadRoundTrip() {
	s.store.SetName("Round Trip")
	s.store.SetArchetype(s.testArchetype())
	s.store.SetOrigin(&entities.Origin{ID: "origin_tech", Name: "Technology"})
	s.store.SetAlignment(&entities.Alignment{ID: "align_hero", Name: "Hero"})
	s.store.SetLevel(32)
	s.store.SetPrimaryPowerset(&entities.Powerset{ID: "set_ice", Type: entities.PowersetTypePrimary})
	s.store.SetPoolPowerset(1, &entities.Powerset{ID: "pool_leaping", Type: entities.PowersetTypePool})
	s.store.AddPower(s.testPower("power_bolt"), 1)
	s.store.AddSlot(0)
	s.store.SlotEnhancement(0, 0, &entities.Enhancement{ID: "enh_dam"}, 30)

	doc := s.store.ExportBuild()

	other := build.New()
	other.LoadBuild(doc)

	s.Equal(s.store.GetState(), other.GetState())
}

func (s *StoreTestSuite) TestLoadBuildReplacesEverything() {
	s.store.SetName("old name")
	s.store.AddPower(s.testPower("old_power"), 1)

	doc := testutils.CreateTestBuildDocument("Imported")
	s.store.LoadBuild(doc)

	state := s.store.GetState()
	s.Equal("Imported", state.Name)
	s.Equal("arch_blaster", state.Archetype.ID)
	s.Equal("origin_tech", state.Origin.ID)
	s.Equal(int32(30), state.Level)
	s.Equal("set_fire_blast", state.PrimaryPowerset.ID)
	s.Equal("pool_flight", state.PoolPowersets[0].ID)
	s.Require().Len(state.Powers, 1)
	s.Equal("power_fire_blast", state.Powers[0].Power.ID)
	s.Len(state.Powers[0].Slots, 2)
}

func (s *StoreTestSuite) TestLoadBuildClampsLevel() {
	doc := entities.BuildDocument{
		Character: entities.CharacterBlock{Name: "x", Level: 99},
	}

	s.store.LoadBuild(doc)

	s.Equal(entities.MaxLevel, s.store.GetState().Level)
}

func (s *StoreTestSuite) TestLoadBuildPreservesCalculatingFlag() {
	s.store.SetIsCalculating(true)

	s.store.LoadBuild(entities.BuildDocument{})

	s.True(s.store.GetState().IsCalculating)
}

func (s *StoreTestSuite) TestExportIsDeepCopied() {
	s.store.AddPower(s.testPower("a"), 1)
	s.store.AddSlot(0)

	doc := s.store.ExportBuild()
	s.store.SlotEnhancement(0, 0, &entities.Enhancement{ID: "enh"}, 10)

	s.Nil(doc.Powers[0].Slots[0].Enhancement)
}

func (s *StoreTestSuite) TestGetStateIsDeepCopied() {
	s.store.AddPower(s.testPower("a"), 1)

	state := s.store.GetState()
	state.Powers[0].LevelTaken = 49

	s.Equal(int32(1), s.store.GetState().Powers[0].LevelTaken)
}

func (s *StoreTestSuite) TestSubscribeAndUnsubscribe() {
	var calls int
	unsub := s.store.Subscribe(func(build.Snapshot) { calls++ })

	s.store.SetName("one")
	s.store.SetName("two")
	s.Equal(2, calls)

	unsub()
	s.store.SetName("three")
	s.Equal(2, calls)
}

func (s *StoreTestSuite) TestIgnoredMutationsDoNotNotify() {
	var calls int
	defer s.store.Subscribe(func(build.Snapshot) { calls++ })()

	s.store.RemovePower(0)
	s.store.AddSlot(5)
	s.store.SetPoolPowerset(9, nil)

	s.Equal(0, calls)
}

func (s *StoreTestSuite) TestRevisionSemantics() {
	var revisions []uint64
	defer s.store.Subscribe(func(snap build.Snapshot) {
		revisions = append(revisions, snap.Revision)
	})()

	s.store.SetName("content change")
	s.store.SetTotals(entities.ZeroTotals())
	s.store.SetIsCalculating(true)
	s.store.SetLevel(10)

	s.Require().Len(revisions, 4)
	s.Equal(revisions[0], revisions[1], "totals write reuses content revision")
	s.Equal(revisions[0], revisions[2], "flag write reuses content revision")
	s.Equal(revisions[0]+1, revisions[3], "next content change bumps revision")
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
