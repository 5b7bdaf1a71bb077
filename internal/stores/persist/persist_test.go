package persist_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/storage"
	"github.com/paragonforge/planner-api/internal/stores/build"
	"github.com/paragonforge/planner-api/internal/stores/persist"
)

const testKey = "planner:session:abc:character-build-storage"

type PersisterTestSuite struct {
	suite.Suite
	ctx       context.Context
	backend   *storage.Memory
	persister *persist.Persister[entities.BuildState, build.PersistedState]
}

func (s *PersisterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.backend = storage.NewMemory()

	persister, err := persist.New(&persist.Config[entities.BuildState, build.PersistedState]{
		Key:        testKey,
		Version:    1,
		Backend:    s.backend,
		Partialize: build.Partialize,
	})
	s.Require().NoError(err)
	s.persister = persister
}

func (s *PersisterTestSuite) TestConfigValidation() {
	_, err := persist.New(&persist.Config[entities.BuildState, build.PersistedState]{
		Backend: s.backend,
	})
	s.Error(err)
}

func (s *PersisterTestSuite) TestWriteWrapsStateInEnvelope() {
	state := entities.NewBuildState()
	state.Name = "Enveloped"
	state.Level = 12

	s.Require().NoError(s.persister.Write(s.ctx, state))

	data, err := s.backend.Get(s.ctx, testKey)
	s.Require().NoError(err)

	var raw map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &raw))
	s.Contains(raw, "state")
	s.Contains(raw, "version")
	s.Equal("1", string(raw["version"]))
}

func (s *PersisterTestSuite) TestWriteExcludesDerivedFields() {
	state := entities.NewBuildState()
	state.Totals = entities.ZeroTotals()
	state.IsCalculating = true

	s.Require().NoError(s.persister.Write(s.ctx, state))

	data, err := s.backend.Get(s.ctx, testKey)
	s.Require().NoError(err)

	var envelope struct {
		State map[string]json.RawMessage `json:"state"`
	}
	s.Require().NoError(json.Unmarshal(data, &envelope))
	s.NotContains(envelope.State, "totals")
	s.NotContains(envelope.State, "isCalculating")
}

func (s *PersisterTestSuite) TestWriteLoadRoundTrip() {
	state := entities.NewBuildState()
	state.Name = "Round Trip"
	state.Level = 33
	state.Powers = []entities.PowerEntry{
		{Power: &entities.Power{ID: "power_a"}, LevelTaken: 2, Slots: []entities.Slot{}},
	}

	s.Require().NoError(s.persister.Write(s.ctx, state))

	loaded, found, err := s.persister.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal("Round Trip", loaded.Name)
	s.Equal(int32(33), loaded.Level)
	s.Len(loaded.Powers, 1)
}

func (s *PersisterTestSuite) TestLoadMissingRecord() {
	_, found, err := s.persister.Load(s.ctx)

	s.NoError(err)
	s.False(found)
}

func (s *PersisterTestSuite) TestLoadCorruptRecordFailsSoft() {
	s.Require().NoError(s.backend.Set(s.ctx, testKey, []byte("{not json")))

	_, found, err := s.persister.Load(s.ctx)

	s.NoError(err)
	s.False(found)
}

func TestPersisterSuite(t *testing.T) {
	suite.Run(t, new(PersisterTestSuite))
}
