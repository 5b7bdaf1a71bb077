package gamedata_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/paragonforge/planner-api/internal/clients/gamedata"
	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ClientTestSuite) newClient(baseURL string) gamedata.Client {
	client, err := gamedata.New(&gamedata.Config{BaseURL: baseURL})
	s.Require().NoError(err)
	return client
}

func (s *ClientTestSuite) TestConfigRequiresBaseURL() {
	_, err := gamedata.New(&gamedata.Config{})
	s.Error(err)
}

func (s *ClientTestSuite) TestListArchetypes() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/archetypes", r.URL.Path)
		s.Require().NoError(json.NewEncoder(w).Encode([]*entities.Archetype{
			{ID: "arch_blaster", Name: "blaster"},
			{ID: "arch_tank", Name: "tank"},
		}))
	}))
	defer server.Close()

	archetypes, err := s.newClient(server.URL).ListArchetypes(s.ctx)
	s.Require().NoError(err)
	s.Len(archetypes, 2)
	s.Equal("arch_blaster", archetypes[0].ID)
}

func (s *ClientTestSuite) TestRepeatRequestsServedFromCache() {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt64(&hits, 1)
		s.Require().NoError(json.NewEncoder(w).Encode([]*entities.Archetype{{ID: "arch_blaster"}}))
	}))
	defer server.Close()

	client := s.newClient(server.URL)

	first, err := client.ListArchetypes(s.ctx)
	s.Require().NoError(err)
	second, err := client.ListArchetypes(s.ctx)
	s.Require().NoError(err)

	s.Equal(int64(1), atomic.LoadInt64(&hits))
	s.Equal(first, second)

	// Cached responses must not alias each other
	first[0].Name = "mutated"
	s.Empty(second[0].Name)
}

func (s *ClientTestSuite) TestListPowersetsQueryParams() {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/powersets", r.URL.Path)
		gotQuery = r.URL.RawQuery
		s.Require().NoError(json.NewEncoder(w).Encode([]*entities.Powerset{{ID: "set_fire"}}))
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).ListPowersets(s.ctx, &gamedata.ListPowersetsInput{
		ArchetypeID: "arch_blaster",
		Type:        entities.PowersetTypePrimary,
	})
	s.Require().NoError(err)
	s.Equal("archetype_id=arch_blaster&type=primary", gotQuery)
}

func (s *ClientTestSuite) TestListPowersRequiresPowersetID() {
	_, err := s.newClient("http://localhost:1").ListPowers(s.ctx, "")

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestMissingResourceMapsToNotFound() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := s.newClient(server.URL).GetArchetype(s.ctx, "arch_nope")

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestRetriesOnServerError() {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt64(&hits, 1) < 3 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		s.Require().NoError(json.NewEncoder(w).Encode(&entities.Enhancement{ID: "enh_dam"}))
	}))
	defer server.Close()

	enh, err := s.newClient(server.URL).GetEnhancement(s.ctx, "enh_dam")
	s.Require().NoError(err)
	s.Equal("enh_dam", enh.ID)
	s.Equal(int64(3), atomic.LoadInt64(&hits))
}

func (s *ClientTestSuite) TestGivesUpAfterMaxAttempts() {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt64(&hits, 1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := gamedata.New(&gamedata.Config{BaseURL: server.URL, MaxAttempts: 2})
	s.Require().NoError(err)

	_, err = client.ListEnhancementSets(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal(int64(2), atomic.LoadInt64(&hits))
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
