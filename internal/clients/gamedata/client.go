// Package gamedata is the client for the reference-data API: archetypes,
// powersets, powers, enhancements, and enhancement sets
package gamedata

//go:generate mockgen -destination=mock/mock_client.go -package=gamedatamock github.com/paragonforge/planner-api/internal/clients/gamedata Client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jpillora/backoff"

	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/errors"
)

// Client defines the interface for reference-data access.
// Game data is static, so implementations cache responses indefinitely.
type Client interface {
	// ListArchetypes returns all archetypes
	ListArchetypes(ctx context.Context) ([]*entities.Archetype, error)

	// GetArchetype returns one archetype by ID
	GetArchetype(ctx context.Context, archetypeID string) (*entities.Archetype, error)

	// ListPowersets returns powersets, optionally filtered by archetype
	// and/or type
	ListPowersets(ctx context.Context, input *ListPowersetsInput) ([]*entities.Powerset, error)

	// ListPowers returns the powers of a powerset
	ListPowers(ctx context.Context, powersetID string) ([]*entities.Power, error)

	// ListEnhancements returns all enhancements
	ListEnhancements(ctx context.Context) ([]*entities.Enhancement, error)

	// GetEnhancement returns one enhancement by ID
	GetEnhancement(ctx context.Context, enhancementID string) (*entities.Enhancement, error)

	// ListEnhancementSets returns all enhancement sets
	ListEnhancementSets(ctx context.Context) ([]*entities.EnhancementSet, error)

	// GetEnhancementSet returns one enhancement set by ID
	GetEnhancementSet(ctx context.Context, setID string) (*entities.EnhancementSet, error)
}

// ListPowersetsInput filters a powerset listing. Zero values mean no filter.
type ListPowersetsInput struct {
	ArchetypeID string
	Type        entities.PowersetType
}

// Config contains configuration options for the gamedata client
type Config struct {
	// BaseURL of the reference-data service (required)
	BaseURL string
	// HTTPTimeout for requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// MaxAttempts per request including retries (optional, defaults to 3)
	MaxAttempts int
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		return errors.InvalidArgument("BaseURL is required")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	return nil
}

type client struct {
	baseURL     string
	httpClient  *http.Client
	maxAttempts int

	mu    sync.RWMutex
	cache map[string][]byte
}

// New creates a gamedata client from the given config
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  httpClient,
		maxAttempts: cfg.MaxAttempts,
		cache:       make(map[string][]byte),
	}, nil
}

func (c *client) ListArchetypes(ctx context.Context) ([]*entities.Archetype, error) {
	var out []*entities.Archetype
	if err := c.getJSON(ctx, "/archetypes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetArchetype(ctx context.Context, archetypeID string) (*entities.Archetype, error) {
	if archetypeID == "" {
		return nil, errors.InvalidArgument("archetype ID cannot be empty")
	}
	var out entities.Archetype
	if err := c.getJSON(ctx, "/archetypes/"+url.PathEscape(archetypeID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListPowersets(ctx context.Context, input *ListPowersetsInput) ([]*entities.Powerset, error) {
	path := "/powersets"
	if input != nil {
		query := url.Values{}
		if input.ArchetypeID != "" {
			query.Set("archetype_id", input.ArchetypeID)
		}
		if input.Type != "" {
			query.Set("type", string(input.Type))
		}
		if len(query) > 0 {
			path += "?" + query.Encode()
		}
	}

	var out []*entities.Powerset
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ListPowers(ctx context.Context, powersetID string) ([]*entities.Power, error) {
	if powersetID == "" {
		return nil, errors.InvalidArgument("powerset ID cannot be empty")
	}

	query := url.Values{}
	query.Set("powerset_id", powersetID)

	var out []*entities.Power
	if err := c.getJSON(ctx, "/powers?"+query.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) ListEnhancements(ctx context.Context) ([]*entities.Enhancement, error) {
	var out []*entities.Enhancement
	if err := c.getJSON(ctx, "/enhancements", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetEnhancement(ctx context.Context, enhancementID string) (*entities.Enhancement, error) {
	if enhancementID == "" {
		return nil, errors.InvalidArgument("enhancement ID cannot be empty")
	}
	var out entities.Enhancement
	if err := c.getJSON(ctx, "/enhancements/"+url.PathEscape(enhancementID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ListEnhancementSets(ctx context.Context) ([]*entities.EnhancementSet, error) {
	var out []*entities.EnhancementSet
	if err := c.getJSON(ctx, "/enhancement-sets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetEnhancementSet(ctx context.Context, setID string) (*entities.EnhancementSet, error) {
	if setID == "" {
		return nil, errors.InvalidArgument("enhancement set ID cannot be empty")
	}
	var out entities.EnhancementSet
	if err := c.getJSON(ctx, "/enhancement-sets/"+url.PathEscape(setID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON fetches a path, serving repeat requests from the cache. Each
// caller unmarshals from the cached bytes into a fresh value, so cached
// entries are never aliased between callers.
func (c *client) getJSON(ctx context.Context, path string, out any) error {
	c.mu.RLock()
	cached, ok := c.cache[path]
	c.mu.RUnlock()

	if ok {
		return json.Unmarshal(cached, out)
	}

	data, err := c.fetch(ctx, path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode response for %s", path)
	}

	c.mu.Lock()
	c.cache[path] = data
	c.mu.Unlock()

	return nil
}

// fetch performs the HTTP GET with jittered-backoff retries on transport
// errors and 5xx responses
func (c *client) fetch(ctx context.Context, path string) ([]byte, error) {
	b := &backoff.Backoff{
		Min:    100 * time.Millisecond,
		Max:    2 * time.Second,
		Jitter: true,
	}

	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(b.Duration()):
			case <-ctx.Done():
				return nil, errors.WrapWithCodef(ctx.Err(), errors.CodeCanceled, "gamedata fetch canceled")
			}
		}

		data, retryable, err := c.fetchOnce(ctx, path)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *client) fetchOnce(ctx context.Context, path string) (data []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to build request for %s", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, errors.WrapWithCodef(err, errors.CodeUnavailable, "gamedata service unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, errors.NotFoundf("gamedata resource %s not found", path)
	case resp.StatusCode >= 500:
		return nil, true, errors.Unavailablef("gamedata service returned %d for %s", resp.StatusCode, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, false, errors.Internalf("gamedata service returned %d for %s", resp.StatusCode, path)
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errors.Wrapf(err, "failed to read response for %s", path)
	}
	return data, false, nil
}
