// Package calculation is the client for the remote build calculation service
package calculation

//go:generate mockgen -destination=mock/mock_client.go -package=calculationmock github.com/paragonforge/planner-api/internal/clients/calculation Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/errors"
)

// Client defines the interface to the remote calculation service.
// The service performs the actual game-rule math; this client only ships a
// build payload out and a totals snapshot back.
type Client interface {
	// CalculateTotals submits a build and returns its calculated totals
	CalculateTotals(ctx context.Context, request *Request) (*entities.CalculatedTotals, error)
}

// Request is the calculation wire payload
type Request struct {
	ArchetypeID string         `json:"archetype_id"`
	OriginID    string         `json:"origin_id"`
	Alignment   string         `json:"alignment"`
	Level       int32          `json:"level"`
	Powers      []PowerPayload `json:"powers"`
}

// PowerPayload is one taken power in the calculation payload
type PowerPayload struct {
	PowerID    string        `json:"power_id"`
	LevelTaken int32         `json:"level_taken"`
	Slots      []SlotPayload `json:"slots"`
}

// SlotPayload is one slotted enhancement in the calculation payload.
// Empty slots are omitted; they contribute nothing to the math.
type SlotPayload struct {
	EnhancementID string `json:"enhancement_id"`
	Level         int32  `json:"level"`
}

// BuildRequest assembles the wire payload from a build state
func BuildRequest(state entities.BuildState) *Request {
	req := &Request{
		Level:  state.Level,
		Powers: make([]PowerPayload, 0, len(state.Powers)),
	}
	if state.Archetype != nil {
		req.ArchetypeID = state.Archetype.ID
	}
	if state.Origin != nil {
		req.OriginID = state.Origin.ID
	}
	if state.Alignment != nil {
		req.Alignment = state.Alignment.Name
	}

	for _, entry := range state.Powers {
		payload := PowerPayload{
			LevelTaken: entry.LevelTaken,
			Slots:      make([]SlotPayload, 0, len(entry.Slots)),
		}
		if entry.Power != nil {
			payload.PowerID = entry.Power.ID
		}
		for _, slot := range entry.Slots {
			if slot.Enhancement == nil {
				continue
			}
			payload.Slots = append(payload.Slots, SlotPayload{
				EnhancementID: slot.Enhancement.ID,
				Level:         slot.Level,
			})
		}
		req.Powers = append(req.Powers, payload)
	}

	return req
}

// Config contains configuration options for the calculation client
type Config struct {
	// BaseURL of the calculation service (required)
	BaseURL string
	// HTTPTimeout for calculation requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
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
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a calculation client from the given config
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *client) CalculateTotals(ctx context.Context, request *Request) (*entities.CalculatedTotals, error) {
	if request == nil {
		return nil, errors.InvalidArgument("request cannot be nil")
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal calculation request")
	}

	url := fmt.Sprintf("%s/calculate", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build calculation request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "calculation service unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if resp.StatusCode >= 500 {
			return nil, errors.Unavailablef("calculation service returned %d: %s", resp.StatusCode, detail)
		}
		return nil, errors.InvalidArgumentf("calculation rejected with %d: %s", resp.StatusCode, detail)
	}

	var totals entities.CalculatedTotals
	if err := json.NewDecoder(resp.Body).Decode(&totals); err != nil {
		return nil, errors.Wrapf(err, "failed to decode calculation response")
	}

	return &totals, nil
}
