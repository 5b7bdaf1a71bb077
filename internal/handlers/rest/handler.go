// Package rest exposes the planner over an HTTP JSON API
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/paragonforge/planner-api/internal/clients/gamedata"
	"github.com/paragonforge/planner-api/internal/errors"
	"github.com/paragonforge/planner-api/internal/services/session"
)

// Config holds the dependencies for the REST handler
type Config struct {
	Sessions *session.Manager
	GameData gamedata.Client
	// Logger is optional; defaults to slog.Default()
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Sessions == nil {
		vb.RequiredField("Sessions")
	}
	if c.GameData == nil {
		vb.RequiredField("GameData")
	}

	return vb.Build()
}

// Handler serves the planner HTTP API
type Handler struct {
	sessions *session.Manager
	gamedata gamedata.Client
	logger   *slog.Logger
}

// NewHandler creates a REST handler from the given config
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		sessions: cfg.Sessions,
		gamedata: cfg.GameData,
		logger:   logger,
	}, nil
}

// Routes builds the full route tree
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", h.withError(h.createSession))
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.withError(h.getSession))
			r.Delete("/", h.withError(h.closeSession))

			r.Route("/build", func(r chi.Router) {
				r.Get("/", h.withError(h.getBuild))
				r.Get("/export", h.withError(h.exportBuild))
				r.Post("/import", h.withError(h.importBuild))
				r.Post("/clear", h.withError(h.clearBuild))
				r.Post("/recalculate", h.withError(h.recalculate))
				r.Get("/statbars", h.withError(h.getStatBars))

				r.Put("/name", h.withError(h.setName))
				r.Put("/level", h.withError(h.setLevel))
				r.Put("/archetype", h.withError(h.setArchetype))
				r.Put("/origin", h.withError(h.setOrigin))
				r.Put("/alignment", h.withError(h.setAlignment))

				r.Put("/powersets/primary", h.withError(h.setPrimaryPowerset))
				r.Put("/powersets/secondary", h.withError(h.setSecondaryPowerset))
				r.Put("/powersets/ancillary", h.withError(h.setAncillaryPowerset))
				r.Put("/powersets/pool/{index}", h.withError(h.setPoolPowerset))

				r.Post("/powers", h.withError(h.addPower))
				r.Route("/powers/{index}", func(r chi.Router) {
					r.Delete("/", h.withError(h.removePower))
					r.Put("/level", h.withError(h.updatePowerLevel))
					r.Post("/slots", h.withError(h.addSlot))
					r.Route("/slots/{slotIndex}", func(r chi.Router) {
						r.Delete("/", h.withError(h.removeSlot))
						r.Put("/", h.withError(h.slotEnhancement))
						r.Delete("/enhancement", h.withError(h.removeEnhancement))
					})
				})
			})

			r.Route("/preferences", func(r chi.Router) {
				r.Get("/", h.withError(h.getPreferences))
				r.Patch("/", h.withError(h.updatePreferences))
				r.Post("/sidebar/toggle", h.withError(h.toggleSidebar))
			})
		})

		r.Route("/gamedata", func(r chi.Router) {
			r.Get("/archetypes", h.withError(h.listArchetypes))
			r.Get("/archetypes/{archetypeID}", h.withError(h.getArchetype))
			r.Get("/powersets", h.withError(h.listPowersets))
			r.Get("/powers", h.withError(h.listPowers))
			r.Get("/enhancements", h.withError(h.listEnhancements))
			r.Get("/enhancements/{enhancementID}", h.withError(h.getEnhancement))
			r.Get("/enhancement-sets", h.withError(h.listEnhancementSets))
			r.Get("/enhancement-sets/{setID}", h.withError(h.getEnhancementSet))
		})
	})

	return r
}

// errorBody is the JSON shape of every error response
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// withError adapts an error-returning handler into an http.HandlerFunc,
// mapping coded errors onto HTTP statuses
func (h *Handler) withError(next func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		code := errors.GetCode(err)
		status := code.HTTPStatus()
		if status >= http.StatusInternalServerError {
			h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		}

		respond(w, status, errorBody{Code: code.String(), Message: errors.GetMessage(err)})
	}
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}

// sessionFromRequest resolves the {sessionID} route param to a live session
func (h *Handler) sessionFromRequest(r *http.Request) (*session.Session, error) {
	return h.sessions.Get(chi.URLParam(r, "sessionID"))
}

// indexParam parses a non-negative integer route param
func indexParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, errors.InvalidArgumentf("%s must be a non-negative integer, got %q", name, raw)
	}
	return index, nil
}
