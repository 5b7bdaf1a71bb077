package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paragonforge/planner-api/internal/clients/gamedata"
	"github.com/paragonforge/planner-api/internal/entities"
)

func (h *Handler) listArchetypes(w http.ResponseWriter, r *http.Request) error {
	archetypes, err := h.gamedata.ListArchetypes(r.Context())
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, archetypes)
	return nil
}

func (h *Handler) getArchetype(w http.ResponseWriter, r *http.Request) error {
	archetype, err := h.gamedata.GetArchetype(r.Context(), chi.URLParam(r, "archetypeID"))
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, archetype)
	return nil
}

func (h *Handler) listPowersets(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	powersets, err := h.gamedata.ListPowersets(r.Context(), &gamedata.ListPowersetsInput{
		ArchetypeID: query.Get("archetype_id"),
		Type:        entities.PowersetType(query.Get("type")),
	})
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, powersets)
	return nil
}

func (h *Handler) listPowers(w http.ResponseWriter, r *http.Request) error {
	powers, err := h.gamedata.ListPowers(r.Context(), r.URL.Query().Get("powerset_id"))
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, powers)
	return nil
}

func (h *Handler) listEnhancements(w http.ResponseWriter, r *http.Request) error {
	enhancements, err := h.gamedata.ListEnhancements(r.Context())
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, enhancements)
	return nil
}

func (h *Handler) getEnhancement(w http.ResponseWriter, r *http.Request) error {
	enhancement, err := h.gamedata.GetEnhancement(r.Context(), chi.URLParam(r, "enhancementID"))
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, enhancement)
	return nil
}

func (h *Handler) listEnhancementSets(w http.ResponseWriter, r *http.Request) error {
	sets, err := h.gamedata.ListEnhancementSets(r.Context())
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, sets)
	return nil
}

func (h *Handler) getEnhancementSet(w http.ResponseWriter, r *http.Request) error {
	set, err := h.gamedata.GetEnhancementSet(r.Context(), chi.URLParam(r, "setID"))
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, set)
	return nil
}
