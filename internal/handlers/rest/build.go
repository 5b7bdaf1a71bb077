package rest

import (
	"net/http"

	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/errors"
	"github.com/paragonforge/planner-api/internal/statnorm"
	"github.com/paragonforge/planner-api/internal/stores/build"
)

func (h *Handler) getBuild(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, s.Build.GetState())
	return nil
}

func (h *Handler) exportBuild(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, s.Build.ExportBuild())
	return nil
}

func (h *Handler) importBuild(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	var doc entities.BuildDocument
	if err := decode(r, &doc); err != nil {
		return err
	}

	s.Build.LoadBuild(doc)
	respond(w, http.StatusOK, s.Build.GetState())
	return nil
}

func (h *Handler) clearBuild(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	s.Build.ClearBuild()
	respond(w, http.StatusOK, s.Build.GetState())
	return nil
}

func (h *Handler) recalculate(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	s.Retry()
	w.WriteHeader(http.StatusAccepted)
	return nil
}

func (h *Handler) getStatBars(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	state := s.Build.GetState()
	var caps *entities.ArchetypeCaps
	if state.Archetype != nil {
		caps = state.Archetype.Caps
	}

	respond(w, http.StatusOK, statnorm.BuildBars(state.Totals, caps))
	return nil
}

type setNameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) setName(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	var req setNameRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	s.Build.SetName(req.Name)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type setLevelRequest struct {
	Level int32 `json:"level"`
}

func (h *Handler) setLevel(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	var req setLevelRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	// Out-of-range levels are clamped by the store, not rejected here
	s.Build.SetLevel(req.Level)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type setArchetypeRequest struct {
	Archetype *entities.Archetype `json:"archetype"`
}

func (h *Handler) setArchetype(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	var req setArchetypeRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	s.Build.SetArchetype(req.Archetype)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type setOriginRequest struct {
	Origin *entities.Origin `json:"origin"`
}

func (h *Handler) setOrigin(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	var req setOriginRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	s.Build.SetOrigin(req.Origin)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type setAlignmentRequest struct {
	Alignment *entities.Alignment `json:"alignment"`
}

func (h *Handler) setAlignment(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	var req setAlignmentRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	s.Build.SetAlignment(req.Alignment)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type setPowersetRequest struct {
	Powerset *entities.Powerset `json:"powerset"`
}

func (h *Handler) setPowerset(w http.ResponseWriter, r *http.Request, apply func(*build.Store, *entities.Powerset)) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	var req setPowersetRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	apply(s.Build, req.Powerset)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) setPrimaryPowerset(w http.ResponseWriter, r *http.Request) error {
	return h.setPowerset(w, r, func(b *build.Store, ps *entities.Powerset) { b.SetPrimaryPowerset(ps) })
}

func (h *Handler) setSecondaryPowerset(w http.ResponseWriter, r *http.Request) error {
	return h.setPowerset(w, r, func(b *build.Store, ps *entities.Powerset) { b.SetSecondaryPowerset(ps) })
}

func (h *Handler) setAncillaryPowerset(w http.ResponseWriter, r *http.Request) error {
	return h.setPowerset(w, r, func(b *build.Store, ps *entities.Powerset) { b.SetAncillaryPowerset(ps) })
}

func (h *Handler) setPoolPowerset(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	index, err := indexParam(r, "index")
	if err != nil {
		return err
	}
	if index >= entities.PoolSlotCount {
		return errors.InvalidArgumentf("pool index must be 0-%d, got %d", entities.PoolSlotCount-1, index)
	}

	var req setPowersetRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	s.Build.SetPoolPowerset(index, req.Powerset)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type addPowerRequest struct {
	Power      *entities.Power `json:"power"`
	LevelTaken int32           `json:"levelTaken"`
}

func (h *Handler) addPower(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	var req addPowerRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if req.Power == nil {
		return errors.InvalidArgument("power is required")
	}

	s.Build.AddPower(req.Power, req.LevelTaken)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) removePower(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	index, err := indexParam(r, "index")
	if err != nil {
		return err
	}

	s.Build.RemovePower(index)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type updatePowerLevelRequest struct {
	LevelTaken int32 `json:"levelTaken"`
}

func (h *Handler) updatePowerLevel(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	index, err := indexParam(r, "index")
	if err != nil {
		return err
	}

	var req updatePowerLevelRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	s.Build.UpdatePowerLevel(index, req.LevelTaken)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) addSlot(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	index, err := indexParam(r, "index")
	if err != nil {
		return err
	}

	s.Build.AddSlot(index)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) removeSlot(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	index, err := indexParam(r, "index")
	if err != nil {
		return err
	}
	slotIndex, err := indexParam(r, "slotIndex")
	if err != nil {
		return err
	}

	s.Build.RemoveSlot(index, slotIndex)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type slotEnhancementRequest struct {
	Enhancement *entities.Enhancement `json:"enhancement"`
	Level       int32                 `json:"level"`
}

func (h *Handler) slotEnhancement(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	index, err := indexParam(r, "index")
	if err != nil {
		return err
	}
	slotIndex, err := indexParam(r, "slotIndex")
	if err != nil {
		return err
	}

	var req slotEnhancementRequest
	if err := decode(r, &req); err != nil {
		return err
	}
	if req.Enhancement == nil {
		return errors.InvalidArgument("enhancement is required")
	}

	s.Build.SlotEnhancement(index, slotIndex, req.Enhancement, req.Level)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) removeEnhancement(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	index, err := indexParam(r, "index")
	if err != nil {
		return err
	}
	slotIndex, err := indexParam(r, "slotIndex")
	if err != nil {
		return err
	}

	s.Build.RemoveEnhancement(index, slotIndex)
	w.WriteHeader(http.StatusNoContent)
	return nil
}
