package rest

import (
	"net/http"

	"github.com/paragonforge/planner-api/internal/entities"
	"github.com/paragonforge/planner-api/internal/errors"
)

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, s.Prefs.GetState())
	return nil
}

// updatePreferencesRequest carries a partial preference update; only the
// fields present in the request body are applied
type updatePreferencesRequest struct {
	ColumnLayout      *int32          `json:"columnLayout,omitempty"`
	SidebarCollapsed  *bool           `json:"sidebarCollapsed,omitempty"`
	ShowTotalsWindow  *bool           `json:"showTotalsWindow,omitempty"`
	ShowSetBonusPanel *bool           `json:"showSetBonusPanel,omitempty"`
	Theme             *entities.Theme `json:"theme,omitempty"`
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	var req updatePreferencesRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	vb := errors.NewValidationBuilder()
	if req.ColumnLayout != nil {
		errors.ValidateRange("columnLayout", int(*req.ColumnLayout), int(entities.MinColumnLayout), int(entities.MaxColumnLayout), vb)
	}
	if req.Theme != nil {
		errors.ValidateEnum("theme", string(*req.Theme), []string{string(entities.ThemeDark), string(entities.ThemeLight)}, vb)
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if req.ColumnLayout != nil {
		s.Prefs.SetColumnLayout(*req.ColumnLayout)
	}
	if req.SidebarCollapsed != nil {
		s.Prefs.SetSidebarCollapsed(*req.SidebarCollapsed)
	}
	if req.ShowTotalsWindow != nil {
		s.Prefs.SetShowTotalsWindow(*req.ShowTotalsWindow)
	}
	if req.ShowSetBonusPanel != nil {
		s.Prefs.SetShowSetBonusPanel(*req.ShowSetBonusPanel)
	}
	if req.Theme != nil {
		s.Prefs.SetTheme(*req.Theme)
	}

	respond(w, http.StatusOK, s.Prefs.GetState())
	return nil
}

func (h *Handler) toggleSidebar(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	s.Prefs.ToggleSidebar()
	respond(w, http.StatusOK, s.Prefs.GetState())
	return nil
}
