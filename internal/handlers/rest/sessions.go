package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/paragonforge/planner-api/internal/services/session"
)

type createSessionRequest struct {
	// SessionID resumes a previously persisted session when set
	SessionID string `json:"sessionId,omitempty"`
}

type sessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) error {
	var req createSessionRequest
	if r.ContentLength > 0 {
		if err := decode(r, &req); err != nil {
			return err
		}
	}

	var s *session.Session
	var err error
	if req.SessionID != "" {
		s, err = h.sessions.Open(r.Context(), req.SessionID)
	} else {
		s, err = h.sessions.Create(r.Context())
	}
	if err != nil {
		return err
	}

	respond(w, http.StatusCreated, sessionResponse{ID: s.ID, CreatedAt: s.CreatedAt})
	return nil
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) error {
	s, err := h.sessionFromRequest(r)
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, sessionResponse{ID: s.ID, CreatedAt: s.CreatedAt})
	return nil
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) error {
	if err := h.sessions.Close(chi.URLParam(r, "sessionID")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
