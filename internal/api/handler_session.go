package api

import (
	"net/http"
	"time"

	"catalyst-hr/internal/domain"
	"catalyst-hr/internal/middleware"
)

type sessionResponse struct {
	State       string `json:"state"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role,omitempty"`
	StartedAt   string `json:"started_at,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// getSession reports the caller's session lifecycle state. Token-based
// callers get their full session; JWT callers are active by definition
// of having presented a live token.
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	if token := r.Header.Get("X-Session-Token"); token != "" && h.sessions != nil {
		s, state := h.sessions.CheckNow(r.Context(), token)
		resp := sessionResponse{State: string(state)}
		if s != nil {
			resp.Email = s.Email
			resp.DisplayName = s.DisplayName
			resp.Role = s.Role.String()
			resp.StartedAt = s.StartedAt.UTC().Format(time.RFC3339)
			resp.ExpiresAt = s.ExpiresAt(h.sessions.MaxAge()).UTC().Format(time.RFC3339)
		}
		h.writeJSON(w, http.StatusOK, resp)
		return
	}
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusOK, sessionResponse{State: string(domain.SessionAbsent)})
		return
	}
	h.writeJSON(w, http.StatusOK, sessionResponse{
		State: string(domain.SessionActive),
		Email: p.Email,
		Role:  p.Role.String(),
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	actor := actorFromRequest(r)
	if actor.Email == "" {
		h.writeError(w, domain.ErrAccessDenied("sign in to view your profile"))
		return
	}
	summary, err := h.engagement.Profile(r.Context(), actor.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}
	achievements := make([]map[string]string, len(summary.Achievements))
	for i, a := range summary.Achievements {
		achievements[i] = map[string]string{
			"key": a.Key, "title": a.Title, "description": a.Description,
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"email":         summary.Email,
		"total_xp":      summary.TotalXP,
		"level":         summary.Level,
		"level_title":   summary.LevelTitle,
		"achievements":  achievements,
		"action_counts": summary.ActionCounts,
	})
}
