package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"catalyst-hr/internal/domain"
)

type userResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Department  string `json:"department,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func userToAPI(u domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role.String(),
		Department:  u.Department,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page := pageFromRequest(r)
	users, total, err := h.users.List(r.Context(), actorFromRequest(r), page)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = userToAPI(u)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"users":           out,
		"total":           total,
		"next_page_token": domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}

type createUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Department  string `json:"department"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	u := &domain.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        domain.ParseRole(req.Role),
		Department:  req.Department,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.writeError(w, err)
			return
		}
		u.PasswordHash = string(hash)
	}
	created, err := h.users.Create(r.Context(), actorFromRequest(r), u)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, userToAPI(*created))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	u, err := h.users.Get(r.Context(), actorFromRequest(r), email)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, userToAPI(*u))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.users.Delete(r.Context(), actorFromRequest(r), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
