package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"catalyst-hr/internal/auth"
	"catalyst-hr/internal/domain"
)

// TokenHandler exchanges credentials for an API bearer token. It sits
// outside the authenticated /v1 tree: it is how a client gets in.
type TokenHandler struct {
	auth   *auth.Service
	issuer *auth.TokenIssuer
	logger *slog.Logger
}

// NewTokenHandler creates the token endpoint handler.
func NewTokenHandler(authSvc *auth.Service, issuer *auth.TokenIssuer, logger *slog.Logger) *TokenHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenHandler{auth: authSvc, issuer: issuer, logger: logger.With("component", "api-token")}
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// Role disambiguates the shared personas account; ignored otherwise.
	Role string `json:"role,omitempty"`
}

// MintToken handles POST /auth/token.
func (h *TokenHandler) MintToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		h.writeError(w, domain.ErrValidation("email and password are required"))
		return
	}

	out, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	s := out.Session
	if out.Ambiguous() {
		if req.Role == "" {
			roles := make([]string, 0, len(out.Candidates))
			for _, c := range out.Candidates {
				roles = append(roles, c.Role.String())
			}
			h.writeError(w, domain.ErrValidation("account has multiple personas, pass \"role\" (one of %v)", roles))
			return
		}
		s, err = h.auth.Resolve(r.Context(), req.Email, domain.ParseRole(req.Role))
		if err != nil {
			h.writeError(w, err)
			return
		}
	}

	token, err := h.issuer.Mint(s)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"token":         token,
		"session_token": s.Token,
		"role":          s.Role.String(),
	})
}

func (h *TokenHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *TokenHandler) writeError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("token request failed", "error", err)
		msg = "internal error"
	}
	h.writeJSON(w, status, map[string]any{"code": status, "message": msg})
}
