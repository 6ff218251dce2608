// Package api provides the JSON API mounted at /v1. It speaks to the
// same services as the server-rendered UI; authentication arrives via
// the bearer/session middleware.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"catalyst-hr/internal/domain"
	"catalyst-hr/internal/gamification"
	"catalyst-hr/internal/middleware"
	"catalyst-hr/internal/service"
	"catalyst-hr/internal/session"
)

// Handler carries the service dependencies for the JSON API.
type Handler struct {
	users        *service.UserService
	jobs         *service.JobService
	applications *service.ApplicationService
	engagement   *gamification.Service
	sessions     *session.Monitor
	logger       *slog.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	users *service.UserService,
	jobs *service.JobService,
	applications *service.ApplicationService,
	engagement *gamification.Service,
	sessions *session.Monitor,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		users:        users,
		jobs:         jobs,
		applications: applications,
		engagement:   engagement,
		sessions:     sessions,
		logger:       logger.With("component", "api"),
	}
}

// Routes returns the /v1 route tree. Authentication middleware is
// applied by the caller.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/users", h.listUsers)
	r.Post("/users", h.createUser)
	r.Get("/users/{email}", h.getUser)
	r.Delete("/users/{id}", h.deleteUser)
	r.Get("/jobs", h.listJobs)
	r.Post("/jobs", h.createJob)
	r.Get("/jobs/{id}", h.getJob)
	r.Get("/jobs/{id}/applications", h.listJobApplications)
	r.Get("/applications", h.listMyApplications)
	r.Post("/applications", h.submitApplication)
	r.Patch("/applications/{id}", h.advanceApplication)
	r.Get("/session", h.getSession)
	r.Get("/profile", h.getProfile)
	return r
}

func actorFromRequest(r *http.Request) domain.Actor {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return domain.Actor{}
	}
	return domain.Actor{Email: p.Email, Role: p.Role}
}

func pageFromRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	p := domain.PageRequest{PageToken: q.Get("page_token")}
	if v := q.Get("max_results"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.MaxResults = n
		}
	}
	return p
}

func idFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidation("invalid id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
		msg = "internal error"
	}
	h.writeJSON(w, status, map[string]any{"code": status, "message": msg})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.ErrValidation("invalid request body: %v", err)
	}
	return nil
}
