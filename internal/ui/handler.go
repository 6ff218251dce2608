// Package ui renders the server-side HTML application: job browsing,
// authentication, the candidate pipeline, and the role dashboards.
package ui

import (
	"errors"
	"log/slog"
	"net/http"

	gomponents "maragu.dev/gomponents"

	"catalyst-hr/internal/access"
	"catalyst-hr/internal/auth"
	"catalyst-hr/internal/config"
	"catalyst-hr/internal/domain"
	"catalyst-hr/internal/gamification"
	"catalyst-hr/internal/service"
	"catalyst-hr/internal/session"
)

type Handler struct {
	Auth         *auth.Service
	Users        *service.UserService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Engagement   *gamification.Service
	Monitor      *session.Monitor
	Guard        *access.Guard
	SessionCfg   config.SessionConfig
	Production   bool
	Logger       *slog.Logger
}

func NewHandler(
	authSvc *auth.Service,
	users *service.UserService,
	jobs *service.JobService,
	applications *service.ApplicationService,
	engagement *gamification.Service,
	monitor *session.Monitor,
	guard *access.Guard,
	sessionCfg config.SessionConfig,
	production bool,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Auth:         authSvc,
		Users:        users,
		Jobs:         jobs,
		Applications: applications,
		Engagement:   engagement,
		Monitor:      monitor,
		Guard:        guard,
		SessionCfg:   sessionCfg,
		Production:   production,
		Logger:       logger.With("component", "ui"),
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// renderError maps a service error onto the matching error page.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFound   *domain.NotFoundError
		denied     *domain.AccessDeniedError
		validation *domain.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		renderHTML(w, http.StatusNotFound, errorPage("Not found", err.Error()))
	case errors.As(err, &denied):
		renderHTML(w, http.StatusForbidden, accessDeniedPage(sessionFor(r)))
	case errors.As(err, &validation):
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid request", err.Error()))
	default:
		h.Logger.Error("page render failed", "path", r.URL.Path, "error", err)
		renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "An unexpected error occurred. Please try again."))
	}
}

// actorFor derives the service-layer actor from the request session.
func actorFor(r *http.Request) domain.Actor {
	s, ok := domain.SessionFromContext(r.Context())
	if !ok {
		return domain.Actor{}
	}
	return domain.Actor{Email: s.Email, Role: s.Role}
}

func sessionFor(r *http.Request) *domain.Session {
	s, _ := domain.SessionFromContext(r.Context())
	return s
}
