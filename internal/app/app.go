// Package app provides application-level wiring and dependency
// injection: repositories, services, the session monitor, and the
// gamification pipeline, assembled from the handles main() provides.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"catalyst-hr/internal/access"
	"catalyst-hr/internal/auth"
	"catalyst-hr/internal/config"
	"catalyst-hr/internal/db/repository"
	"catalyst-hr/internal/gamification"
	"catalyst-hr/internal/middleware"
	"catalyst-hr/internal/service"
	"catalyst-hr/internal/session"
)

// Deps holds the external dependencies that main() must provide.
// These are things the app package cannot (or should not) create
// itself: database handles, config, and the root logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// Services groups the service pointers the HTML and JSON handlers need.
type Services struct {
	Auth         *auth.Service
	Users        *service.UserService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Engagement   *gamification.Service
}

// App holds the fully-wired application.
type App struct {
	Services Services
	Monitor  *session.Monitor
	Tracker  *gamification.Tracker
	Guard    *access.Guard
	Registry *access.Registry
	Tokens   *auth.TokenIssuer
	JWT      middleware.JWTValidator
}

// New wires repositories, services, the session monitor, and the
// engagement tracker from the provided deps. It also seeds the demo
// directory and sample postings when the database is empty.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg

	// Repositories. Writes go through the single-connection write pool;
	// listing and lookup queries fan out over the read pool. Sessions
	// stay on the write pool because every request touches them.
	userRepo := repository.NewUserRepo(deps.WriteDB, deps.ReadDB)
	jobRepo := repository.NewJobRepo(deps.WriteDB, deps.ReadDB)
	applicationRepo := repository.NewApplicationRepo(deps.WriteDB, deps.ReadDB)
	engagementRepo := repository.NewEngagementRepo(deps.WriteDB, deps.ReadDB)
	sessionRepo := repository.NewSessionRepo(deps.WriteDB)

	// Gamification pipeline: the tracker queues events off the request
	// path; the service reads summaries and runs the nightly rollup.
	tracker := gamification.NewTracker(engagementRepo, gamification.TrackerOptions{
		Endpoint: cfg.TrackerEndpoint,
		Timeout:  cfg.TrackerTimeout,
	}, deps.Logger.With("component", "tracker"))
	engagementSvc := gamification.NewService(engagementRepo, deps.Logger.With("component", "engagement"))

	// Session lifecycle.
	monitor := session.NewMonitor(sessionRepo, cfg.Session, deps.Logger.With("component", "session-monitor"))

	// Page access control.
	registry := access.NewRegistry()
	if cfg.PagePermissionsFile != "" {
		if err := registry.LoadOverrides(cfg.PagePermissionsFile); err != nil {
			return nil, fmt.Errorf("load page permissions: %w", err)
		}
	}
	guard := access.NewGuard(registry, cfg.DefaultDeny())

	// Core services.
	authSvc := auth.NewService(userRepo, sessionRepo, tracker, cfg.Auth.DemoPassword, deps.Logger.With("component", "auth"))
	userSvc := service.NewUserService(userRepo, tracker)
	jobSvc := service.NewJobService(jobRepo, tracker)
	applicationSvc := service.NewApplicationService(applicationRepo, jobRepo, tracker)

	// API tokens: HS256 locally, optionally validated against an OIDC
	// provider instead when one is configured.
	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}
	jwtValidator, err := buildJWTValidator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("jwt validator: %w", err)
	}

	if err := seed(ctx, deps.Logger, userRepo, jobRepo); err != nil {
		deps.Logger.Warn("seed failed", "error", err)
	}

	return &App{
		Services: Services{
			Auth:         authSvc,
			Users:        userSvc,
			Jobs:         jobSvc,
			Applications: applicationSvc,
			Engagement:   engagementSvc,
		},
		Monitor:  monitor,
		Tracker:  tracker,
		Guard:    guard,
		Registry: registry,
		Tokens:   tokens,
		JWT:      jwtValidator,
	}, nil
}

func buildJWTValidator(ctx context.Context, cfg *config.Config) (middleware.JWTValidator, error) {
	if cfg.Auth.OIDCEnabled() {
		if cfg.Auth.JWKSURL != "" {
			return middleware.NewOIDCValidatorFromJWKS(ctx, cfg.Auth.JWKSURL, cfg.Auth.IssuerURL, cfg.Auth.Audience, cfg.Auth.AllowedIssuers)
		}
		return middleware.NewOIDCValidator(ctx, cfg.Auth.IssuerURL, cfg.Auth.Audience, cfg.Auth.AllowedIssuers)
	}
	return middleware.NewHS256Validator(cfg.Auth.JWTSecret)
}
