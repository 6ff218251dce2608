// Command server runs the Catalyst HR application: the server-rendered
// HTML frontend, the JSON API under /v1, the session lifecycle monitor,
// and the engagement tracking pipeline.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/sync/errgroup"

	"catalyst-hr/internal/api"
	"catalyst-hr/internal/app"
	"catalyst-hr/internal/config"
	internaldb "catalyst-hr/internal/db"
	"catalyst-hr/internal/middleware"
	"catalyst-hr/internal/ui"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	writeDB, readDB, err := internaldb.OpenSQLitePair(cfg.DBPath, 4)
	if err != nil {
		return err
	}
	defer writeDB.Close() //nolint:errcheck
	defer readDB.Close()  //nolint:errcheck

	if err := internaldb.RunMigrations(writeDB); err != nil {
		return err
	}

	application, err := app.New(ctx, app.Deps{
		Cfg:     cfg,
		WriteDB: writeDB,
		ReadDB:  readDB,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	router := buildRouter(cfg, application, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "addr", cfg.ListenAddr,
			"try", "http://"+curlHostForListenAddr(cfg.ListenAddr)+"/")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Session expiry sweeps.
	g.Go(func() error {
		return application.Monitor.Run(gctx)
	})

	// Engagement event pipeline.
	g.Go(func() error {
		return application.Tracker.Run(gctx)
	})

	// Nightly engagement rollup.
	if err := application.Services.Engagement.StartRollup(); err != nil {
		logger.Warn("rollup scheduler not started", "error", err)
	}
	defer application.Services.Engagement.StopRollup()

	// Graceful shutdown once the context is cancelled.
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// buildRouter assembles the full HTTP surface: the HTML application at
// the root and the JSON API under /v1.
func buildRouter(cfg *config.Config, application *app.App, logger *slog.Logger) chi.Router {
	svcs := application.Services

	uiHandler := ui.NewHandler(
		svcs.Auth, svcs.Users, svcs.Jobs, svcs.Applications, svcs.Engagement,
		application.Monitor, application.Guard,
		cfg.Session, cfg.IsProduction(), logger,
	)
	apiHandler := api.NewHandler(
		svcs.Users, svcs.Jobs, svcs.Applications, svcs.Engagement,
		application.Monitor, logger,
	)
	tokenHandler := api.NewTokenHandler(svcs.Auth, application.Tokens, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RateLimiterFromConfig(cfg))

	// JSON API: CORS + token auth, no session cookies required.
	r.Route("/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Session-Token"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
		// Token minting is the one unauthenticated API route.
		r.Post("/auth/token", tokenHandler.MintToken)

		r.Group(func(r chi.Router) {
			r.Use(middleware.APIAuth(application.JWT, application.Monitor))
			r.Mount("/", apiHandler.Routes())
		})
	})

	// HTML application: session cookie auth.
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionLoader(application.Monitor, cfg.Session))
		ui.MountRoutes(r, uiHandler)
	})

	return r
}

// curlHostForListenAddr turns a listen address into something pasteable
// into a browser or curl: wildcard and empty hosts become localhost.
func curlHostForListenAddr(listenAddr string) string {
	addr := strings.TrimSpace(listenAddr)
	if addr == "" {
		return "localhost:8080"
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return host + ":" + port
}
