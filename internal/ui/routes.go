package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"catalyst-hr/internal/ui/assets"
)

// MountRoutes registers the HTML application on the router. The caller
// is expected to have installed the session loader already; everything
// here assumes the session (when present) is on the request context.
func MountRoutes(r chi.Router, h *Handler) {
	static, err := fs.Sub(assets.StaticFS(), "static")
	if err != nil {
		panic("ui: embedded static assets missing: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// Authentication endpoints sit outside the page guard: a visitor
	// must always be able to reach sign-in, and sign-out must work
	// even for sessions the guard would bounce.
	r.Group(func(r chi.Router) {
		r.Use(h.EnsureCSRFToken)
		r.Use(h.RequireCSRF)

		r.Get("/login", h.LoginPage)
		r.Post("/login", h.LoginSubmit)
		r.Post("/login/persona", h.PersonaSubmit)
		r.Get("/register", h.RegisterPage)
		r.Post("/register", h.RegisterSubmit)
		r.Post("/logout", h.Logout)
		r.Post("/session/extend", h.ExtendSession)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.EnsureCSRFToken)
		r.Use(h.RequireCSRF)
		r.Use(h.GuardPages)

		r.Get("/", h.DashboardHome)
		r.Get("/jobs", h.JobsList)
		r.Get("/jobs/new", h.JobNewPage)
		r.Post("/jobs/new", h.JobCreate)
		r.Get("/jobs/{id}", h.JobDetail)
		r.Post("/jobs/{id}/apply", h.ApplySubmit)

		r.Get("/applications", h.MyApplicationsPage)
		r.Get("/profile", h.ProfilePage)

		r.Get("/pipeline", h.PipelinePage)
		r.Post("/pipeline/{id}/advance", h.PipelineAdvance)

		r.Get("/dashboard", h.DashboardHome)
		r.Get("/dashboard/admin", h.AdminDashboard)
		r.Get("/dashboard/recruiter", h.RecruiterDashboard)
		r.Get("/dashboard/manager", h.ManagerDashboard)
		r.Get("/dashboard/bank", h.BankDashboard)
	})
}
