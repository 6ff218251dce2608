package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"catalyst-hr/internal/domain"
	"catalyst-hr/internal/middleware"
)

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if s := sessionFor(r); s != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, loginPage(r, r.URL.Query().Get("error")))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.loginError(w, r, "invalid form submission")
		return
	}
	email := formString(r.Form, "email")
	password := formString(r.Form, "password")
	if email == "" || password == "" {
		h.loginError(w, r, "email and password are required")
		return
	}

	out, err := h.Auth.Authenticate(r.Context(), email, password)
	if err != nil {
		var invalid *domain.InvalidCredentialsError
		if errors.As(err, &invalid) {
			h.loginError(w, r, "invalid email or password")
			return
		}
		h.Logger.Warn("login failed", "error", err)
		h.loginError(w, r, "sign-in is unavailable right now, please try again")
		return
	}
	if out.Ambiguous() {
		renderHTML(w, http.StatusOK, personaPage(r, email, out.Candidates))
		return
	}

	middleware.SetSessionCookie(w, h.SessionCfg, out.Session.Token)
	http.Redirect(w, r, safeNextPath(formString(r.Form, "next")), http.StatusSeeOther)
}

// PersonaSubmit finalizes a sign-in against the shared personas
// account once a role has been chosen.
func (h *Handler) PersonaSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.loginError(w, r, "invalid form submission")
		return
	}
	email := formString(r.Form, "email")
	role := domain.ParseRole(formString(r.Form, "role"))

	s, err := h.Auth.Resolve(r.Context(), email, role)
	if err != nil {
		h.loginError(w, r, "could not resolve that persona")
		return
	}
	middleware.SetSessionCookie(w, h.SessionCfg, s.Token)
	http.Redirect(w, r, safeNextPath(formString(r.Form, "next")), http.StatusSeeOther)
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if s := sessionFor(r); s != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, registerPage(r, r.URL.Query().Get("error")))
}

func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register?error="+url.QueryEscape("invalid form submission"), http.StatusSeeOther)
		return
	}
	req := domain.RegisterUserRequest{
		Email:       formString(r.Form, "email"),
		DisplayName: formString(r.Form, "display_name"),
		Password:    formString(r.Form, "password"),
		Department:  formString(r.Form, "department"),
	}
	s, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		msg := "registration failed, please try again"
		var verr *domain.ValidationError
		var conflict *domain.ConflictError
		switch {
		case errors.As(err, &verr):
			msg = err.Error()
		case errors.As(err, &conflict):
			msg = "that email is already registered"
		default:
			h.Logger.Warn("registration failed", "error", err)
		}
		http.Redirect(w, r, "/register?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	// Registration auto-logs-in.
	middleware.SetSessionCookie(w, h.SessionCfg, s.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.SessionCfg.CookieName); err == nil && cookie.Value != "" {
		if err := h.Auth.Logout(r.Context(), cookie.Value); err != nil {
			h.Logger.Warn("logout failed", "error", err)
		}
	}
	middleware.ClearSessionCookie(w, h.SessionCfg)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ExtendSession resets the session clock without re-authentication.
func (h *Handler) ExtendSession(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.SessionCfg.CookieName)
	if err != nil || cookie.Value == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if _, err := h.Monitor.ExtendSession(r.Context(), cookie.Value); err != nil {
		h.Logger.Warn("extend session failed", "error", err)
	}
	referer := r.Header.Get("Referer")
	if referer == "" {
		referer = "/"
	}
	http.Redirect(w, r, referer, http.StatusSeeOther)
}

func (h *Handler) loginError(w http.ResponseWriter, r *http.Request, msg string) {
	q := url.Values{"error": {msg}}
	if next := r.FormValue("next"); next != "" {
		q.Set("next", next)
	}
	http.Redirect(w, r, "/login?"+q.Encode(), http.StatusSeeOther)
}

// safeNextPath sanitizes a post-login destination: only site-relative
// paths are honored, anything else lands on the home page.
func safeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
