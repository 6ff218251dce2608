package ui

import (
	"net/http"
	"net/url"
	"strings"

	"catalyst-hr/internal/access"
)

// guardPath maps a request path to the permission-table entry that
// governs it. The table declares sections ("/jobs", "/pipeline");
// detail and action paths under a section inherit its entry, except
// "/jobs/new" which has a stricter one of its own.
func guardPath(path string) string {
	switch {
	case path == "/jobs/new":
		return path
	case strings.HasPrefix(path, "/jobs/"):
		return "/jobs"
	case strings.HasPrefix(path, "/pipeline/"):
		return "/pipeline"
	case strings.HasPrefix(path, "/applications/"):
		return "/applications"
	}
	return path
}

// GuardPages enforces page access on every UI request. A Deny renders
// the access-denied view in place; RedirectToLogin sends the browser
// to the sign-in page. Both are terminal for the request.
func (h *Handler) GuardPages(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := sessionFor(r)

		// A session that expired since the last page load gets one
		// notice page instead of an abrupt bounce to login. Only pages
		// the visitor can no longer see force the delayed redirect home;
		// on public pages the notice links back to where they were.
		if s == nil {
			if cookie, err := r.Cookie(h.SessionCfg.CookieName); err == nil && cookie.Value != "" {
				if h.Monitor != nil && h.Monitor.ConsumeExpiryNotice(cookie.Value) {
					protected := h.Guard.Check(guardPath(r.URL.Path), nil) != access.Allow
					continueTo := "/"
					if !protected {
						continueTo = r.URL.RequestURI()
					}
					renderHTML(w, http.StatusOK, sessionExpiredPage(
						h.SessionCfg.MaxAge, continueTo, int(h.SessionCfg.RedirectDelay.Seconds()), protected))
					return
				}
			}
		}

		switch h.Guard.Check(guardPath(r.URL.Path), s) {
		case access.Allow:
			next.ServeHTTP(w, r)
		case access.RedirectToLogin:
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		case access.Deny:
			renderHTML(w, http.StatusForbidden, accessDeniedPage(s))
		}
	})
}
