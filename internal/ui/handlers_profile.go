package ui

import (
	"net/http"

	"catalyst-hr/internal/domain"
)

// ProfilePage shows the signed-in user's engagement summary.
func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	s := sessionFor(r)
	if s == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	summary, err := h.Engagement.Profile(r.Context(), s.Email)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, profilePage(s, summary))
}

// MyApplicationsPage lists the signed-in user's applications with the
// posting titles resolved for display.
func (h *Handler) MyApplicationsPage(w http.ResponseWriter, r *http.Request) {
	s := sessionFor(r)
	if s == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	actor := actorFor(r)
	apps, err := h.Applications.ListMine(r.Context(), actor)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	titles := make(map[int64]string, len(apps))
	for _, a := range apps {
		if _, ok := titles[a.JobID]; ok {
			continue
		}
		if job, err := h.Jobs.Get(r.Context(), domain.Actor{}, a.JobID); err == nil {
			titles[a.JobID] = job.Title
		}
	}
	renderHTML(w, http.StatusOK, myApplicationsPage(s, apps, titles))
}
