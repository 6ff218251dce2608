package ui

import (
	"net/http"

	"catalyst-hr/internal/domain"
)

// DashboardHome sends a signed-in user to the dashboard for their role,
// or to the job board when no dashboard applies.
func (h *Handler) DashboardHome(w http.ResponseWriter, r *http.Request) {
	s := sessionFor(r)
	target := "/jobs"
	if s != nil {
		switch s.Role {
		case domain.RoleAdministrator:
			target = "/dashboard/admin"
		case domain.RoleRecruiter:
			target = "/dashboard/recruiter"
		case domain.RoleHiringManager, domain.RoleManager:
			target = "/dashboard/manager"
		case domain.RoleBankRepresentative:
			target = "/dashboard/bank"
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	actor := actorFor(r)
	users, _, err := h.Users.List(r.Context(), actor, domain.PageRequest{MaxResults: 100})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	_, openJobs, err := h.Jobs.List(r.Context(), actor, domain.JobFilter{OpenOnly: true}, domain.PageRequest{MaxResults: 1})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	totalApps := h.countApplications(r, actor)
	renderHTML(w, http.StatusOK, adminDashboardPage(sessionFor(r), users, openJobs, totalApps))
}

func (h *Handler) RecruiterDashboard(w http.ResponseWriter, r *http.Request) {
	actor := actorFor(r)
	jobs, _, err := h.Jobs.List(r.Context(), actor, domain.JobFilter{}, domain.PageRequest{MaxResults: 100})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	counts := make(map[int64]int64, len(jobs))
	for _, j := range jobs {
		_, total, err := h.Applications.ListByJob(r.Context(), actor, j.ID, domain.PageRequest{MaxResults: 1})
		if err != nil {
			continue
		}
		counts[j.ID] = total
	}
	renderHTML(w, http.StatusOK, recruiterDashboardPage(sessionFor(r), jobs, counts))
}

func (h *Handler) ManagerDashboard(w http.ResponseWriter, r *http.Request) {
	actor := actorFor(r)
	jobs, _, err := h.Jobs.List(r.Context(), actor, domain.JobFilter{}, domain.PageRequest{MaxResults: 100})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	var inReview []domain.JobApplication
	for _, j := range jobs {
		apps, _, err := h.Applications.ListByJob(r.Context(), actor, j.ID, domain.PageRequest{MaxResults: 100})
		if err != nil {
			continue
		}
		for _, a := range apps {
			if !a.Stage.Terminal() {
				inReview = append(inReview, a)
			}
		}
	}
	renderHTML(w, http.StatusOK, managerDashboardPage(sessionFor(r), inReview))
}

func (h *Handler) BankDashboard(w http.ResponseWriter, r *http.Request) {
	_, openJobs, err := h.Jobs.List(r.Context(), actorFor(r), domain.JobFilter{OpenOnly: true}, domain.PageRequest{MaxResults: 1})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, bankDashboardPage(sessionFor(r), openJobs))
}

func (h *Handler) countApplications(r *http.Request, actor domain.Actor) int64 {
	jobs, _, err := h.Jobs.List(r.Context(), actor, domain.JobFilter{}, domain.PageRequest{MaxResults: 100})
	if err != nil {
		return 0
	}
	var total int64
	for _, j := range jobs {
		_, n, err := h.Applications.ListByJob(r.Context(), actor, j.ID, domain.PageRequest{MaxResults: 1})
		if err != nil {
			continue
		}
		total += n
	}
	return total
}
