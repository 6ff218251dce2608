package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"catalyst-hr/internal/domain"
)

func (h *Handler) JobsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.JobFilter{
		Query:      q.Get("query"),
		Location:   q.Get("location"),
		Department: q.Get("department"),
		Type:       q.Get("type"),
		OpenOnly:   true,
	}
	jobs, total, err := h.Jobs.List(r.Context(), actorFor(r), filter, domain.PageRequest{MaxResults: 50})
	if err != nil {
		// Degrade to an empty board rather than a hard failure.
		h.Logger.Warn("job listing failed, rendering empty board", "error", err)
		jobs, total = nil, 0
	}
	renderHTML(w, http.StatusOK, jobsPage(sessionFor(r), filter, jobs, total))
}

func (h *Handler) JobDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderHTML(w, http.StatusNotFound, errorPage("Not found", "That job posting does not exist."))
		return
	}
	job, err := h.Jobs.Get(r.Context(), actorFor(r), id)
	if err != nil {
		renderHTML(w, http.StatusNotFound, errorPage("Not found", "That job posting does not exist."))
		return
	}

	applied := false
	if s := sessionFor(r); s != nil {
		if mine, err := h.Applications.ListMine(r.Context(), actorFor(r)); err == nil {
			for _, a := range mine {
				if a.JobID == job.ID {
					applied = true
					break
				}
			}
		}
	}
	renderHTML(w, http.StatusOK, jobDetailPage(r, sessionFor(r), job, applied))
}

func (h *Handler) JobNewPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, jobNewPage(r, sessionFor(r), r.URL.Query().Get("error")))
}

func (h *Handler) JobCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/jobs/new?error="+url.QueryEscape("invalid form submission"), http.StatusSeeOther)
		return
	}
	salaryMin, err := formOptionalInt64(r.Form, "salary_min")
	if err != nil {
		http.Redirect(w, r, "/jobs/new?error="+url.QueryEscape("salary minimum must be a whole number"), http.StatusSeeOther)
		return
	}
	salaryMax, err := formOptionalInt64(r.Form, "salary_max")
	if err != nil {
		http.Redirect(w, r, "/jobs/new?error="+url.QueryEscape("salary maximum must be a whole number"), http.StatusSeeOther)
		return
	}
	job, err := h.Jobs.Create(r.Context(), actorFor(r), domain.CreateJobRequest{
		Title:       formString(r.Form, "title"),
		Company:     formString(r.Form, "company"),
		Location:    formString(r.Form, "location"),
		Department:  formString(r.Form, "department"),
		Type:        formString(r.Form, "type"),
		Description: formString(r.Form, "description"),
		SalaryMin:   salaryMin,
		SalaryMax:   salaryMax,
	})
	if err != nil {
		var verr *domain.ValidationError
		msg := "could not publish the posting"
		if errors.As(err, &verr) {
			msg = err.Error()
		}
		http.Redirect(w, r, "/jobs/new?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/jobs/"+strconv.FormatInt(job.ID, 10), http.StatusSeeOther)
}

func (h *Handler) ApplySubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderHTML(w, http.StatusNotFound, errorPage("Not found", "That job posting does not exist."))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/jobs/"+chi.URLParam(r, "id"), http.StatusSeeOther)
		return
	}
	s := sessionFor(r)
	name := ""
	if s != nil {
		name = s.DisplayName
	}
	_, err = h.Applications.Submit(r.Context(), actorFor(r), domain.SubmitApplicationRequest{
		JobID:         id,
		CandidateName: name,
		ResumeURL:     formString(r.Form, "resume_url"),
		CoverLetter:   formString(r.Form, "cover_letter"),
	})
	if err != nil {
		var conflict *domain.ConflictError
		if !errors.As(err, &conflict) {
			h.Logger.Warn("application submit failed", "error", err)
		}
	}
	http.Redirect(w, r, "/applications", http.StatusSeeOther)
}
