package ui

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"catalyst-hr/internal/domain"
)

// PipelinePage lists open postings and, when one is selected via the
// job query parameter, the candidates applied to it.
func (h *Handler) PipelinePage(w http.ResponseWriter, r *http.Request) {
	s := sessionFor(r)
	actor := actorFor(r)

	jobs, _, err := h.Jobs.List(r.Context(), actor, domain.JobFilter{}, domain.PageRequest{MaxResults: 100})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var selected *domain.Job
	var apps []domain.JobApplication
	if raw := r.URL.Query().Get("job"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			for i := range jobs {
				if jobs[i].ID == id {
					selected = &jobs[i]
					break
				}
			}
		}
		if selected != nil {
			apps, _, err = h.Applications.ListByJob(r.Context(), actor, selected.ID, domain.PageRequest{MaxResults: 100})
			if err != nil {
				h.renderError(w, r, err)
				return
			}
		}
	}

	renderHTML(w, http.StatusOK, pipelinePage(r, s, jobs, selected, apps))
}

// PipelineAdvance moves a candidate to the posted stage and returns
// to the pipeline view for the affected posting.
func (h *Handler) PipelineAdvance(w http.ResponseWriter, r *http.Request) {
	actor := actorFor(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.renderError(w, r, domain.ErrValidation("invalid application id"))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, domain.ErrValidation("invalid form submission"))
		return
	}
	stage := domain.ApplicationStage(formString(r.Form, "stage"))
	app, err := h.Applications.Advance(r.Context(), actor, id, stage)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/pipeline?job="+strconv.FormatInt(app.JobID, 10), http.StatusSeeOther)
}
