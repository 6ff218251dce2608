package api

import (
	"net/http"
	"time"

	"catalyst-hr/internal/domain"
)

type applicationResponse struct {
	ID             int64  `json:"id"`
	JobID          int64  `json:"job_id"`
	CandidateEmail string `json:"candidate_email"`
	CandidateName  string `json:"candidate_name"`
	ResumeURL      string `json:"resume_url,omitempty"`
	CoverLetter    string `json:"cover_letter,omitempty"`
	Stage          string `json:"stage"`
	SubmittedAt    string `json:"submitted_at"`
	UpdatedAt      string `json:"updated_at"`
}

func applicationToAPI(a domain.JobApplication) applicationResponse {
	return applicationResponse{
		ID:             a.ID,
		JobID:          a.JobID,
		CandidateEmail: a.CandidateEmail,
		CandidateName:  a.CandidateName,
		ResumeURL:      a.ResumeURL,
		CoverLetter:    a.CoverLetter,
		Stage:          string(a.Stage),
		SubmittedAt:    a.SubmittedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type submitApplicationRequest struct {
	JobID         int64  `json:"job_id"`
	CandidateName string `json:"candidate_name"`
	ResumeURL     string `json:"resume_url"`
	CoverLetter   string `json:"cover_letter"`
}

func (h *Handler) submitApplication(w http.ResponseWriter, r *http.Request) {
	var req submitApplicationRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	app, err := h.applications.Submit(r.Context(), actorFromRequest(r), domain.SubmitApplicationRequest{
		JobID:         req.JobID,
		CandidateName: req.CandidateName,
		ResumeURL:     req.ResumeURL,
		CoverLetter:   req.CoverLetter,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, applicationToAPI(*app))
}

func (h *Handler) listMyApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applications.ListMine(r.Context(), actorFromRequest(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = applicationToAPI(a)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"applications": out})
}

func (h *Handler) listJobApplications(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	page := pageFromRequest(r)
	apps, total, err := h.applications.ListByJob(r.Context(), actorFromRequest(r), jobID, page)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = applicationToAPI(a)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"applications":    out,
		"total":           total,
		"next_page_token": domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}

type advanceApplicationRequest struct {
	Stage string `json:"stage"`
}

func (h *Handler) advanceApplication(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req advanceApplicationRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	app, err := h.applications.Advance(r.Context(), actorFromRequest(r), id, domain.ApplicationStage(req.Stage))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, applicationToAPI(*app))
}
