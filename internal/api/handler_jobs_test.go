package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "catalyst-hr/internal/db"
	"catalyst-hr/internal/db/repository"
	"catalyst-hr/internal/domain"
	"catalyst-hr/internal/service"
)

func TestCreateJob(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, apiRecruiter, http.MethodPost, "/v1/jobs", map[string]any{
		"title": "Platform Engineer", "company": "Catalyst", "location": "Berlin",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "Platform Engineer", body["title"])
	assert.Equal(t, "full_time", body["type"])
	assert.Equal(t, true, body["open"])

	// Candidates may not publish.
	rec = a.do(t, apiCandidate, http.MethodPost, "/v1/jobs", map[string]any{
		"title": "X", "company": "Y",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Missing title is a 400.
	rec = a.do(t, apiRecruiter, http.MethodPost, "/v1/jobs", map[string]any{"company": "Y"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListJobs(t *testing.T) {
	a := newTestAPI(t)
	postJob(t, a)

	rec := a.do(t, apiCandidate, http.MethodGet, "/v1/jobs?query=backend&location=Madrid", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.EqualValues(t, 1, body["total"])
	assert.Len(t, body["jobs"], 1)

	rec = a.do(t, apiCandidate, http.MethodGet, "/v1/jobs?query=nomatch", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeMap(t, rec)
	assert.EqualValues(t, 0, body["total"])
}

func TestGetJob(t *testing.T) {
	a := newTestAPI(t)
	id := postJob(t, a)

	rec := a.do(t, apiCandidate, http.MethodGet, fmt.Sprintf("/v1/jobs/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "Backend Engineer", body["title"])

	rec = a.do(t, apiCandidate, http.MethodGet, "/v1/jobs/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(t, apiCandidate, http.MethodGet, "/v1/jobs/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListJobsDegradesOnStoreFailure(t *testing.T) {
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	jobRepo := repository.NewJobRepo(writeDB, readDB)
	jobs := service.NewJobService(jobRepo, nil)
	handler := NewHandler(nil, jobs, nil, nil, nil, nil)
	require.NoError(t, writeDB.Close())

	a := testAPI{handler: handler, jobs: jobs}
	rec := a.do(t, apiCandidate, http.MethodGet, "/v1/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.EqualValues(t, 0, body["total"])
	assert.Empty(t, body["jobs"])
}

func TestListJobsEmptyPastLastPage(t *testing.T) {
	a := newTestAPI(t)
	postJob(t, a)

	token := domain.EncodePageToken(10000)
	rec := a.do(t, apiCandidate, http.MethodGet, "/v1/jobs?page_token="+token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "", body["next_page_token"])
	assert.Empty(t, body["jobs"])
}
