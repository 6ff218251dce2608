package ui

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginRecruiter(t *testing.T, app *testApp) *http.Cookie {
	t.Helper()
	rr := app.postForm(t, "/login", url.Values{
		"email":    {"recruiter@catalyst.com"},
		"password": {testDemoPassword},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	return sessionCookieFrom(t, rr, app.handler.SessionCfg.CookieName)
}

func TestJobCreateAndDetailShowsSalary(t *testing.T) {
	app := newTestApp(t)
	cookie := loginRecruiter(t, app)

	rr := app.postForm(t, "/jobs/new", url.Values{
		"title":      {"Backend Engineer"},
		"company":    {"Catalyst"},
		"location":   {"Remote"},
		"salary_min": {"100000"},
		"salary_max": {"150000"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	loc := rr.Header().Get("Location")
	require.Regexp(t, `^/jobs/\d+$`, loc)

	detail := app.get(t, loc, cookie)
	require.Equal(t, http.StatusOK, detail.Code)
	body := detail.Body.String()
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "Salary: 100000 – 150000")
}

func TestJobCreateRejectsMalformedSalary(t *testing.T) {
	app := newTestApp(t)
	cookie := loginRecruiter(t, app)

	for _, tt := range []struct {
		field, value, want string
	}{
		{"salary_min", "lots", "salary minimum must be a whole number"},
		{"salary_max", "9.5", "salary maximum must be a whole number"},
	} {
		rr := app.postForm(t, "/jobs/new", url.Values{
			"title":   {"Backend Engineer"},
			"company": {"Catalyst"},
			tt.field:  {tt.value},
		}, cookie)
		require.Equal(t, http.StatusSeeOther, rr.Code)
		loc, err := url.Parse(rr.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/jobs/new", loc.Path)
		assert.Equal(t, tt.want, loc.Query().Get("error"), "field %s", tt.field)
	}
}
