package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalyst-hr/internal/config"
	"catalyst-hr/internal/domain"
	"catalyst-hr/internal/session"
)

const testSecret = "test-secret"

func mintHS256(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func testSessionCfg() config.SessionConfig {
	return config.SessionConfig{
		MaxAge:           24 * time.Hour,
		WarningWindow:    5 * time.Minute,
		PollInterval:     time.Minute,
		ActivityThrottle: 30 * time.Second,
		RedirectDelay:    2 * time.Second,
		CookieName:       "catalyst_session",
	}
}

func echoPrincipal(t *testing.T) (http.Handler, *Principal) {
	t.Helper()
	captured := &Principal{}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		require.True(t, ok)
		*captured = p
		w.WriteHeader(http.StatusOK)
	}), captured
}

func TestAPIAuth_BearerToken(t *testing.T) {
	validator, err := NewHS256Validator(testSecret)
	require.NoError(t, err)
	inner, captured := echoPrincipal(t)
	handler := APIAuth(validator, nil)(inner)

	token := mintHS256(t, jwt.MapClaims{
		"sub":  "recruiter@catalyst.com",
		"name": "Rachel Recruiter",
		"role": "recruiter",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "recruiter@catalyst.com", captured.Email)
	assert.Equal(t, "Rachel Recruiter", captured.Name)
	assert.Equal(t, domain.RoleRecruiter, captured.Role)
}

func TestAPIAuth_InvalidBearerToken(t *testing.T) {
	validator, err := NewHS256Validator(testSecret)
	require.NoError(t, err)
	handler := APIAuth(validator, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestAPIAuth_SessionToken(t *testing.T) {
	store := session.NewMemoryStore()
	monitor := session.NewMonitor(store, testSessionCfg(), nil)
	now := time.Now().UTC()
	require.NoError(t, store.Save(context.Background(), &domain.Session{
		Token: "tok-1", Email: "demo@catalyst.com", DisplayName: "Demo User",
		Role: domain.RoleUser, StartedAt: now, LastActivity: now,
	}))

	inner, captured := echoPrincipal(t)
	handler := APIAuth(nil, monitor)(inner)

	req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
	req.Header.Set("X-Session-Token", "tok-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "demo@catalyst.com", captured.Email)
	assert.Equal(t, domain.RoleUser, captured.Role)
}

func TestAPIAuth_ExpiredSessionToken(t *testing.T) {
	store := session.NewMemoryStore()
	monitor := session.NewMonitor(store, testSessionCfg(), nil)
	old := time.Now().UTC().Add(-25 * time.Hour)
	require.NoError(t, store.Save(context.Background(), &domain.Session{
		Token: "tok-old", Email: "demo@catalyst.com", DisplayName: "Demo User",
		Role: domain.RoleUser, StartedAt: old, LastActivity: old,
	}))

	handler := APIAuth(nil, monitor)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
	req.Header.Set("X-Session-Token", "tok-old")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIAuth_NoCredentials(t *testing.T) {
	handler := APIAuth(nil, nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionLoader(t *testing.T) {
	cfg := testSessionCfg()
	store := session.NewMemoryStore()
	monitor := session.NewMonitor(store, cfg, nil)
	now := time.Now().UTC()
	require.NoError(t, store.Save(context.Background(), &domain.Session{
		Token: "tok-ui", Email: "demo@catalyst.com", DisplayName: "Demo User",
		Role: domain.RoleUser, StartedAt: now, LastActivity: now,
	}))

	var got *domain.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = domain.SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := SessionLoader(monitor, cfg)(inner)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "tok-ui"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "demo@catalyst.com", got.Email)
}

func TestSessionLoader_NoCookie(t *testing.T) {
	cfg := testSessionCfg()
	monitor := session.NewMonitor(session.NewMemoryStore(), cfg, nil)

	handler := SessionLoader(monitor, cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := domain.SessionFromContext(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionLoader_ExpiredClearsCookie(t *testing.T) {
	cfg := testSessionCfg()
	store := session.NewMemoryStore()
	monitor := session.NewMonitor(store, cfg, nil)
	old := time.Now().UTC().Add(-25 * time.Hour)
	require.NoError(t, store.Save(context.Background(), &domain.Session{
		Token: "tok-stale", Email: "demo@catalyst.com", DisplayName: "Demo User",
		Role: domain.RoleUser, StartedAt: old, LastActivity: old,
	}))

	handler := SessionLoader(monitor, cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := domain.SessionFromContext(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "tok-stale"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expired session cookie should be cleared")
}
