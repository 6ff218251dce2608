package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalyst-hr/internal/auth"
	internaldb "catalyst-hr/internal/db"
	"catalyst-hr/internal/db/repository"
	"catalyst-hr/internal/session"
)

func newTokenHandler(t *testing.T) *TokenHandler {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	users := repository.NewUserRepo(writeDB, readDB)
	store := session.NewMemoryStore()
	authSvc := auth.NewService(users, store, nil, "123456", nil)
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return NewTokenHandler(authSvc, issuer, nil)
}

func postToken(t *testing.T, h *TokenHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	h.MintToken(rr, req)
	return rr
}

func TestMintTokenWithDemoCredentials(t *testing.T) {
	h := newTokenHandler(t)
	rr := postToken(t, h, map[string]string{
		"email":    "recruiter@catalyst.com",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body["session_token"])
	assert.Equal(t, "recruiter", body["role"])

	parsed, err := jwt.Parse(body["token"], func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "recruiter@catalyst.com", claims["sub"])
	assert.Equal(t, "recruiter", claims["role"])
}

func TestMintTokenRejectsBadPassword(t *testing.T) {
	h := newTokenHandler(t)
	rr := postToken(t, h, map[string]string{
		"email":    "recruiter@catalyst.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMintTokenRequiresCredentials(t *testing.T) {
	h := newTokenHandler(t)
	rr := postToken(t, h, map[string]string{"email": "recruiter@catalyst.com"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMintTokenAmbiguousPersonas(t *testing.T) {
	h := newTokenHandler(t)

	// Without a role the shared account cannot be resolved.
	rr := postToken(t, h, map[string]string{
		"email":    "personas@catalyst.com",
		"password": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "role")

	// With one it mints for that persona.
	rr2 := postToken(t, h, map[string]string{
		"email":    "personas@catalyst.com",
		"password": "123456",
		"role":     "hiring_manager",
	})
	require.Equal(t, http.StatusOK, rr2.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr2.Body.Bytes(), &body))
	assert.Equal(t, "hiring_manager", body["role"])
}
