package repository

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "catalyst-hr/internal/db"
	"catalyst-hr/internal/domain"
)

func testSession(token string) *domain.Session {
	now := time.Now().Truncate(time.Millisecond)
	return &domain.Session{
		Token:        token,
		Email:        "alice@catalyst.com",
		DisplayName:  "Alice",
		Role:         domain.RoleRecruiter,
		Department:   "Talent",
		StartedAt:    now.Add(-time.Hour),
		LastActivity: now,
	}
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewSessionRepo(writeDB)
	ctx := context.Background()

	s := testSession("tok-1")
	require.NoError(t, repo.Save(ctx, s))

	loaded, err := repo.Load(ctx, "tok-1")
	require.NoError(t, err)

	// Save followed by Load yields a session equal in all fields.
	assert.Equal(t, s.Token, loaded.Token)
	assert.Equal(t, s.Email, loaded.Email)
	assert.Equal(t, s.DisplayName, loaded.DisplayName)
	assert.Equal(t, s.Role, loaded.Role)
	assert.Equal(t, s.Department, loaded.Department)
	assert.Equal(t, s.StartedAt.UnixMilli(), loaded.StartedAt.UnixMilli())
	assert.Equal(t, s.LastActivity.UnixMilli(), loaded.LastActivity.UnixMilli())
	assert.Equal(t, s.Warned, loaded.Warned)
}

func TestSessionRepo_SaveUpserts(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewSessionRepo(writeDB)
	ctx := context.Background()

	s := testSession("tok-1")
	require.NoError(t, repo.Save(ctx, s))

	s.Warned = true
	s.StartedAt = s.StartedAt.Add(30 * time.Minute)
	require.NoError(t, repo.Save(ctx, s))

	loaded, err := repo.Load(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, loaded.Warned)
	assert.Equal(t, s.StartedAt.UnixMilli(), loaded.StartedAt.UnixMilli())

	sessions, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestSessionRepo_ClearIdempotent(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewSessionRepo(writeDB)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession("tok-1")))
	require.NoError(t, repo.Clear(ctx, "tok-1"))

	var notFound *domain.NotFoundError
	_, err := repo.Load(ctx, "tok-1")
	require.ErrorAs(t, err, &notFound)

	// Clearing twice leaves the session absent both times.
	require.NoError(t, repo.Clear(ctx, "tok-1"))
	_, err = repo.Load(ctx, "tok-1")
	require.ErrorAs(t, err, &notFound)
}

func TestSessionRepo_MalformedRowFailsClosed(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewSessionRepo(writeDB)
	ctx := context.Background()

	// A row with an empty email is corrupt: treated as absent, never an error.
	_, err := writeDB.ExecContext(ctx,
		`INSERT INTO sessions (token, email, role, started_at_ms, last_activity_ms)
		 VALUES ('bad', '', 'user', 0, 0)`)
	require.NoError(t, err)

	var notFound *domain.NotFoundError
	_, err = repo.Load(ctx, "bad")
	require.ErrorAs(t, err, &notFound)

	// The corrupt row was removed, and sweeps never see it.
	sessions, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSessionRepo_UnknownRoleCoerced(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewSessionRepo(writeDB)
	ctx := context.Background()

	_, err := writeDB.ExecContext(ctx,
		`INSERT INTO sessions (token, email, role, started_at_ms, last_activity_ms)
		 VALUES ('tok', 'x@y.com', 'superuser', ?, ?)`,
		time.Now().UnixMilli(), time.Now().UnixMilli())
	require.NoError(t, err)

	s, err := repo.Load(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUnknown, s.Role)
}

func TestSessionRepo_SaveRejectsPartialSession(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewSessionRepo(writeDB)

	var verr *domain.ValidationError
	err := repo.Save(context.Background(), &domain.Session{Token: "t"})
	require.ErrorAs(t, err, &verr)

	err = repo.Save(context.Background(), &domain.Session{Email: "a@b.com"})
	require.ErrorAs(t, err, &verr)
}
