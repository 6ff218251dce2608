package repository

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "catalyst-hr/internal/db"
	"catalyst-hr/internal/domain"
)

func setupUserRepo(t *testing.T) *UserRepo {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	return NewUserRepo(writeDB, readDB)
}

func TestUserRepo_CRUD(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	u, err := repo.Create(ctx, &domain.User{
		Email:        "alice@catalyst.com",
		DisplayName:  "Alice",
		PasswordHash: "$2a$10$fakehash",
		Role:         domain.RoleRecruiter,
		Department:   "Talent",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotZero(t, u.ID)
	assert.Equal(t, domain.RoleRecruiter, u.Role)
	assert.False(t, u.CreatedAt.IsZero())

	found, err := repo.GetByEmail(ctx, "alice@catalyst.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "Alice", found.DisplayName)

	users, total, err := repo.List(ctx, domain.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, users, 1)

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.GetByEmail(ctx, "alice@catalyst.com")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Email: "dup@x.com", DisplayName: "A", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Email: "dup@x.com", DisplayName: "B", Role: domain.RoleUser})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUserRepo_UnknownRoleCoerced(t *testing.T) {
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB, readDB)
	ctx := context.Background()

	// A role written outside the closed set comes back as RoleUnknown.
	_, err := writeDB.ExecContext(ctx,
		`INSERT INTO users (email, display_name, role) VALUES ('x@y.com', 'X', 'superuser')`)
	require.NoError(t, err)

	u, err := repo.GetByEmail(ctx, "x@y.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUnknown, u.Role)
}
