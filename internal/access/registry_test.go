package access

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalyst-hr/internal/domain"
)

func TestRegistry_Builtins(t *testing.T) {
	reg := NewRegistry()

	perm, ok := reg.Lookup("/jobs")
	require.True(t, ok)
	assert.True(t, perm.Wildcard)

	perm, ok = reg.Lookup("/dashboard/admin")
	require.True(t, ok)
	assert.Equal(t, []domain.Role{domain.RoleAdministrator}, perm.Roles)
	assert.Equal(t, domain.RoleAdministrator, perm.RequiredRole)

	_, ok = reg.Lookup("/no-such-page")
	assert.False(t, ok)
}

func TestRegistry_LoadOverrides(t *testing.T) {
	reg := NewRegistry()

	path := filepath.Join(t.TempDir(), "pages.yaml")
	content := `
pages:
  - path: /reports
    roles: [administrator, manager]
  - path: /kiosk
    any: true
  - path: /dashboard/admin
    roles: [administrator, recruiter]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, reg.LoadOverrides(path))

	perm, ok := reg.Lookup("/reports")
	require.True(t, ok)
	assert.ElementsMatch(t, []domain.Role{domain.RoleAdministrator, domain.RoleManager}, perm.Roles)

	perm, ok = reg.Lookup("/kiosk")
	require.True(t, ok)
	assert.True(t, perm.Wildcard)

	// Overrides replace built-in entries, dropping the RequiredRole.
	perm, _ = reg.Lookup("/dashboard/admin")
	assert.Len(t, perm.Roles, 2)
	assert.Equal(t, domain.Role(""), perm.RequiredRole)
}

func TestRegistry_LoadOverridesRejectsUnknownRole(t *testing.T) {
	reg := NewRegistry()

	path := filepath.Join(t.TempDir(), "pages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pages:\n  - path: /x\n    roles: [superuser]\n"), 0o600))

	err := reg.LoadOverrides(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "superuser")
}

func TestRegistry_LoadOverridesRejectsEmptyPath(t *testing.T) {
	reg := NewRegistry()

	path := filepath.Join(t.TempDir(), "pages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pages:\n  - roles: [user]\n"), 0o600))

	require.Error(t, reg.LoadOverrides(path))
}

func TestRegistry_LoadOverridesMissingFile(t *testing.T) {
	require.Error(t, NewRegistry().LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml")))
}
