// Package access implements the role registry, the page permission
// table, and the access guard that decides what a session may view.
package access

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"catalyst-hr/internal/domain"
)

// PagePermission declares who may view a page. Wildcard pages are open
// to everyone, including unauthenticated visitors. RequiredRole, when
// set, is a stricter single-role check applied after the set check.
type PagePermission struct {
	Wildcard     bool
	Roles        []domain.Role
	RequiredRole domain.Role // zero value means no single-role requirement
}

func (p PagePermission) allows(role domain.Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Registry maps page paths to permissions and roles to navigation menus.
// Every page reachable from navigation has an entry; the fate of
// undeclared pages is the guard's default policy, not the registry's.
type Registry struct {
	pages map[string]PagePermission
}

// NewRegistry builds the registry with the built-in permission table.
func NewRegistry() *Registry {
	r := &Registry{pages: make(map[string]PagePermission)}
	for path, perm := range builtinPages {
		r.pages[path] = perm
	}
	return r
}

// Declare adds or replaces a page permission entry.
func (r *Registry) Declare(path string, perm PagePermission) {
	r.pages[path] = perm
}

// Lookup returns the permission entry for a page path.
func (r *Registry) Lookup(path string) (PagePermission, bool) {
	p, ok := r.pages[path]
	return p, ok
}

// Pages returns the number of declared entries.
func (r *Registry) Pages() int { return len(r.pages) }

var staffRoles = []domain.Role{
	domain.RoleAdministrator, domain.RoleRecruiter, domain.RoleHiringManager,
	domain.RoleManager, domain.RoleBankRepresentative,
}

var builtinPages = map[string]PagePermission{
	// Public surface.
	"/":         {Wildcard: true},
	"/login":    {Wildcard: true},
	"/register": {Wildcard: true},
	"/jobs":     {Wildcard: true},

	// Any signed-in account.
	"/profile":      {Roles: domain.AllRoles},
	"/applications": {Roles: domain.AllRoles},

	// Staff surfaces.
	"/pipeline": {Roles: []domain.Role{domain.RoleAdministrator, domain.RoleRecruiter, domain.RoleHiringManager}},
	"/jobs/new": {Roles: []domain.Role{domain.RoleAdministrator, domain.RoleRecruiter}},

	// Role dashboards. RequiredRole keeps administrators out of
	// dashboards that are not theirs, matching the stricter per-page
	// single-role checks of the original pages.
	"/dashboard/admin":     {Roles: []domain.Role{domain.RoleAdministrator}, RequiredRole: domain.RoleAdministrator},
	"/dashboard/recruiter": {Roles: []domain.Role{domain.RoleRecruiter}, RequiredRole: domain.RoleRecruiter},
	"/dashboard/manager":   {Roles: []domain.Role{domain.RoleHiringManager, domain.RoleManager}},
	"/dashboard/bank":      {Roles: []domain.Role{domain.RoleBankRepresentative}, RequiredRole: domain.RoleBankRepresentative},
	"/dashboard":           {Roles: staffRoles},
}

// permissionsFile is the YAML shape of a page permission overrides file.
type permissionsFile struct {
	Pages []struct {
		Path         string   `yaml:"path"`
		Any          bool     `yaml:"any"`
		Roles        []string `yaml:"roles"`
		RequiredRole string   `yaml:"required_role"`
	} `yaml:"pages"`
}

// LoadOverrides merges entries from a YAML file into the registry.
// Unknown role names in the file are rejected rather than coerced:
// a typo in an operator-written file should fail loudly at startup,
// unlike untrusted role strings arriving in sessions.
func (r *Registry) LoadOverrides(path string) error {
	raw, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		return fmt.Errorf("read page permissions %s: %w", path, err)
	}

	var file permissionsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse page permissions %s: %w", path, err)
	}

	for _, entry := range file.Pages {
		if entry.Path == "" {
			return fmt.Errorf("page permissions %s: entry with empty path", path)
		}
		perm := PagePermission{Wildcard: entry.Any}
		for _, name := range entry.Roles {
			role := domain.ParseRole(name)
			if role == domain.RoleUnknown {
				return fmt.Errorf("page permissions %s: unknown role %q for %s", path, name, entry.Path)
			}
			perm.Roles = append(perm.Roles, role)
		}
		if entry.RequiredRole != "" {
			role := domain.ParseRole(entry.RequiredRole)
			if role == domain.RoleUnknown {
				return fmt.Errorf("page permissions %s: unknown required_role %q for %s", path, entry.RequiredRole, entry.Path)
			}
			perm.RequiredRole = role
		}
		r.pages[entry.Path] = perm
	}
	return nil
}
