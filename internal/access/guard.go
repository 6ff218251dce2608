package access

import (
	"catalyst-hr/internal/domain"
)

// Decision is the outcome of an access check. RedirectToLogin and Deny
// are terminal for the page load: no further handling runs.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	Deny
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// Guard decides page access from the permission table and the session.
type Guard struct {
	registry    *Registry
	defaultDeny bool
}

// NewGuard creates a guard. defaultDeny controls the fate of pages with
// no permission entry: the original system silently treated them as
// open, which is preserved only when explicitly configured.
func NewGuard(registry *Registry, defaultDeny bool) *Guard {
	return &Guard{registry: registry, defaultDeny: defaultDeny}
}

// Check evaluates access for a page path against the current session
// (nil means absent).
func (g *Guard) Check(pagePath string, s *domain.Session) Decision {
	perm, declared := g.registry.Lookup(pagePath)

	if !declared {
		if !g.defaultDeny {
			return Allow
		}
		// Undeclared under default-deny behaves like a page no role may
		// view: anonymous visitors go to login, signed-in ones are denied.
		if s == nil || s.Email == "" {
			return RedirectToLogin
		}
		return Deny
	}

	if perm.Wildcard {
		return Allow
	}
	if s == nil || s.Email == "" {
		return RedirectToLogin
	}
	if !perm.allows(s.Role) {
		return Deny
	}
	if perm.RequiredRole != "" && s.Role != perm.RequiredRole {
		return Deny
	}
	return Allow
}
