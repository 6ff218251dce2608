package domain

import "strings"

// Role is the closed set of access roles. Role strings arriving from
// persisted sessions or API clients are parsed exactly once at the
// boundary; anything unrecognised becomes RoleUnknown rather than a raw
// string flowing through access decisions.
type Role string

const (
	RoleAdministrator      Role = "administrator"
	RoleRecruiter          Role = "recruiter"
	RoleHiringManager      Role = "hiring_manager"
	RoleManager            Role = "manager"
	RoleBankRepresentative Role = "bank_representative"
	RoleUser               Role = "user"
	RoleCandidate          Role = "candidate"
	RoleUnknown            Role = "unknown"
)

// AllRoles lists every valid role, excluding RoleUnknown.
var AllRoles = []Role{
	RoleAdministrator,
	RoleRecruiter,
	RoleHiringManager,
	RoleManager,
	RoleBankRepresentative,
	RoleUser,
	RoleCandidate,
}

var roleAliases = map[string]Role{
	"administrator":       RoleAdministrator,
	"admin":               RoleAdministrator,
	"recruiter":           RoleRecruiter,
	"hiring_manager":      RoleHiringManager,
	"hiringmanager":       RoleHiringManager,
	"manager":             RoleManager,
	"bank_representative": RoleBankRepresentative,
	"bankrepresentative":  RoleBankRepresentative,
	"user":                RoleUser,
	"candidate":           RoleCandidate,
}

// ParseRole maps a role string to a Role, coercing unknown or empty
// values to RoleUnknown.
func ParseRole(s string) Role {
	if r, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r
	}
	return RoleUnknown
}

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	return r != RoleUnknown && roleAliases[string(r)] == r
}

// String returns the canonical role identifier.
func (r Role) String() string { return string(r) }

// DisplayName returns a human-readable label for dashboards and menus.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdministrator:
		return "Administrator"
	case RoleRecruiter:
		return "Recruiter"
	case RoleHiringManager:
		return "Hiring Manager"
	case RoleManager:
		return "Manager"
	case RoleBankRepresentative:
		return "Bank Representative"
	case RoleUser:
		return "User"
	case RoleCandidate:
		return "Candidate"
	default:
		return "Unknown"
	}
}
