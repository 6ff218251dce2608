package auth

import "catalyst-hr/internal/domain"

// DemoAccount is a fixed account in the demo directory. Demo accounts
// share one password and never touch the user repository.
type DemoAccount struct {
	Email       string
	DisplayName string
	Role        domain.Role
	Department  string
}

// personasEmail is the one demo address shared by several personas; a
// login against it requires a role choice before the session is final.
const personasEmail = "personas@catalyst.com"

var demoDirectory = map[string]DemoAccount{
	"demo@catalyst.com": {
		Email: "demo@catalyst.com", DisplayName: "Demo User", Role: domain.RoleUser,
	},
	"admin@catalyst.com": {
		Email: "admin@catalyst.com", DisplayName: "Ada Admin", Role: domain.RoleAdministrator, Department: "IT",
	},
	"recruiter@catalyst.com": {
		Email: "recruiter@catalyst.com", DisplayName: "Rita Recruiter", Role: domain.RoleRecruiter, Department: "Talent",
	},
	"manager@catalyst.com": {
		Email: "manager@catalyst.com", DisplayName: "Manu Manager", Role: domain.RoleHiringManager, Department: "Engineering",
	},
	"bank@catalyst.com": {
		Email: "bank@catalyst.com", DisplayName: "Bruno Bank", Role: domain.RoleBankRepresentative, Department: "Finance",
	},
}

var demoPersonas = []DemoAccount{
	{Email: personasEmail, DisplayName: "Pat (Recruiter)", Role: domain.RoleRecruiter, Department: "Talent"},
	{Email: personasEmail, DisplayName: "Pat (Hiring Manager)", Role: domain.RoleHiringManager, Department: "Engineering"},
	{Email: personasEmail, DisplayName: "Pat (Candidate)", Role: domain.RoleCandidate},
}

// DemoAccounts returns the demo directory entries, for seeding and the
// login page hint box.
func DemoAccounts() []DemoAccount {
	out := make([]DemoAccount, 0, len(demoDirectory))
	for _, a := range demoDirectory {
		out = append(out, a)
	}
	return out
}
