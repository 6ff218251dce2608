package ui

import (
	"strings"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"catalyst-hr/internal/domain"
)

// menuEntry is one navigation link, or a labeled group of links. Hrefs
// may carry the {base} placeholder, substituted at render time.
type menuEntry struct {
	Label    string
	Href     string
	Children []menuEntry
}

type menu struct {
	Brand   string
	Tagline string
	Entries []menuEntry
}

var publicMenu = menu{
	Brand:   "Catalyst HR",
	Tagline: "Find your next role",
	Entries: []menuEntry{
		{Label: "Home", Href: "{base}/"},
		{Label: "Jobs", Href: "{base}/jobs"},
		{Label: "Sign in", Href: "{base}/login"},
		{Label: "Register", Href: "{base}/register"},
	},
}

var candidateEntries = []menuEntry{
	{Label: "Home", Href: "{base}/"},
	{Label: "Jobs", Href: "{base}/jobs"},
	{Label: "My Applications", Href: "{base}/applications"},
	{Label: "Profile", Href: "{base}/profile"},
}

var roleMenus = map[domain.Role]menu{
	domain.RoleAdministrator: {
		Brand:   "Catalyst HR Admin",
		Tagline: "Full platform control",
		Entries: []menuEntry{
			{Label: "Home", Href: "{base}/"},
			{Label: "Jobs", Href: "{base}/jobs"},
			{Label: "Hiring", Children: []menuEntry{
				{Label: "Pipeline", Href: "{base}/pipeline"},
				{Label: "Post a Job", Href: "{base}/jobs/new"},
			}},
			{Label: "Admin Dashboard", Href: "{base}/dashboard/admin"},
			{Label: "Profile", Href: "{base}/profile"},
		},
	},
	domain.RoleRecruiter: {
		Brand:   "Catalyst Talent",
		Tagline: "Recruiting workspace",
		Entries: []menuEntry{
			{Label: "Home", Href: "{base}/"},
			{Label: "Jobs", Href: "{base}/jobs"},
			{Label: "Hiring", Children: []menuEntry{
				{Label: "Pipeline", Href: "{base}/pipeline"},
				{Label: "Post a Job", Href: "{base}/jobs/new"},
			}},
			{Label: "Dashboard", Href: "{base}/dashboard/recruiter"},
			{Label: "Profile", Href: "{base}/profile"},
		},
	},
	domain.RoleHiringManager: {
		Brand:   "Catalyst HR",
		Tagline: "Hiring manager view",
		Entries: []menuEntry{
			{Label: "Home", Href: "{base}/"},
			{Label: "Jobs", Href: "{base}/jobs"},
			{Label: "Pipeline", Href: "{base}/pipeline"},
			{Label: "Dashboard", Href: "{base}/dashboard/manager"},
			{Label: "Profile", Href: "{base}/profile"},
		},
	},
	domain.RoleManager: {
		Brand:   "Catalyst HR",
		Tagline: "Team management",
		Entries: []menuEntry{
			{Label: "Home", Href: "{base}/"},
			{Label: "Jobs", Href: "{base}/jobs"},
			{Label: "Dashboard", Href: "{base}/dashboard/manager"},
			{Label: "Profile", Href: "{base}/profile"},
		},
	},
	domain.RoleBankRepresentative: {
		Brand:   "Catalyst Partners",
		Tagline: "Partner bank portal",
		Entries: []menuEntry{
			{Label: "Home", Href: "{base}/"},
			{Label: "Dashboard", Href: "{base}/dashboard/bank"},
			{Label: "Profile", Href: "{base}/profile"},
		},
	},
	domain.RoleUser: {
		Brand:   "Catalyst HR",
		Tagline: "Find your next role",
		Entries: candidateEntries,
	},
	domain.RoleCandidate: {
		Brand:   "Catalyst HR",
		Tagline: "Find your next role",
		Entries: candidateEntries,
	},
}

// menuFor resolves the menu for a role, falling back to the public
// menu when unauthenticated or the role is unknown.
func menuFor(role domain.Role, authenticated bool) menu {
	if !authenticated {
		return publicMenu
	}
	if m, ok := roleMenus[role]; ok {
		return m
	}
	return publicMenu
}

// rewritePath substitutes the {base} placeholder in a menu href. The
// substitution is total (no placeholder survives) and idempotent: a
// path already rewritten passes through unchanged.
func rewritePath(href, basePrefix string) string {
	basePrefix = strings.TrimSuffix(basePrefix, "/")
	return strings.ReplaceAll(href, "{base}", basePrefix)
}

// Navigation renders the menu for a role and auth state. Pure: it is
// recomputed on every render and holds no cached state.
func Navigation(role domain.Role, authenticated bool, basePrefix string) Node {
	m := menuFor(role, authenticated)
	links := make([]Node, 0, len(m.Entries))
	for _, e := range m.Entries {
		if len(e.Children) > 0 {
			group := []Node{Div(Class("app-nav-group"), Text(e.Label))}
			for _, c := range e.Children {
				group = append(group, A(Href(rewritePath(c.Href, basePrefix)), Class("app-nav-link"), Text(c.Label)))
			}
			links = append(links, Group(group))
			continue
		}
		links = append(links, A(Href(rewritePath(e.Href, basePrefix)), Class("app-nav-link"), Text(e.Label)))
	}
	return Aside(
		Class("app-sidebar"),
		Div(
			Class("brand"),
			Strong(Text(m.Brand)),
			P(Class("text-small mb-0"), Text(m.Tagline)),
		),
		Nav(Class("app-nav"), Group(links)),
	)
}
