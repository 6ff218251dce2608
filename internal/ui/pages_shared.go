package ui

import (
	"fmt"
	"time"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"catalyst-hr/internal/domain"
)

func pageHead(title string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | Catalyst HR")),
		Link(Rel("icon"), Href("data:,")),
		Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
		Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
		Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
		Link(Rel("stylesheet"), Href("/static/app.css")),
		Script(
			Type("module"),
			Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
		),
	)
}

// appPage is the shared authenticated-or-public shell: sidebar
// navigation, topbar, and the session warning banner when the session
// has entered its warning window.
func appPage(title string, s *domain.Session, body ...Node) Node {
	role := domain.RoleUnknown
	authenticated := false
	signedInAs := ""
	if s != nil && s.Email != "" {
		role = s.Role
		authenticated = true
		signedInAs = s.DisplayName
		if signedInAs == "" {
			signedInAs = s.Email
		}
	}

	var topRight Node
	if authenticated {
		topRight = Div(
			P(Class("job-meta mb-2"), Text("Signed in as "+signedInAs+" ("+role.DisplayName()+")")),
			Form(
				Method("post"),
				Action("/logout"),
				Button(Type("submit"), Class("btn btn-sm"), Text("Sign out")),
			),
		)
	} else {
		topRight = Div(
			A(Href("/login"), Class("btn btn-sm"), Text("Sign in")),
		)
	}

	content := []Node{}
	if authenticated && s.Warned {
		content = append(content, sessionWarningBanner())
	}
	content = append(content, body...)

	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Main(Class("app-shell"),
				Navigation(role, authenticated, ""),
				Section(
					Class("app-main"),
					Div(
						Class("topbar"),
						H1(Class("page-title"), Text(title)),
						topRight,
					),
					Div(Class("content"), Group(content)),
				),
			),
		),
	)
}

func sessionWarningBanner() Node {
	return Div(
		Class("session-banner"),
		Span(Text("Your session is about to expire.")),
		Form(
			Method("post"),
			Action("/session/extend"),
			Button(Type("submit"), Class("btn btn-sm btn-primary"), Text("Stay signed in")),
		),
	)
}

// sessionExpiredPage shows the expiry notice. On protected pages the
// browser is sent home after the configured delay; on public pages the
// notice just offers a link back, no forced redirect.
func sessionExpiredPage(maxAge time.Duration, continueTo string, delaySeconds int, autoRedirect bool) Node {
	notice := "You have been signed out after " + formatMaxAge(maxAge) + "."
	if autoRedirect {
		notice += " Redirecting you home."
	}
	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			TitleEl(Text("Session expired | Catalyst HR")),
			If(autoRedirect,
				Meta(Attr("http-equiv", "refresh"), Content(fmt.Sprintf("%d;url=%s", delaySeconds, continueTo)))),
			Link(Rel("stylesheet"), Href("/static/app.css")),
		),
		Body(
			Div(
				Class("denied-wrap card"),
				H1(Text("Session expired")),
				P(Text(notice)),
				A(Href(continueTo), Class("btn btn-primary"), Text("Continue now")),
			),
		),
	)
}

func formatMaxAge(maxAge time.Duration) string {
	if maxAge >= time.Hour && maxAge%time.Hour == 0 {
		h := int(maxAge / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	return maxAge.String()
}

func accessDeniedPage(s *domain.Session) Node {
	return appPage("Access denied", s,
		Div(
			Class("denied-wrap card"),
			H1(Text("Access denied")),
			P(Text("Your role does not grant access to this page.")),
			A(Href("/"), Class("btn btn-primary"), Text("Back to home")),
		),
	)
}

func errorPage(title, message string) Node {
	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Div(
				Class("denied-wrap card"),
				H1(Text(title)),
				P(Text(message)),
				A(Href("/"), Class("btn"), Text("Back to home")),
			),
		),
	)
}
