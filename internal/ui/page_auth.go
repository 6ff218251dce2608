package ui

import (
	"net/http"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"catalyst-hr/internal/auth"
)

func authShell(title string, content ...Node) Node {
	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Class("login-body"),
			Main(Class("login-wrap"), Group(content)),
		),
	)
}

func loginPage(r *http.Request, errMsg string) Node {
	content := []Node{
		H1(Text("Catalyst HR")),
		P(Text("Sign in to browse jobs, apply, and track your pipeline.")),
	}
	if errMsg != "" {
		content = append(content, P(Class("error"), Text(errMsg)))
	}
	content = append(content,
		Form(
			Method("post"),
			Action("/login"),
			Class("login-form"),
			csrfField(r),
			nextField(r),
			Label(For("email"), Text("Email")),
			Input(Type("email"), ID("email"), Name("email"), Placeholder("you@example.com"), Required()),
			Label(For("password"), Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), Required()),
			Button(Type("submit"), Class("btn btn-primary"), Text("Sign in")),
		),
		P(Class("job-meta"), Text("Demo accounts share the password 123456: demo@, admin@, recruiter@, manager@, bank@ and personas@catalyst.com.")),
		P(A(Href("/register"), Text("No account? Register here."))),
	)
	return authShell("Sign in", content...)
}

// nextField carries the page the visitor was trying to reach through
// the sign-in forms. Empty when they came to /login directly.
func nextField(r *http.Request) Node {
	next := r.FormValue("next")
	if next == "" {
		return nil
	}
	return Input(Type("hidden"), Name("next"), Value(next))
}

// personaPage lets the shared personas account pick which role this
// session should carry.
func personaPage(r *http.Request, email string, candidates []auth.DemoAccount) Node {
	options := make([]Node, 0, len(candidates))
	for _, c := range candidates {
		options = append(options, Div(
			Class("card"),
			Form(
				Method("post"),
				Action("/login/persona"),
				csrfField(r),
				nextField(r),
				Input(Type("hidden"), Name("email"), Value(email)),
				Input(Type("hidden"), Name("role"), Value(c.Role.String())),
				Strong(Text(c.DisplayName)),
				P(Class("job-meta"), Text(c.Role.DisplayName())),
				Button(Type("submit"), Class("btn btn-primary btn-sm"), Text("Continue as "+c.Role.DisplayName())),
			),
		))
	}
	return authShell("Choose a role",
		H1(Text("Who is signing in?")),
		P(Text("This account has several personas. Pick one to continue.")),
		Group(options),
	)
}

func registerPage(r *http.Request, errMsg string) Node {
	content := []Node{
		H1(Text("Create your account")),
		P(Text("Register to apply for openings and track your applications.")),
	}
	if errMsg != "" {
		content = append(content, P(Class("error"), Text(errMsg)))
	}
	content = append(content,
		Form(
			Method("post"),
			Action("/register"),
			Class("login-form"),
			csrfField(r),
			Label(For("display_name"), Text("Full name")),
			Input(Type("text"), ID("display_name"), Name("display_name"), Required()),
			Label(For("email"), Text("Email")),
			Input(Type("email"), ID("email"), Name("email"), Required()),
			Label(For("password"), Text("Password (6+ characters)")),
			Input(Type("password"), ID("password"), Name("password"), Required()),
			Label(For("department"), Text("Department (optional)")),
			Input(Type("text"), ID("department"), Name("department")),
			Button(Type("submit"), Class("btn btn-primary"), Text("Register")),
		),
		P(A(Href("/login"), Text("Already registered? Sign in."))),
	)
	return authShell("Register", content...)
}
