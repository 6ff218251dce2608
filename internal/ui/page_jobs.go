package ui

import (
	"fmt"
	"net/http"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"

	"catalyst-hr/internal/domain"
)

func salaryLabel(j domain.Job) string {
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return fmt.Sprintf("%d – %d", *j.SalaryMin, *j.SalaryMax)
	case j.SalaryMin != nil:
		return fmt.Sprintf("from %d", *j.SalaryMin)
	case j.SalaryMax != nil:
		return fmt.Sprintf("up to %d", *j.SalaryMax)
	default:
		return "not disclosed"
	}
}

func jobCard(j domain.Job) Node {
	return Div(
		Class("card"),
		H3(A(Href(fmt.Sprintf("/jobs/%d", j.ID)), Text(j.Title))),
		P(Class("job-meta"), Text(j.Company+" · "+j.Location+" · "+j.Type)),
		P(Class("job-meta"), Text("Salary: "+salaryLabel(j))),
	)
}

func jobsPage(s *domain.Session, filter domain.JobFilter, jobs []domain.Job, total int64) Node {
	cards := make([]Node, 0, len(jobs))
	for _, j := range jobs {
		cards = append(cards, jobCard(j))
	}
	if len(cards) == 0 {
		cards = append(cards, Div(Class("card"), P(Text("No open positions match your search."))))
	}

	return appPage("Jobs", s,
		Form(
			Method("get"),
			Action("/jobs"),
			Class("card"),
			data.Signals(map[string]any{"q": filter.Query}),
			Input(Type("search"), Class("form-control"), Name("query"), Value(filter.Query),
				Placeholder("Search title or company"), data.Bind("q"), AutoComplete("off")),
			Input(Type("text"), Class("form-control"), Name("location"), Value(filter.Location), Placeholder("Location")),
			Input(Type("text"), Class("form-control"), Name("department"), Value(filter.Department), Placeholder("Department")),
			Button(Type("submit"), Class("btn btn-primary btn-sm"), Text("Search")),
		),
		P(Class("job-meta"), Text(fmt.Sprintf("%d open positions", total))),
		Group(cards),
	)
}

func jobDetailPage(r *http.Request, s *domain.Session, j *domain.Job, applied bool) Node {
	content := []Node{
		Div(
			Class("card"),
			P(Class("job-meta"), Text(j.Company+" · "+j.Location+" · "+j.Type)),
			P(Class("job-meta"), Text("Department: "+j.Department)),
			P(Class("job-meta"), Text("Salary: "+salaryLabel(*j))),
			P(Text(j.Description)),
		),
	}

	switch {
	case !j.Open:
		content = append(content, Div(Class("card"), P(Text("This position is closed."))))
	case s == nil:
		content = append(content, Div(Class("card"),
			P(Text("Sign in to apply for this position.")),
			A(Href("/login"), Class("btn btn-primary"), Text("Sign in")),
		))
	case applied:
		content = append(content, Div(Class("card"), P(Text("You have already applied to this position."))))
	default:
		content = append(content, Div(Class("card"),
			H3(Text("Apply for this position")),
			Form(
				Method("post"),
				Action(fmt.Sprintf("/jobs/%d/apply", j.ID)),
				Class("login-form"),
				csrfField(r),
				Label(For("resume_url"), Text("Resume URL")),
				Input(Type("url"), ID("resume_url"), Name("resume_url"), Placeholder("https://...")),
				Label(For("cover_letter"), Text("Cover letter")),
				Textarea(ID("cover_letter"), Name("cover_letter"), Rows("5")),
				Button(Type("submit"), Class("btn btn-primary"), Text("Submit application")),
			),
		))
	}

	return appPage(j.Title, s, content...)
}

func jobNewPage(r *http.Request, s *domain.Session, errMsg string) Node {
	content := []Node{}
	if errMsg != "" {
		content = append(content, P(Class("error"), Text(errMsg)))
	}
	content = append(content, Div(Class("card"),
		Form(
			Method("post"),
			Action("/jobs/new"),
			Class("login-form"),
			csrfField(r),
			Label(For("title"), Text("Title")),
			Input(Type("text"), ID("title"), Name("title"), Required()),
			Label(For("company"), Text("Company")),
			Input(Type("text"), ID("company"), Name("company"), Required()),
			Label(For("location"), Text("Location")),
			Input(Type("text"), ID("location"), Name("location")),
			Label(For("department"), Text("Department")),
			Input(Type("text"), ID("department"), Name("department")),
			Label(For("type"), Text("Type")),
			Select(ID("type"), Name("type"),
				Option(Value("full_time"), Text("Full time")),
				Option(Value("part_time"), Text("Part time")),
				Option(Value("contract"), Text("Contract")),
				Option(Value("internship"), Text("Internship")),
			),
			Label(For("salary_min"), Text("Salary range")),
			Input(Type("number"), ID("salary_min"), Name("salary_min"), Placeholder("min")),
			Input(Type("number"), Name("salary_max"), Placeholder("max")),
			Label(For("description"), Text("Description")),
			Textarea(ID("description"), Name("description"), Rows("6")),
			Button(Type("submit"), Class("btn btn-primary"), Text("Publish")),
		),
	))
	return appPage("Post a Job", s, content...)
}
