package ui

import (
	"fmt"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"catalyst-hr/internal/domain"
)

func statCard(label string, value string) Node {
	return Div(Class("card stat-card"),
		P(Class("stat-value"), Text(value)),
		P(Class("stat-label"), Text(label)),
	)
}

func adminDashboardPage(s *domain.Session, users []domain.User, openJobs, totalApps int64) Node {
	rows := make([]Node, 0, len(users))
	for _, u := range users {
		rows = append(rows, Tr(
			Td(Text(u.DisplayName)),
			Td(Text(u.Email)),
			Td(Text(u.Role.DisplayName())),
			Td(Text(u.Department)),
			Td(Text(u.CreatedAt.Format("2006-01-02"))),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, Tr(Td(ColSpan("5"), Text("No users yet."))))
	}
	return appPage("Admin Dashboard", s,
		Div(Class("stat-row"),
			statCard("Users", strconv.Itoa(len(users))),
			statCard("Open postings", strconv.FormatInt(openJobs, 10)),
			statCard("Applications", strconv.FormatInt(totalApps, 10)),
		),
		Div(Class("card"),
			H3(Text("Users")),
			Table(
				THead(Tr(
					Th(Text("Name")), Th(Text("Email")), Th(Text("Role")),
					Th(Text("Department")), Th(Text("Created")),
				)),
				TBody(Group(rows)),
			),
		),
	)
}

func recruiterDashboardPage(s *domain.Session, jobs []domain.Job, appCounts map[int64]int64) Node {
	rows := make([]Node, 0, len(jobs))
	for _, j := range jobs {
		status := "Open"
		if !j.Open {
			status = "Closed"
		}
		rows = append(rows, Tr(
			Td(A(Href(fmt.Sprintf("/pipeline?job=%d", j.ID)), Text(j.Title))),
			Td(Text(j.Company)),
			Td(Text(status)),
			Td(Text(strconv.FormatInt(appCounts[j.ID], 10))),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, Tr(Td(ColSpan("4"), Text("No postings yet. Publish one to start receiving candidates."))))
	}
	return appPage("Recruiter Dashboard", s,
		Div(Class("card"),
			H3(Text("Postings")),
			P(Class("job-meta"), A(Href("/jobs/new"), Class("btn btn-sm btn-primary"), Text("Post a Job"))),
			Table(
				THead(Tr(Th(Text("Title")), Th(Text("Company")), Th(Text("Status")), Th(Text("Candidates")))),
				TBody(Group(rows)),
			),
		),
	)
}

func managerDashboardPage(s *domain.Session, apps []domain.JobApplication) Node {
	rows := make([]Node, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, Tr(
			Td(Text(a.CandidateName)),
			Td(Text(strconv.FormatInt(a.JobID, 10))),
			Td(stageBadge(a.Stage)),
			Td(Text(a.SubmittedAt.Format("2006-01-02"))),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, Tr(Td(ColSpan("4"), Text("No candidates awaiting review."))))
	}
	return appPage("Hiring Dashboard", s,
		Div(Class("card"),
			H3(Text("Candidates in review")),
			Table(
				THead(Tr(Th(Text("Candidate")), Th(Text("Job")), Th(Text("Stage")), Th(Text("Applied")))),
				TBody(Group(rows)),
			),
		),
	)
}

func bankDashboardPage(s *domain.Session, openJobs int64) Node {
	return appPage("Partner Dashboard", s,
		Div(Class("stat-row"),
			statCard("Open postings", strconv.FormatInt(openJobs, 10)),
		),
		Div(Class("card"),
			H3(Text("Catalyst Partners")),
			P(Text("Review open positions across the partner network and refer candidates from your branch.")),
			A(Href("/jobs"), Class("btn btn-primary"), Text("Browse openings")),
		),
	)
}
