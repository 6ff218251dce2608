package ui

import (
	"fmt"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"catalyst-hr/internal/domain"
)

func profilePage(s *domain.Session, summary *domain.EngagementSummary) Node {
	badges := make([]Node, 0, len(summary.Achievements))
	for _, a := range summary.Achievements {
		badges = append(badges, Div(Class("card achievement"),
			H3(Text(a.Title)),
			P(Class("job-meta"), Text(a.Description)),
		))
	}
	var achievementSection Node
	if len(badges) == 0 {
		achievementSection = P(Class("job-meta"), Text("No achievements yet. Browse jobs and apply to start earning them."))
	} else {
		achievementSection = Div(Class("stat-row"), Group(badges))
	}

	return appPage("My Profile", s,
		Div(Class("stat-row"),
			statCard("Total XP", strconv.FormatInt(summary.TotalXP, 10)),
			statCard("Level", fmt.Sprintf("%d · %s", summary.Level, summary.LevelTitle)),
			statCard("Achievements", strconv.Itoa(len(summary.Achievements))),
		),
		Div(Class("card"),
			H3(Text("Achievements")),
			achievementSection,
		),
	)
}

func myApplicationsPage(s *domain.Session, apps []domain.JobApplication, jobTitles map[int64]string) Node {
	rows := make([]Node, 0, len(apps))
	for _, a := range apps {
		title := jobTitles[a.JobID]
		if title == "" {
			title = fmt.Sprintf("Job #%d", a.JobID)
		}
		rows = append(rows, Tr(
			Td(A(Href(fmt.Sprintf("/jobs/%d", a.JobID)), Text(title))),
			Td(stageBadge(a.Stage)),
			Td(Text(a.SubmittedAt.Format("2006-01-02"))),
		))
	}
	var body Node
	if len(rows) == 0 {
		body = P(Class("job-meta"), Text("You have not applied to any jobs yet."))
	} else {
		body = Table(
			THead(Tr(Th(Text("Job")), Th(Text("Stage")), Th(Text("Applied")))),
			TBody(Group(rows)),
		)
	}
	return appPage("My Applications", s,
		Div(Class("card"),
			H3(Text("Applications")),
			body,
			P(A(Href("/jobs"), Class("btn btn-sm"), Text("Browse more jobs"))),
		),
	)
}
