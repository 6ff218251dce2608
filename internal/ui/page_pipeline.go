package ui

import (
	"fmt"
	"net/http"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"catalyst-hr/internal/domain"
)

func stageBadge(stage domain.ApplicationStage) Node {
	class := "stage-badge"
	switch stage {
	case domain.StageHired:
		class += " stage-hired"
	case domain.StageRejected:
		class += " stage-rejected"
	}
	return Span(Class(class), Text(string(stage)))
}

func advanceControls(r *http.Request, app domain.JobApplication) Node {
	if app.Stage.Terminal() {
		return Text("")
	}
	forms := []Node{}
	for _, next := range domain.PipelineStages {
		if !app.Stage.CanTransitionTo(next) {
			continue
		}
		label := "Move to " + string(next)
		class := "btn btn-sm"
		if next == domain.StageRejected {
			label = "Reject"
			class = "btn btn-sm btn-danger"
		}
		forms = append(forms, Form(
			Method("post"),
			Action(fmt.Sprintf("/pipeline/%d/advance", app.ID)),
			Style("display:inline"),
			csrfField(r),
			Input(Type("hidden"), Name("stage"), Value(string(next))),
			Button(Type("submit"), Class(class), Text(label)),
		))
	}
	return Group(forms)
}

func pipelinePage(r *http.Request, s *domain.Session, jobs []domain.Job, selected *domain.Job, apps []domain.JobApplication) Node {
	jobLinks := make([]Node, 0, len(jobs))
	for _, j := range jobs {
		label := fmt.Sprintf("%s (%s)", j.Title, j.Company)
		jobLinks = append(jobLinks, Li(A(Href(fmt.Sprintf("/pipeline?job=%d", j.ID)), Text(label))))
	}

	content := []Node{
		Div(Class("card"),
			H3(Text("Postings")),
			Ul(Group(jobLinks)),
		),
	}

	if selected != nil {
		rows := make([]Node, 0, len(apps))
		for _, a := range apps {
			rows = append(rows, Tr(
				Td(Text(a.CandidateName)),
				Td(Text(a.CandidateEmail)),
				Td(stageBadge(a.Stage)),
				Td(Text(a.SubmittedAt.Format("2006-01-02"))),
				Td(advanceControls(r, a)),
			))
		}
		if len(rows) == 0 {
			rows = append(rows, Tr(Td(ColSpan("5"), Text("No applications yet."))))
		}
		content = append(content, Div(Class("card"),
			H3(Text("Pipeline: "+selected.Title)),
			Table(
				THead(Tr(
					Th(Text("Candidate")), Th(Text("Email")), Th(Text("Stage")),
					Th(Text("Applied")), Th(Text("Actions")),
				)),
				TBody(Group(rows)),
			),
		))
	}

	return appPage("Candidate Pipeline", s, content...)
}
