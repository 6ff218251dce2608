package domain

import "time"

// ApplicationStage names a step in the candidate pipeline.
type ApplicationStage string

const (
	StageApplied   ApplicationStage = "applied"
	StageScreening ApplicationStage = "screening"
	StageInterview ApplicationStage = "interview"
	StageOffer     ApplicationStage = "offer"
	StageHired     ApplicationStage = "hired"
	StageRejected  ApplicationStage = "rejected"
)

// PipelineStages lists the stages in pipeline order, terminal stages last.
var PipelineStages = []ApplicationStage{
	StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected,
}

var stageRank = map[ApplicationStage]int{
	StageApplied:   0,
	StageScreening: 1,
	StageInterview: 2,
	StageOffer:     3,
	StageHired:     4,
}

// Terminal reports whether the stage ends the pipeline.
func (s ApplicationStage) Terminal() bool {
	return s == StageHired || s == StageRejected
}

// Valid reports whether the stage is a member of the pipeline.
func (s ApplicationStage) Valid() bool {
	_, ok := stageRank[s]
	return ok || s == StageRejected
}

// CanTransitionTo reports whether a candidate may move from s to next.
// Rejection is reachable from any non-terminal stage; otherwise stages
// only advance forward, one or more steps at a time, never backward.
func (s ApplicationStage) CanTransitionTo(next ApplicationStage) bool {
	if s.Terminal() {
		return false
	}
	if next == StageRejected {
		return true
	}
	from, ok := stageRank[s]
	if !ok {
		return false
	}
	to, ok := stageRank[next]
	if !ok {
		return false
	}
	return to > from
}

// JobApplication links a candidate to a job posting.
type JobApplication struct {
	ID             int64
	JobID          int64
	CandidateEmail string
	CandidateName  string
	ResumeURL      string
	CoverLetter    string
	Stage          ApplicationStage
	SubmittedAt    time.Time
	UpdatedAt      time.Time
}

// SubmitApplicationRequest holds parameters for applying to a job.
type SubmitApplicationRequest struct {
	JobID          int64
	CandidateEmail string
	CandidateName  string
	ResumeURL      string
	CoverLetter    string
}

// Validate checks that the request is well-formed.
func (r *SubmitApplicationRequest) Validate() error {
	if r.JobID == 0 {
		return ErrValidation("job_id is required")
	}
	if r.CandidateEmail == "" {
		return ErrValidation("candidate email is required")
	}
	if r.CandidateName == "" {
		return ErrValidation("candidate name is required")
	}
	return nil
}
