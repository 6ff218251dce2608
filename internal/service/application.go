package service

import (
	"context"
	"strconv"
	"time"

	"catalyst-hr/internal/domain"
)

type ApplicationService struct {
	repo    domain.ApplicationRepository
	jobs    domain.JobRepository
	tracker domain.EngagementTracker
}

func NewApplicationService(repo domain.ApplicationRepository, jobs domain.JobRepository, tracker domain.EngagementTracker) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, tracker: tracker}
}

// Submit files an application for the acting candidate. The posting
// must exist and be open.
func (s *ApplicationService) Submit(ctx context.Context, actor domain.Actor, req domain.SubmitApplicationRequest) (*domain.JobApplication, error) {
	if actor.Email == "" {
		return nil, domain.ErrAccessDenied("sign in to apply")
	}
	// Applications are always filed under the acting identity.
	req.CandidateEmail = actor.Email
	if err := req.Validate(); err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if !job.Open {
		return nil, domain.ErrValidation("posting %q is closed", job.Title)
	}
	now := time.Now().UTC()
	app, err := s.repo.Create(ctx, &domain.JobApplication{
		JobID:          req.JobID,
		CandidateEmail: req.CandidateEmail,
		CandidateName:  req.CandidateName,
		ResumeURL:      req.ResumeURL,
		CoverLetter:    req.CoverLetter,
		Stage:          domain.StageApplied,
		SubmittedAt:    now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}
	s.track(actor, "submit_application", map[string]string{"job_id": strconv.FormatInt(req.JobID, 10)})
	return app, nil
}

// ListByJob returns a posting's pipeline. Staff only.
func (s *ApplicationService) ListByJob(ctx context.Context, actor domain.Actor, jobID int64, page domain.PageRequest) ([]domain.JobApplication, int64, error) {
	if !staffRoles[actor.Role] {
		return nil, 0, domain.ErrAccessDenied("only hiring staff may view the pipeline")
	}
	return s.repo.ListByJob(ctx, jobID, page)
}

// ListMine returns the acting candidate's own applications.
func (s *ApplicationService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.JobApplication, error) {
	if actor.Email == "" {
		return nil, domain.ErrAccessDenied("sign in to view applications")
	}
	return s.repo.ListByCandidate(ctx, actor.Email)
}

// Advance moves an application to the given stage. Staff only; the
// transition must be legal for the current stage.
func (s *ApplicationService) Advance(ctx context.Context, actor domain.Actor, id int64, next domain.ApplicationStage) (*domain.JobApplication, error) {
	if !staffRoles[actor.Role] {
		return nil, domain.ErrAccessDenied("only hiring staff may advance candidates")
	}
	if !next.Valid() {
		return nil, domain.ErrValidation("unknown stage %q", next)
	}
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !app.Stage.CanTransitionTo(next) {
		return nil, domain.ErrValidation("cannot move application from %q to %q", app.Stage, next)
	}
	if err := s.repo.UpdateStage(ctx, id, next); err != nil {
		return nil, err
	}
	app.Stage = next
	app.UpdatedAt = time.Now().UTC()
	s.track(actor, "advance_candidate", map[string]string{"stage": string(next)})
	return app, nil
}

func (s *ApplicationService) track(actor domain.Actor, action string, metadata map[string]string) {
	if s.tracker == nil || actor.Email == "" {
		return
	}
	s.tracker.TrackAction(actor.Email, action, metadata)
}
