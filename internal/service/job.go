package service

import (
	"context"
	"time"

	"catalyst-hr/internal/domain"
)

type JobService struct {
	repo    domain.JobRepository
	tracker domain.EngagementTracker
}

func NewJobService(repo domain.JobRepository, tracker domain.EngagementTracker) *JobService {
	return &JobService{repo: repo, tracker: tracker}
}

// Create publishes a job posting. Administrators and recruiters only.
func (s *JobService) Create(ctx context.Context, actor domain.Actor, req domain.CreateJobRequest) (*domain.Job, error) {
	if actor.Role != domain.RoleAdministrator && actor.Role != domain.RoleRecruiter {
		return nil, domain.ErrAccessDenied("only administrators and recruiters may publish jobs")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	job, err := s.repo.Create(ctx, &domain.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Department:  req.Department,
		Type:        req.Type,
		Description: req.Description,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		PostedAt:    time.Now().UTC(),
		Open:        true,
	})
	if err != nil {
		return nil, err
	}
	s.track(actor, "create_job", map[string]string{"title": job.Title})
	return job, nil
}

// Get returns one posting; any caller may view jobs.
func (s *JobService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.track(actor, "view_job", nil)
	return job, nil
}

// List searches postings; any caller may search.
func (s *JobService) List(ctx context.Context, actor domain.Actor, filter domain.JobFilter, page domain.PageRequest) ([]domain.Job, int64, error) {
	jobs, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	if filter.Query != "" {
		s.track(actor, "search_jobs", map[string]string{"query": filter.Query})
	}
	return jobs, total, nil
}

// SetOpen opens or closes a posting. Administrators and recruiters only.
func (s *JobService) SetOpen(ctx context.Context, actor domain.Actor, id int64, open bool) error {
	if actor.Role != domain.RoleAdministrator && actor.Role != domain.RoleRecruiter {
		return domain.ErrAccessDenied("only administrators and recruiters may change posting status")
	}
	return s.repo.SetOpen(ctx, id, open)
}

func (s *JobService) track(actor domain.Actor, action string, metadata map[string]string) {
	if s.tracker == nil || actor.Email == "" {
		return
	}
	s.tracker.TrackAction(actor.Email, action, metadata)
}
