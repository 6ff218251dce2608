package domain

import "context"

// UserRepository persists registered accounts.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, page PageRequest) ([]User, int64, error)
	Delete(ctx context.Context, id int64) error
}

// JobRepository persists job postings.
type JobRepository interface {
	Create(ctx context.Context, j *Job) (*Job, error)
	GetByID(ctx context.Context, id int64) (*Job, error)
	List(ctx context.Context, filter JobFilter, page PageRequest) ([]Job, int64, error)
	SetOpen(ctx context.Context, id int64, open bool) error
}

// ApplicationRepository persists job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, a *JobApplication) (*JobApplication, error)
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	ListByJob(ctx context.Context, jobID int64, page PageRequest) ([]JobApplication, int64, error)
	ListByCandidate(ctx context.Context, email string) ([]JobApplication, error)
	UpdateStage(ctx context.Context, id int64, stage ApplicationStage) error
}

// EngagementRepository persists gamification events and rollups.
type EngagementRepository interface {
	Insert(ctx context.Context, e *EngagementEvent) error
	CountByAction(ctx context.Context, email string) (map[string]int64, error)
	RollupDay(ctx context.Context, day string) ([]DailyEngagement, error)
	SaveRollup(ctx context.Context, rows []DailyEngagement) error
}

// EngagementTracker is the fire-and-forget gamification collaborator.
// Implementations must never block the caller and must swallow failures.
type EngagementTracker interface {
	TrackAction(email, action string, metadata map[string]string)
}
