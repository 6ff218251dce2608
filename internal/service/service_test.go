package service

import (
	"sync"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	internaldb "catalyst-hr/internal/db"
	"catalyst-hr/internal/db/repository"
	"catalyst-hr/internal/domain"
)

type recordingTracker struct {
	mu      sync.Mutex
	actions []string
}

func (r *recordingTracker) TrackAction(_, action string, _ map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action)
}

func (r *recordingTracker) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.actions...)
}

type testDeps struct {
	users        *UserService
	jobs         *JobService
	applications *ApplicationService
	userRepo     *repository.UserRepo
	jobRepo      *repository.JobRepo
	tracker      *recordingTracker
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	userRepo := repository.NewUserRepo(writeDB, readDB)
	jobRepo := repository.NewJobRepo(writeDB, readDB)
	appRepo := repository.NewApplicationRepo(writeDB, readDB)
	tracker := &recordingTracker{}
	return testDeps{
		users:        NewUserService(userRepo, tracker),
		jobs:         NewJobService(jobRepo, tracker),
		applications: NewApplicationService(appRepo, jobRepo, tracker),
		userRepo:     userRepo,
		jobRepo:      jobRepo,
		tracker:      tracker,
	}
}

var (
	adminActor     = domain.Actor{Email: "admin@catalyst.com", Role: domain.RoleAdministrator}
	recruiterActor = domain.Actor{Email: "recruiter@catalyst.com", Role: domain.RoleRecruiter}
	candidateActor = domain.Actor{Email: "candidate@x.com", Role: domain.RoleCandidate}
	anonymousActor = domain.Actor{}
)
