// Package service holds the application services sitting between the
// HTTP surfaces and the repositories. Services own authorization and
// validation; repositories stay mechanical.
package service

import (
	"context"

	"catalyst-hr/internal/domain"
)

// staffRoles may manage users and the hiring pipeline.
var staffRoles = map[domain.Role]bool{
	domain.RoleAdministrator: true,
	domain.RoleRecruiter:     true,
	domain.RoleHiringManager: true,
	domain.RoleManager:       true,
}

type UserService struct {
	repo    domain.UserRepository
	tracker domain.EngagementTracker
}

func NewUserService(repo domain.UserRepository, tracker domain.EngagementTracker) *UserService {
	return &UserService{repo: repo, tracker: tracker}
}

// List returns registered users. Administrators only.
func (s *UserService) List(ctx context.Context, actor domain.Actor, page domain.PageRequest) ([]domain.User, int64, error) {
	if actor.Role != domain.RoleAdministrator {
		return nil, 0, domain.ErrAccessDenied("only administrators may list users")
	}
	return s.repo.List(ctx, page)
}

// Get returns a user by email. Users see themselves; administrators
// see everyone.
func (s *UserService) Get(ctx context.Context, actor domain.Actor, email string) (*domain.User, error) {
	if actor.Email != email && actor.Role != domain.RoleAdministrator {
		return nil, domain.ErrAccessDenied("not allowed to view user %q", email)
	}
	return s.repo.GetByEmail(ctx, email)
}

// Create registers an account on behalf of an administrator. The
// password hash must already be computed; self-service registration
// goes through the auth service instead.
func (s *UserService) Create(ctx context.Context, actor domain.Actor, u *domain.User) (*domain.User, error) {
	if actor.Role != domain.RoleAdministrator {
		return nil, domain.ErrAccessDenied("only administrators may create users")
	}
	if u.Email == "" {
		return nil, domain.ErrValidation("email is required")
	}
	if !u.Role.Valid() {
		return nil, domain.ErrValidation("unknown role %q", u.Role)
	}
	return s.repo.Create(ctx, u)
}

// Delete removes an account. Administrators only.
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if actor.Role != domain.RoleAdministrator {
		return domain.ErrAccessDenied("only administrators may delete users")
	}
	return s.repo.Delete(ctx, id)
}
