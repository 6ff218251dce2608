// Package auth implements the authentication flow: demo directory
// lookup, user credential verification, registration, and session
// establishment.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"catalyst-hr/internal/domain"
	"catalyst-hr/internal/session"
)

// Outcome is the result of a successful Authenticate call. Either
// Session is set, or Candidates is non-empty and the caller must follow
// up with Resolve to pick a persona.
type Outcome struct {
	Session    *domain.Session
	Candidates []DemoAccount
}

// Ambiguous reports whether a persona choice is still required.
func (o Outcome) Ambiguous() bool { return len(o.Candidates) > 0 }

// Service implements the authentication flow.
type Service struct {
	users        domain.UserRepository
	store        session.Store
	tracker      domain.EngagementTracker
	demoPassword string
	logger       *slog.Logger

	now func() time.Time
}

// NewService creates the auth service. tracker may be nil.
func NewService(users domain.UserRepository, store session.Store, tracker domain.EngagementTracker, demoPassword string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:        users,
		store:        store,
		tracker:      tracker,
		demoPassword: demoPassword,
		logger:       logger.With("component", "auth"),
		now:          time.Now,
	}
}

// Authenticate validates credentials. The demo directory is consulted
// first and matches without any repository call; otherwise the user
// repository decides. A failed login returns InvalidCredentialsError
// and changes no persisted state.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Outcome, error) {
	if password == s.demoPassword {
		if email == personasEmail {
			candidates := make([]DemoAccount, len(demoPersonas))
			copy(candidates, demoPersonas)
			return Outcome{Candidates: candidates}, nil
		}
		if account, ok := demoDirectory[email]; ok {
			sess, err := s.establish(ctx, account.Email, account.DisplayName, account.Role, account.Department)
			if err != nil {
				return Outcome{}, err
			}
			return Outcome{Session: sess}, nil
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return Outcome{}, domain.ErrInvalidCredentials("invalid email or password")
		}
		return Outcome{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Outcome{}, domain.ErrInvalidCredentials("invalid email or password")
	}

	sess, err := s.establish(ctx, user.Email, user.DisplayName, user.Role, user.Department)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Session: sess}, nil
}

// Resolve finalises an ambiguous login by persona role. The email must
// be the shared persona address and the role one of its personas.
func (s *Service) Resolve(ctx context.Context, email string, role domain.Role) (*domain.Session, error) {
	if email != personasEmail {
		return nil, domain.ErrValidation("no persona choice pending for %s", email)
	}
	for _, p := range demoPersonas {
		if p.Role == role {
			return s.establish(ctx, p.Email, p.DisplayName, p.Role, p.Department)
		}
	}
	return nil, domain.ErrValidation("role %s is not one of the available personas", role)
}

// Register creates an account and signs it in immediately. A duplicate
// email is a ConflictError.
func (s *Service) Register(ctx context.Context, req domain.RegisterUserRequest) (*domain.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrConflict("an account for %s already exists", req.Email)
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Create(ctx, &domain.User{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
		Role:         domain.RoleCandidate,
		Department:   req.Department,
	})
	if err != nil {
		return nil, err
	}

	s.track(user.Email, "register", nil)
	return s.establish(ctx, user.Email, user.DisplayName, user.Role, user.Department)
}

// Logout clears the session. Clearing an absent session is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.Clear(ctx, token)
}

func (s *Service) establish(ctx context.Context, email, displayName string, role domain.Role, department string) (*domain.Session, error) {
	now := s.now()
	sess := &domain.Session{
		Token:        uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		Role:         role,
		Department:   department,
		StartedAt:    now,
		LastActivity: now,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	s.track(email, "login", map[string]string{"role": role.String()})
	s.logger.Info("session established", "email", email, "role", role.String())
	return sess, nil
}

// track forwards to the gamification collaborator. The call never
// blocks and failures never reach the caller.
func (s *Service) track(email, action string, metadata map[string]string) {
	if s.tracker == nil {
		return
	}
	s.tracker.TrackAction(email, action, metadata)
}

func isNotFound(err error) bool {
	var notFound *domain.NotFoundError
	return errors.As(err, &notFound)
}
