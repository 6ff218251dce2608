package repository

import (
	"context"
	"database/sql"
	"time"

	"catalyst-hr/internal/domain"
)

// SessionRepo persists sessions. Timestamps are stored as epoch
// milliseconds, matching the wire format the browser clients used.
// It stays entirely on the write pool: nearly every load is followed by
// an activity touch or an expiry delete on the same path.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Load returns the session for the given token. Malformed rows (empty
// email, non-positive timestamps) are deleted and reported as absent
// rather than surfaced as errors: corrupted state fails closed.
func (r *SessionRepo) Load(ctx context.Context, token string) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT token, email, display_name, role, department, started_at_ms, last_activity_ms, warned
		 FROM sessions WHERE token = ?`, token)

	s, err := scanSession(row)
	if err != nil {
		return nil, err
	}
	if malformed(s) {
		_, _ = r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
		return nil, domain.ErrNotFound("session not found")
	}
	return s, nil
}

// Save upserts the session in a single statement; there is no way to
// persist a partial session.
func (r *SessionRepo) Save(ctx context.Context, s *domain.Session) error {
	if s.Token == "" || s.Email == "" {
		return domain.ErrValidation("session token and email are required")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, email, display_name, role, department, started_at_ms, last_activity_ms, warned)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(token) DO UPDATE SET
		   email = excluded.email,
		   display_name = excluded.display_name,
		   role = excluded.role,
		   department = excluded.department,
		   started_at_ms = excluded.started_at_ms,
		   last_activity_ms = excluded.last_activity_ms,
		   warned = excluded.warned`,
		s.Token, s.Email, s.DisplayName, s.Role.String(), s.Department,
		s.StartedAt.UnixMilli(), s.LastActivity.UnixMilli(), boolToInt(s.Warned))
	return mapDBError(err)
}

// Clear removes the session. Clearing an absent session is a no-op.
func (r *SessionRepo) Clear(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return mapDBError(err)
}

// All returns every persisted session, for the lifecycle monitor sweep.
func (r *SessionRepo) All(ctx context.Context) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT token, email, display_name, role, department, started_at_ms, last_activity_ms, warned
		 FROM sessions ORDER BY started_at_ms`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		if malformed(s) {
			continue
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

func malformed(s *domain.Session) bool {
	return s.Email == "" || s.StartedAt.UnixMilli() <= 0
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	var role string
	var startedMs, activityMs, warned int64
	if err := row.Scan(&s.Token, &s.Email, &s.DisplayName, &role, &s.Department,
		&startedMs, &activityMs, &warned); err != nil {
		return nil, mapDBError(err)
	}
	// Unknown role strings are coerced, not rejected; the access guard
	// treats RoleUnknown as matching nothing.
	s.Role = domain.ParseRole(role)
	s.StartedAt = time.UnixMilli(startedMs)
	s.LastActivity = time.UnixMilli(activityMs)
	s.Warned = warned != 0
	return &s, nil
}
