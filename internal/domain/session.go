package domain

import "time"

// Session is the persisted record of an authenticated user plus timing
// metadata. A session exists if and only if the user email is non-empty;
// there are no partial-session states — stores write all fields together.
type Session struct {
	Token        string    // opaque session identifier (cookie value)
	Email        string    // user identifier
	DisplayName  string
	Role         Role
	Department   string // optional
	StartedAt    time.Time
	LastActivity time.Time
	Warned       bool // expiry warning already shown for this session
}

// Elapsed returns the time since the session was established.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// ExpiresAt returns the absolute expiry time under the given maximum age.
func (s *Session) ExpiresAt(maxAge time.Duration) time.Time {
	return s.StartedAt.Add(maxAge)
}

// Expired reports whether the session exceeded maxAge at the given instant.
func (s *Session) Expired(now time.Time, maxAge time.Duration) bool {
	return s.Elapsed(now) >= maxAge
}

// InWarningWindow reports whether the session is close enough to expiry
// that the user should be warned, but has not yet expired.
func (s *Session) InWarningWindow(now time.Time, maxAge, window time.Duration) bool {
	elapsed := s.Elapsed(now)
	return elapsed >= maxAge-window && elapsed < maxAge
}

// SessionState names the lifecycle state of a session.
type SessionState string

const (
	SessionAbsent  SessionState = "absent"
	SessionActive  SessionState = "active"
	SessionWarned  SessionState = "warned"
	SessionExpired SessionState = "expired"
)

// State classifies the session at the given instant.
func (s *Session) State(now time.Time, maxAge, window time.Duration) SessionState {
	switch {
	case s == nil || s.Email == "":
		return SessionAbsent
	case s.Expired(now, maxAge):
		return SessionExpired
	case s.Warned || s.InWarningWindow(now, maxAge, window):
		return SessionWarned
	default:
		return SessionActive
	}
}
