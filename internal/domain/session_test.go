package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	testMaxAge = 24 * time.Hour
	testWindow = 5 * time.Minute
)

func TestSessionState(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		session *Session
		want    SessionState
	}{
		{"nil session", nil, SessionAbsent},
		{"empty email", &Session{StartedAt: now}, SessionAbsent},
		{
			"fresh session",
			&Session{Email: "a@b.com", StartedAt: now.Add(-time.Hour)},
			SessionActive,
		},
		{
			"inside the warning window",
			&Session{Email: "a@b.com", StartedAt: now.Add(-(testMaxAge - 4*time.Minute))},
			SessionWarned,
		},
		{
			"just ahead of the warning window still active",
			&Session{Email: "a@b.com", StartedAt: now.Add(-(testMaxAge - 6*time.Minute))},
			SessionActive,
		},
		{
			"24.1 hours old is expired",
			&Session{Email: "a@b.com", StartedAt: now.Add(-(testMaxAge + 6*time.Minute))},
			SessionExpired,
		},
		{
			"warned flag sticks while active",
			&Session{Email: "a@b.com", StartedAt: now.Add(-time.Hour), Warned: true},
			SessionWarned,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.State(now, testMaxAge, testWindow))
		})
	}
}

func TestSessionExpiresAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &Session{Email: "a@b.com", StartedAt: start}
	assert.Equal(t, start.Add(testMaxAge), s.ExpiresAt(testMaxAge))
	assert.False(t, s.Expired(start.Add(testMaxAge-time.Second), testMaxAge))
	assert.True(t, s.Expired(start.Add(testMaxAge), testMaxAge))
}

func TestSessionContext(t *testing.T) {
	ctx := WithSession(context.Background(), &Session{Email: "a@b.com", Role: RoleUser})
	s, ok := SessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", s.Email)

	_, ok = SessionFromContext(context.Background())
	assert.False(t, ok)

	// An email-less session does not count as authenticated.
	ctx = WithSession(context.Background(), &Session{})
	_, ok = SessionFromContext(ctx)
	assert.False(t, ok)
}
