package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"catalyst-hr/internal/config"
	"catalyst-hr/internal/domain"
)

// Monitor owns session lifecycle: Absent -> Active -> (Warned) -> Expired.
// A background sweep enforces expiry on a fixed interval; CheckNow covers
// the per-request path, which also catches sessions that aged out while
// no sweep was running.
type Monitor struct {
	store  ScanStore
	cfg    config.SessionConfig
	logger *slog.Logger

	mu        sync.Mutex
	lastTouch map[string]time.Time // token -> last persisted activity update
	expired   map[string]time.Time // tokens cleared by expiry, pending user notice

	now func() time.Time
}

// NewMonitor creates a lifecycle monitor over the given store.
func NewMonitor(store ScanStore, cfg config.SessionConfig, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		store:     store,
		cfg:       cfg,
		logger:    logger.With("component", "session-monitor"),
		lastTouch: make(map[string]time.Time),
		expired:   make(map[string]time.Time),
		now:       time.Now,
	}
}

// MaxAge returns the configured maximum session age.
func (m *Monitor) MaxAge() time.Duration { return m.cfg.MaxAge }

// warnWindow is the configured warning window widened by one poll
// interval. Checks are discrete, so a session can cross the start of the
// bare window between ticks; widening guarantees the user is warned for
// at least the full configured window before expiry.
func (m *Monitor) warnWindow() time.Duration {
	return m.cfg.WarningWindow + m.cfg.PollInterval
}

// Run polls the store on the configured interval until ctx is cancelled.
// The ticker is owned by this call and stops on return; no timers leak
// past shutdown.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}

// Sweep performs one poll tick: warns sessions entering the warning
// window and expires sessions past max age. Expiry clears the stored
// session exactly once — the row is gone, so a later sweep cannot expire
// it again.
func (m *Monitor) Sweep(ctx context.Context) {
	sessions, err := m.store.All(ctx)
	if err != nil {
		m.logger.Warn("session sweep failed", "error", err)
		return
	}

	now := m.now()
	for i := range sessions {
		s := sessions[i]
		switch s.State(now, m.cfg.MaxAge, m.warnWindow()) {
		case domain.SessionExpired:
			m.expire(ctx, &s)
		case domain.SessionWarned:
			if !s.Warned {
				m.warn(ctx, &s)
			}
		}
	}
}

// CheckNow classifies a single session immediately, applying the same
// transitions as the sweep. This runs on every authenticated request,
// the server-side analogue of re-checking when a tab regains visibility.
// It returns the (possibly updated) session and its state; the session
// is nil when absent or just expired.
func (m *Monitor) CheckNow(ctx context.Context, token string) (*domain.Session, domain.SessionState) {
	s, err := m.store.Load(ctx, token)
	if err != nil {
		if !isNotFound(err) {
			m.logger.Warn("session load failed", "error", err)
		}
		return nil, domain.SessionAbsent
	}

	now := m.now()
	state := s.State(now, m.cfg.MaxAge, m.warnWindow())
	switch state {
	case domain.SessionExpired:
		m.expire(ctx, s)
		return nil, domain.SessionExpired
	case domain.SessionWarned:
		if !s.Warned {
			m.warn(ctx, s)
			s.Warned = true
		}
	}
	return s, state
}

// ExtendSession resets the session clock to now and clears the warning
// flag, without re-authentication. Extending an absent session is a no-op.
func (m *Monitor) ExtendSession(ctx context.Context, token string) (*domain.Session, error) {
	s, err := m.store.Load(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	now := m.now()
	s.StartedAt = now
	s.LastActivity = now
	s.Warned = false
	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}

	m.mu.Lock()
	delete(m.expired, token)
	m.mu.Unlock()

	m.logger.Info("session extended", "email", s.Email)
	return s, nil
}

// Touch records user activity, updating LastActivity at most once per
// throttle window. It never resets StartedAt, so activity does not
// extend expiry. The compare-and-update of the throttle timestamp is
// done under the monitor mutex so concurrent requests for the same
// session produce a single write.
func (m *Monitor) Touch(ctx context.Context, s *domain.Session) {
	now := m.now()

	m.mu.Lock()
	last, seen := m.lastTouch[s.Token]
	if seen && now.Sub(last) < m.cfg.ActivityThrottle {
		m.mu.Unlock()
		return
	}
	m.lastTouch[s.Token] = now
	m.mu.Unlock()

	s.LastActivity = now
	if err := m.store.Save(ctx, s); err != nil {
		m.logger.Warn("activity update failed", "email", s.Email, "error", err)
	}
}

// ConsumeExpiryNotice reports whether the token was expired by the
// monitor and a notice is still owed to the user, clearing the pending
// notice. Notices older than the max age are dropped by the sweep of
// the internal map in expire().
func (m *Monitor) ConsumeExpiryNotice(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.expired[token]
	if ok {
		delete(m.expired, token)
	}
	return ok
}

func (m *Monitor) warn(ctx context.Context, s *domain.Session) {
	s.Warned = true
	if err := m.store.Save(ctx, s); err != nil {
		m.logger.Warn("persist warning flag failed", "email", s.Email, "error", err)
		return
	}
	m.logger.Info("session nearing expiry", "email", s.Email,
		"expires_at", s.ExpiresAt(m.cfg.MaxAge))
}

func (m *Monitor) expire(ctx context.Context, s *domain.Session) {
	if err := m.store.Clear(ctx, s.Token); err != nil {
		m.logger.Warn("clear expired session failed", "email", s.Email, "error", err)
		return
	}

	now := m.now()
	m.mu.Lock()
	m.expired[s.Token] = now
	delete(m.lastTouch, s.Token)
	// Drop stale notice entries so the map cannot grow unbounded.
	for token, at := range m.expired {
		if now.Sub(at) > m.cfg.MaxAge {
			delete(m.expired, token)
		}
	}
	m.mu.Unlock()

	m.logger.Info("session expired", "email", s.Email,
		"age", now.Sub(s.StartedAt).Round(time.Second))
}

func isNotFound(err error) bool {
	var notFound *domain.NotFoundError
	return errors.As(err, &notFound)
}
