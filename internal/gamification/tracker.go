package gamification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"catalyst-hr/internal/domain"
)

// Tracker records engagement events locally and, when an external
// endpoint is configured, forwards them over HTTP. TrackAction never
// blocks the caller: events go onto a bounded queue drained by a
// single worker, and every failure is logged at warn and swallowed.
type Tracker struct {
	repo     domain.EngagementRepository
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger

	queue chan domain.EngagementEvent
	done  chan struct{}
	once  sync.Once

	now func() time.Time
}

// TrackerOptions configures the outbound side of the tracker. Endpoint
// may be empty, in which case only the local engagement log is kept.
type TrackerOptions struct {
	Endpoint  string
	Timeout   time.Duration
	QueueSize int
}

// NewTracker creates a tracker. repo may be nil in tests.
func NewTracker(repo domain.EngagementRepository, opts TrackerOptions, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 3 * time.Second
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	return &Tracker{
		repo:     repo,
		endpoint: opts.Endpoint,
		client:   &http.Client{Timeout: opts.Timeout},
		// Outbound calls are best-effort telemetry; keep them well
		// below the rate we allow inbound traffic.
		limiter: rate.NewLimiter(rate.Limit(10), 20),
		logger:  logger.With("component", "gamification"),
		queue:   make(chan domain.EngagementEvent, opts.QueueSize),
		done:    make(chan struct{}),
		now:     time.Now,
	}
}

// Run drains the queue until ctx is cancelled. It always returns
// ctx.Err() so it slots into an errgroup.
func (t *Tracker) Run(ctx context.Context) error {
	defer close(t.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-t.queue:
			t.process(ctx, ev)
		}
	}
}

// TrackAction enqueues an event. When the queue is full the event is
// dropped with a warning; the caller is never delayed.
func (t *Tracker) TrackAction(email, action string, metadata map[string]string) {
	if action == "" {
		return
	}
	meta := "{}"
	if len(metadata) > 0 {
		if b, err := json.Marshal(metadata); err == nil {
			meta = string(b)
		}
	}
	ev := domain.EngagementEvent{
		Email:    email,
		Action:   action,
		Metadata: meta,
		At:       t.now().UTC(),
	}
	select {
	case t.queue <- ev:
	default:
		t.logger.Warn("engagement queue full, dropping event", "action", action)
	}
}

func (t *Tracker) process(ctx context.Context, ev domain.EngagementEvent) {
	if t.repo != nil {
		if err := t.repo.Insert(ctx, &ev); err != nil {
			t.logger.Warn("failed to record engagement event", "action", ev.Action, "error", err)
		}
	}
	if t.endpoint == "" {
		return
	}
	if !t.limiter.Allow() {
		t.logger.Warn("engagement forwarding throttled", "action", ev.Action)
		return
	}
	t.forward(ctx, ev)
}

func (t *Tracker) forward(ctx context.Context, ev domain.EngagementEvent) {
	body, err := json.Marshal(map[string]any{
		"email":    ev.Email,
		"action":   ev.Action,
		"metadata": json.RawMessage(ev.Metadata),
		"at":       ev.At.Format(time.RFC3339),
	})
	if err != nil {
		t.logger.Warn("failed to encode engagement event", "error", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		t.logger.Warn("failed to build tracking request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Warn("engagement forwarding failed", "action", ev.Action, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		t.logger.Warn("engagement endpoint rejected event", "action", ev.Action, "status", resp.StatusCode)
	}
}
