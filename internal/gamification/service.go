package gamification

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"catalyst-hr/internal/domain"
)

// Service computes engagement profiles and runs the nightly rollup.
type Service struct {
	repo   domain.EngagementRepository
	cron   *cron.Cron
	logger *slog.Logger

	now func() time.Time
}

// NewService creates the gamification service.
func NewService(repo domain.EngagementRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		cron:   cron.New(),
		logger: logger.With("component", "gamification"),
		now:    time.Now,
	}
}

// Profile aggregates a user's engagement into XP, level, and earned
// achievements.
func (s *Service) Profile(ctx context.Context, email string) (*domain.EngagementSummary, error) {
	if email == "" {
		return nil, domain.ErrValidation("email is required")
	}
	counts, err := s.repo.CountByAction(ctx, email)
	if err != nil {
		return nil, err
	}
	xp := totalXP(counts)
	level, title := levelFor(xp)
	return &domain.EngagementSummary{
		Email:        email,
		TotalXP:      xp,
		Level:        level,
		LevelTitle:   title,
		Achievements: earnedAchievements(counts),
		ActionCounts: counts,
	}, nil
}

// RollupDay aggregates one day's events into the daily rollup table.
// Re-running for the same day overwrites the previous rollup.
func (s *Service) RollupDay(ctx context.Context, day string) error {
	rows, err := s.repo.RollupDay(ctx, day)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return s.repo.SaveRollup(ctx, rows)
}

// StartRollup schedules the nightly rollup of the previous day's
// engagement and starts the cron scheduler.
func (s *Service) StartRollup() error {
	_, err := s.cron.AddFunc("5 0 * * *", func() {
		ctx := context.Background()
		day := s.now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		if err := s.RollupDay(ctx, day); err != nil {
			s.logger.Warn("nightly engagement rollup failed", "day", day, "error", err)
			return
		}
		s.logger.Info("engagement rollup complete", "day", day)
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("engagement rollup scheduled")
	return nil
}

// StopRollup stops the cron scheduler.
func (s *Service) StopRollup() {
	s.cron.Stop()
}
