package repository

import (
	"context"
	"database/sql"
	"time"

	"catalyst-hr/internal/domain"
)

type EngagementRepo struct {
	write *sql.DB
	read  *sql.DB
}

func NewEngagementRepo(writeDB, readDB *sql.DB) *EngagementRepo {
	return &EngagementRepo{write: writeDB, read: readDB}
}

func (r *EngagementRepo) Insert(ctx context.Context, e *domain.EngagementEvent) error {
	metadata := e.Metadata
	if metadata == "" {
		metadata = "{}"
	}
	at := e.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err := r.write.ExecContext(ctx,
		`INSERT INTO engagement_events (email, action, metadata, at) VALUES (?, ?, ?, ?)`,
		e.Email, e.Action, metadata, at)
	return mapDBError(err)
}

func (r *EngagementRepo) CountByAction(ctx context.Context, email string) (map[string]int64, error) {
	rows, err := r.read.QueryContext(ctx,
		`SELECT action, COUNT(*) FROM engagement_events WHERE email = ? GROUP BY action`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var action string
		var n int64
		if err := rows.Scan(&action, &n); err != nil {
			return nil, err
		}
		counts[action] = n
	}
	return counts, rows.Err()
}

// RollupDay aggregates event counts for one calendar day (YYYY-MM-DD).
func (r *EngagementRepo) RollupDay(ctx context.Context, day string) ([]domain.DailyEngagement, error) {
	rows, err := r.read.QueryContext(ctx,
		`SELECT action, COUNT(*) FROM engagement_events
		 WHERE date(at) = ? GROUP BY action ORDER BY action`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DailyEngagement
	for rows.Next() {
		d := domain.DailyEngagement{Day: day}
		if err := rows.Scan(&d.Action, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *EngagementRepo) SaveRollup(ctx context.Context, rollup []domain.DailyEngagement) error {
	for _, d := range rollup {
		if _, err := r.write.ExecContext(ctx,
			`INSERT INTO engagement_daily (day, action, count) VALUES (?, ?, ?)
			 ON CONFLICT(day, action) DO UPDATE SET count = excluded.count`,
			d.Day, d.Action, d.Count); err != nil {
			return mapDBError(err)
		}
	}
	return nil
}
