package repository

import (
	"context"
	"database/sql"

	"catalyst-hr/internal/domain"
)

type ApplicationRepo struct {
	write *sql.DB
	read  *sql.DB
}

func NewApplicationRepo(writeDB, readDB *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{write: writeDB, read: readDB}
}

func (r *ApplicationRepo) Create(ctx context.Context, a *domain.JobApplication) (*domain.JobApplication, error) {
	stage := a.Stage
	if stage == "" {
		stage = domain.StageApplied
	}
	res, err := r.write.ExecContext(ctx,
		`INSERT INTO applications (job_id, candidate_email, candidate_name, resume_url, cover_letter, stage)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.JobID, a.CandidateEmail, a.CandidateName, a.ResumeURL, a.CoverLetter, string(stage))
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	row := r.read.QueryRowContext(ctx,
		`SELECT id, job_id, candidate_email, candidate_name, resume_url, cover_letter,
		        stage, submitted_at, updated_at
		 FROM applications WHERE id = ?`, id)
	return scanApplication(row)
}

func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID int64, page domain.PageRequest) ([]domain.JobApplication, int64, error) {
	var total int64
	if err := r.read.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM applications WHERE job_id = ?`, jobID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.read.QueryContext(ctx,
		`SELECT id, job_id, candidate_email, candidate_name, resume_url, cover_letter,
		        stage, submitted_at, updated_at
		 FROM applications WHERE job_id = ? ORDER BY submitted_at, id LIMIT ? OFFSET ?`,
		jobID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, *a)
	}
	return apps, total, rows.Err()
}

func (r *ApplicationRepo) ListByCandidate(ctx context.Context, email string) ([]domain.JobApplication, error) {
	rows, err := r.read.QueryContext(ctx,
		`SELECT id, job_id, candidate_email, candidate_name, resume_url, cover_letter,
		        stage, submitted_at, updated_at
		 FROM applications WHERE candidate_email = ? ORDER BY submitted_at DESC, id DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepo) UpdateStage(ctx context.Context, id int64, stage domain.ApplicationStage) error {
	res, err := r.write.ExecContext(ctx,
		`UPDATE applications SET stage = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		string(stage), id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("application %d not found", id)
	}
	return nil
}

func scanApplication(row rowScanner) (*domain.JobApplication, error) {
	var a domain.JobApplication
	var stage string
	if err := row.Scan(&a.ID, &a.JobID, &a.CandidateEmail, &a.CandidateName,
		&a.ResumeURL, &a.CoverLetter, &stage, &a.SubmittedAt, &a.UpdatedAt); err != nil {
		return nil, mapDBError(err)
	}
	a.Stage = domain.ApplicationStage(stage)
	return &a, nil
}
