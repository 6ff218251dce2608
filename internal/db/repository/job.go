package repository

import (
	"context"
	"database/sql"
	"strings"

	"catalyst-hr/internal/domain"
)

type JobRepo struct {
	write *sql.DB
	read  *sql.DB
}

func NewJobRepo(writeDB, readDB *sql.DB) *JobRepo {
	return &JobRepo{write: writeDB, read: readDB}
}

// Create inserts a posting. The open column is left to its schema
// default: new postings always start open, closing goes through SetOpen.
func (r *JobRepo) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	res, err := r.write.ExecContext(ctx,
		`INSERT INTO jobs (title, company, location, department, type, description, salary_min, salary_max)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.Title, j.Company, j.Location, j.Department, j.Type, j.Description,
		j.SalaryMin, j.SalaryMax)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *JobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	row := r.read.QueryRowContext(ctx,
		`SELECT id, title, company, location, department, type, description,
		        salary_min, salary_max, posted_at, open
		 FROM jobs WHERE id = ?`, id)
	return scanJob(row)
}

// List returns jobs matching the filter, newest first. Filter fields are
// combined with AND; zero values match everything.
func (r *JobRepo) List(ctx context.Context, filter domain.JobFilter, page domain.PageRequest) ([]domain.Job, int64, error) {
	where, args := buildJobFilter(filter)

	var total int64
	if err := r.read.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, title, company, location, department, type, description,
	                 salary_min, salary_max, posted_at, open
	          FROM jobs` + where + ` ORDER BY posted_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.read.QueryContext(ctx, query, append(args, page.Limit(), page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, total, rows.Err()
}

func (r *JobRepo) SetOpen(ctx context.Context, id int64, open bool) error {
	res, err := r.write.ExecContext(ctx, `UPDATE jobs SET open = ? WHERE id = ?`, boolToInt(open), id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("job %d not found", id)
	}
	return nil
}

func buildJobFilter(filter domain.JobFilter) (string, []any) {
	var conds []string
	var args []any

	if q := strings.TrimSpace(filter.Query); q != "" {
		conds = append(conds, `(title LIKE ? OR company LIKE ?)`)
		pattern := "%" + q + "%"
		args = append(args, pattern, pattern)
	}
	if filter.Location != "" {
		conds = append(conds, `location = ?`)
		args = append(args, filter.Location)
	}
	if filter.Department != "" {
		conds = append(conds, `department = ?`)
		args = append(args, filter.Department)
	}
	if filter.Type != "" {
		conds = append(conds, `type = ?`)
		args = append(args, filter.Type)
	}
	if filter.OpenOnly {
		conds = append(conds, `open = 1`)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var j domain.Job
	var open int64
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Department, &j.Type,
		&j.Description, &j.SalaryMin, &j.SalaryMax, &j.PostedAt, &open); err != nil {
		return nil, mapDBError(err)
	}
	j.Open = open != 0
	return &j, nil
}
