package repository

import (
	"context"
	"database/sql"

	"catalyst-hr/internal/domain"
)

type UserRepo struct {
	write *sql.DB
	read  *sql.DB
}

func NewUserRepo(writeDB, readDB *sql.DB) *UserRepo {
	return &UserRepo{write: writeDB, read: readDB}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	res, err := r.write.ExecContext(ctx,
		`INSERT INTO users (email, display_name, password_hash, role, department)
		 VALUES (?, ?, ?, ?, ?)`,
		u.Email, u.DisplayName, u.PasswordHash, u.Role.String(), u.Department)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.getByID(ctx, id)
}

// getByID reads through the write pool: it only runs right after an
// insert on the same call path.
func (r *UserRepo) getByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.write.QueryRowContext(ctx,
		`SELECT id, email, display_name, password_hash, role, department, created_at
		 FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.read.QueryRowContext(ctx,
		`SELECT id, email, display_name, password_hash, role, department, created_at
		 FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *UserRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.User, int64, error) {
	var total int64
	if err := r.read.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.read.QueryContext(ctx,
		`SELECT id, email, display_name, password_hash, role, department, created_at
		 FROM users ORDER BY id LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.write.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return mapDBError(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &role, &u.Department, &u.CreatedAt); err != nil {
		return nil, mapDBError(err)
	}
	u.Role = domain.ParseRole(role)
	return &u, nil
}
