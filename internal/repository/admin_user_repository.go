package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rkenterprise/site-backend/internal/model"
)

type AdminUserRepository struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepository(pool *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{pool: pool}
}

// List returns all admin users ascending by id. Password hashes are
// loaded but never serialized (json:"-").
func (r *AdminUserRepository) List(ctx context.Context) ([]model.AdminUser, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, username, created_at FROM admin_users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.AdminUser
	for rows.Next() {
		var u model.AdminUser
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByID returns the admin user with the given id, or nil when absent.
func (r *AdminUserRepository) GetByID(ctx context.Context, id int) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM admin_users WHERE id = $1`,
		id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsername returns the admin user with the given username, or nil when absent.
func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1`,
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UsernameExists reports whether another row (id != excludeID) already
// holds the username. Pass excludeID 0 for create checks.
func (r *AdminUserRepository) UsernameExists(ctx context.Context, username string, excludeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = $1 AND id != $2)`,
		username, excludeID).Scan(&exists)
	return exists, err
}

func (r *AdminUserRepository) Create(ctx context.Context, u *model.AdminUser) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO admin_users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`,
		u.Username, u.PasswordHash).Scan(&u.ID, &u.CreatedAt)
}

// Update writes username and, when newHash is non-empty, the password hash.
// Returns false when no row matched the id.
func (r *AdminUserRepository) Update(ctx context.Context, id int, username, newHash string) (bool, error) {
	var (
		tag pgconn.CommandTag
		err error
	)
	if newHash != "" {
		tag, err = r.pool.Exec(ctx,
			`UPDATE admin_users SET username = $1, password_hash = $2 WHERE id = $3`,
			username, newHash, id)
	} else {
		tag, err = r.pool.Exec(ctx,
			`UPDATE admin_users SET username = $1 WHERE id = $2`,
			username, id)
	}
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the row. Returns false when no row matched.
func (r *AdminUserRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
