package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rkenterprise/site-backend/internal/model"
)

type ContactQueryRepository struct {
	pool *pgxpool.Pool
}

func NewContactQueryRepository(pool *pgxpool.Pool) *ContactQueryRepository {
	return &ContactQueryRepository{pool: pool}
}

func (r *ContactQueryRepository) Create(ctx context.Context, q *model.ContactQuery) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_queries (name, email, number, subject, message)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		q.Name, q.Email, q.Number, q.Subject, q.Message,
	).Scan(&q.ID, &q.CreatedAt)
}

// List returns all queries, newest first.
func (r *ContactQueryRepository) List(ctx context.Context) ([]model.ContactQuery, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, number, subject, message, created_at
		 FROM contact_queries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []model.ContactQuery
	for rows.Next() {
		var q model.ContactQuery
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Number, &q.Subject,
			&q.Message, &q.CreatedAt); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

// Delete removes the row. Returns false when no row matched.
func (r *ContactQueryRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_queries WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
