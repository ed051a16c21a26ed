package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rkenterprise/site-backend/internal/model"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, image, summary, description, specifications, status, created_at`

// ListActive returns products with status=1, newest first. Used by the
// public catalog.
func (r *ProductRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE status = 1 ORDER BY created_at DESC`)
}

// ListAll returns every product regardless of status, newest first.
func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
}

func (r *ProductRepository) list(ctx context.Context, query string) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// GetByID returns the product with the given id regardless of status,
// or nil when absent.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	specs, err := marshalSpecs(p.Specifications)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO products (name, image, summary, description, specifications, status)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`,
		p.Name, p.Image, p.Summary, p.Description, specs, p.Status,
	).Scan(&p.ID, &p.CreatedAt)
}

// Update rewrites every mutable column. Returns false when no row matched.
func (r *ProductRepository) Update(ctx context.Context, p *model.Product) (bool, error) {
	specs, err := marshalSpecs(p.Specifications)
	if err != nil {
		return false, err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET name = $1, image = $2, summary = $3,
		 description = $4, specifications = $5, status = $6 WHERE id = $7`,
		p.Name, p.Image, p.Summary, p.Description, specs, p.Status, p.ID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateStatus flips the visibility flag. Returns false when no row matched.
func (r *ProductRepository) UpdateStatus(ctx context.Context, id, status int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE products SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the row. Returns false when no row matched.
func (r *ProductRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func marshalSpecs(specs []model.Specification) ([]byte, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(specs)
	if err != nil {
		return nil, fmt.Errorf("marshal specifications: %w", err)
	}
	return b, nil
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p     model.Product
		specs []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Image, &p.Summary, &p.Description,
		&specs, &p.Status, &p.CreatedAt); err != nil {
		return nil, err
	}
	// Deserialize the stored spec list; a NULL column becomes an empty list.
	p.Specifications = []model.Specification{}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.Specifications); err != nil {
			return nil, fmt.Errorf("unmarshal specifications: %w", err)
		}
	}
	return &p, nil
}
