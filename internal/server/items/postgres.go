package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gatormarket/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, it *Item) (*Item, error) {
	query :=
		`INSERT INTO items (title, description, price, category, image, is_active, seller_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		it.Title, it.Description, it.Price, it.Category, it.Image, it.IsActive, it.SellerID).
		Scan(&it.ID, &it.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return it, nil
}

const selectItem = `SELECT i.id, i.title, i.description, i.price, i.category, i.image, i.is_active,
		i.seller_id, u.email, i.created_at
	FROM items i JOIN users u ON u.id = i.seller_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (Item, error) {
	var it Item
	err := s.Scan(&it.ID, &it.Title, &it.Description, &it.Price, &it.Category, &it.Image, &it.IsActive,
		&it.SellerID, &it.SellerEmail, &it.CreatedAt)
	return it, err
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Item, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, selectItem+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &it, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, selectItem+` WHERE i.is_active ORDER BY i.id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.execOne(ctx, `UPDATE items SET is_active = $2 WHERE id = $1`, id, active)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return r.execOne(ctx, `DELETE FROM items WHERE id = $1`, id)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE title = $1)`, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}
