package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

// BindingRepo реализует учет привязок товаров к листовым классам.
type BindingRepo struct {
	pool *pgxpool.Pool
}

func NewBindingRepo(pool *pgxpool.Pool) *BindingRepo {
	return &BindingRepo{pool: pool}
}

func (r *BindingRepo) Bind(ctx context.Context, binding *domain.ProductBinding) error {
	q := pick(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO product_bindings (product_id, class_id) VALUES ($1, $2);
	`, binding.ProductID, binding.ClassID)
	if err != nil {
		if postgresDuplicate(err) {
			return e.ErrProductAlreadyBound
		}
		if postgresForeignKeyViolation(err) {
			return e.ErrNotFound
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *BindingRepo) Unbind(ctx context.Context, productID string) (int64, error) {
	q := pick(ctx, r.pool)

	var classID int64
	err := q.QueryRow(ctx, `
		DELETE FROM product_bindings WHERE product_id = $1 RETURNING class_id;
	`, productID).Scan(&classID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, e.ErrNotFound
		}
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return classID, nil
}

func (r *BindingRepo) HasBindings(ctx context.Context, classID int64) (bool, error) {
	q := pick(ctx, r.pool)

	var bound bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM product_bindings WHERE class_id = $1);
	`, classID).Scan(&bound)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return bound, nil
}

func (r *BindingRepo) CountBindings(ctx context.Context, classID int64) (int64, error) {
	q := pick(ctx, r.pool)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM product_bindings WHERE class_id = $1;
	`, classID).Scan(&count)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
