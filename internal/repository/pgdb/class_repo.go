package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

const classColumns = `
	id, store_id, name, price, parent_id, display_order,
	is_active, is_leaf, depth, media_keys, created_at, updated_at`

// ClassRepo реализует хранилище дерева классов поверх PostgreSQL.
// Цепочки предков и множества потомков считаются рекурсивными CTE,
// производные поля depth и is_leaf поддерживаются на каждой мутации.
type ClassRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductClassConverter
}

func NewClassRepo(pool *pgxpool.Pool, conv converter.ProductClassConverter) *ClassRepo {
	return &ClassRepo{pool: pool, conv: conv}
}

func (r *ClassRepo) Create(ctx context.Context, class *domain.ProductClass) (*domain.ProductClass, error) {
	q := pick(ctx, r.pool)

	query := `
		INSERT INTO product_classes (
			store_id, name, price, parent_id, display_order, is_active, is_leaf, depth
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, true,
			COALESCE((SELECT depth + 1 FROM product_classes WHERE id = $4), 1)
		)
		RETURNING ` + classColumns + `;
	`

	model, err := scanClass(q.QueryRow(ctx, query,
		class.StoreID, class.Name, class.Price, class.ParentID,
		class.DisplayOrder, class.IsActive,
	))
	if err != nil {
		if postgresForeignKeyViolation(err) {
			return nil, e.ErrInvalidParent
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if class.ParentID != nil {
		if err := r.refreshLeafFlags(ctx, q, []int64{*class.ParentID}); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return r.conv.ToEntity(model), nil
}

func (r *ClassRepo) GetByID(ctx context.Context, id int64) (*domain.ProductClass, error) {
	q := pick(ctx, r.pool)

	query := `SELECT ` + classColumns + ` FROM product_classes WHERE id = $1;`

	model, err := scanClass(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

func (r *ClassRepo) Update(ctx context.Context, class *domain.ProductClass) error {
	q := pick(ctx, r.pool)

	query := `
		UPDATE product_classes
		SET name = $2, price = $3, display_order = $4, is_active = $5,
			media_keys = $6, updated_at = NOW()
		WHERE id = $1;
	`

	tag, err := q.Exec(ctx, query,
		class.ID, class.Name, class.Price, class.DisplayOrder,
		class.IsActive, class.MediaKeys,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrNotFound
	}

	return nil
}

func (r *ClassRepo) SetParent(ctx context.Context, id int64, parentID *int64) error {
	q := pick(ctx, r.pool)

	var oldParentID *int64
	err := q.QueryRow(ctx, `SELECT parent_id FROM product_classes WHERE id = $1;`, id).
		Scan(&oldParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return e.ErrNotFound
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	_, err = q.Exec(ctx, `
		UPDATE product_classes SET parent_id = $2, updated_at = NOW() WHERE id = $1;
	`, id, parentID)
	if err != nil {
		if postgresForeignKeyViolation(err) {
			return e.ErrInvalidParent
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	// Глубина пересчитывается у всего перенесенного поддерева.
	_, err = q.Exec(ctx, `
		WITH RECURSIVE fresh AS (
			SELECT c.id,
				COALESCE((SELECT p.depth FROM product_classes p WHERE p.id = c.parent_id), 0) + 1 AS depth
			FROM product_classes c
			WHERE c.id = $1
			UNION ALL
			SELECT c.id, f.depth + 1
			FROM product_classes c
			JOIN fresh f ON c.parent_id = f.id
		)
		UPDATE product_classes pc
		SET depth = fresh.depth
		FROM fresh
		WHERE pc.id = fresh.id;
	`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	affected := make([]int64, 0, 2)
	if oldParentID != nil {
		affected = append(affected, *oldParentID)
	}
	if parentID != nil {
		affected = append(affected, *parentID)
	}
	if len(affected) > 0 {
		if err := r.refreshLeafFlags(ctx, q, affected); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

func (r *ClassRepo) Delete(ctx context.Context, id int64) error {
	q := pick(ctx, r.pool)

	var parentID *int64
	err := q.QueryRow(ctx, `SELECT parent_id FROM product_classes WHERE id = $1;`, id).
		Scan(&parentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return e.ErrNotFound
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	// Определения атрибутов удаляются каскадом по FK.
	tag, err := q.Exec(ctx, `DELETE FROM product_classes WHERE id = $1;`, id)
	if err != nil {
		if postgresForeignKeyViolation(err) {
			return e.ErrHasChildren
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrNotFound
	}

	if parentID != nil {
		if err := r.refreshLeafFlags(ctx, q, []int64{*parentID}); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

func (r *ClassRepo) Children(ctx context.Context, id int64) ([]*domain.ProductClass, error) {
	q := pick(ctx, r.pool)

	query := `
		SELECT ` + classColumns + `
		FROM product_classes
		WHERE parent_id = $1
		ORDER BY display_order, id;
	`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectClasses(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

func (r *ClassRepo) Ancestors(ctx context.Context, id int64, includeSelf bool) ([]*domain.ProductClass, error) {
	q := pick(ctx, r.pool)

	query := `
		WITH RECURSIVE chain AS (
			SELECT c.*, 0 AS pos
			FROM product_classes c
			WHERE c.id = $1
			UNION ALL
			SELECT p.*, chain.pos + 1
			FROM product_classes p
			JOIN chain ON chain.parent_id = p.id
		)
		SELECT ` + classColumns + `
		FROM chain
		WHERE pos >= $2
		ORDER BY pos;
	`

	minPos := 0
	if !includeSelf {
		minPos = 1
	}

	rows, err := q.Query(ctx, query, id, minPos)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectClasses(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// Сам узел должен существовать даже при пустой цепочке предков.
	if !includeSelf {
		var exists bool
		err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_classes WHERE id = $1);`, id).
			Scan(&exists)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if !exists {
			return nil, e.ErrNotFound
		}
	} else if len(models) == 0 {
		return nil, e.ErrNotFound
	}

	return r.conv.ToArrEntity(models), nil
}

func (r *ClassRepo) Descendants(ctx context.Context, id int64) ([]int64, error) {
	q := pick(ctx, r.pool)

	query := `
		WITH RECURSIVE subtree AS (
			SELECT c.id FROM product_classes c WHERE c.parent_id = $1
			UNION ALL
			SELECT c.id FROM product_classes c JOIN subtree s ON c.parent_id = s.id
		)
		SELECT id FROM subtree;
	`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var descendantID int64
		if err := rows.Scan(&descendantID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		ids = append(ids, descendantID)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return ids, nil
}

func (r *ClassRepo) HasChildren(ctx context.Context, id int64) (bool, error) {
	q := pick(ctx, r.pool)

	var hasChildren bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM product_classes WHERE parent_id = $1);
	`, id).Scan(&hasChildren)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return hasChildren, nil
}

// refreshLeafFlags пересчитывает is_leaf у перечисленных узлов.
func (r *ClassRepo) refreshLeafFlags(ctx context.Context, q querier, ids []int64) error {
	_, err := q.Exec(ctx, `
		UPDATE product_classes pc
		SET is_leaf = NOT EXISTS (SELECT 1 FROM product_classes c WHERE c.parent_id = pc.id),
			updated_at = NOW()
		WHERE pc.id = ANY($1);
	`, ids)
	return err
}

func scanClass(row pgx.Row) (*converter.ProductClassModel, error) {
	var model converter.ProductClassModel
	err := row.Scan(
		&model.ID, &model.StoreID, &model.Name, &model.Price, &model.ParentID,
		&model.DisplayOrder, &model.IsActive, &model.IsLeaf, &model.Depth,
		&model.MediaKeys, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func collectClasses(rows pgx.Rows) ([]*converter.ProductClassModel, error) {
	var models []*converter.ProductClassModel
	for rows.Next() {
		model, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return models, nil
}
