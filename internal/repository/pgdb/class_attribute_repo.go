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

const classAttributeColumns = `
	id, class_id, attribute_type_id, default_value, required,
	inheritable, overridable, display_order, created_at, updated_at`

// ClassAttributeRepo реализует хранилище определений атрибутов на классах.
type ClassAttributeRepo struct {
	pool *pgxpool.Pool
	conv converter.ClassAttributeConverter
}

func NewClassAttributeRepo(pool *pgxpool.Pool, conv converter.ClassAttributeConverter) *ClassAttributeRepo {
	return &ClassAttributeRepo{pool: pool, conv: conv}
}

func (r *ClassAttributeRepo) Add(ctx context.Context, attr *domain.ClassAttribute) (*domain.ClassAttribute, error) {
	q := pick(ctx, r.pool)

	query := `
		INSERT INTO class_attributes (
			class_id, attribute_type_id, default_value, required,
			inheritable, overridable, display_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + classAttributeColumns + `;
	`

	model, err := scanClassAttribute(q.QueryRow(ctx, query,
		attr.ClassID, attr.AttributeTypeID, attr.DefaultValue,
		attr.Required, attr.Inheritable, attr.Overridable, attr.DisplayOrder,
	))
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.ErrDuplicateAttribute
		}
		if postgresForeignKeyViolation(err) {
			return nil, e.ErrNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

func (r *ClassAttributeRepo) Update(ctx context.Context, attr *domain.ClassAttribute) error {
	q := pick(ctx, r.pool)

	query := `
		UPDATE class_attributes
		SET default_value = $3, required = $4, inheritable = $5,
			overridable = $6, display_order = $7, updated_at = NOW()
		WHERE class_id = $1 AND attribute_type_id = $2;
	`

	tag, err := q.Exec(ctx, query,
		attr.ClassID, attr.AttributeTypeID, attr.DefaultValue,
		attr.Required, attr.Inheritable, attr.Overridable, attr.DisplayOrder,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrNotFound
	}

	return nil
}

func (r *ClassAttributeRepo) Remove(ctx context.Context, classID, attributeTypeID int64) error {
	q := pick(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		DELETE FROM class_attributes WHERE class_id = $1 AND attribute_type_id = $2;
	`, classID, attributeTypeID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrNotFound
	}

	return nil
}

func (r *ClassAttributeRepo) Get(ctx context.Context, classID, attributeTypeID int64) (*domain.ClassAttribute, error) {
	q := pick(ctx, r.pool)

	query := `
		SELECT ` + classAttributeColumns + `
		FROM class_attributes
		WHERE class_id = $1 AND attribute_type_id = $2;
	`

	model, err := scanClassAttribute(q.QueryRow(ctx, query, classID, attributeTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

func (r *ClassAttributeRepo) ListByClass(ctx context.Context, classID int64) ([]*domain.ClassAttribute, error) {
	q := pick(ctx, r.pool)

	query := `
		SELECT ` + classAttributeColumns + `
		FROM class_attributes
		WHERE class_id = $1
		ORDER BY display_order, id;
	`

	rows, err := q.Query(ctx, query, classID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.ClassAttributeModel
	for rows.Next() {
		model, err := scanClassAttribute(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

func scanClassAttribute(row pgx.Row) (*converter.ClassAttributeModel, error) {
	var model converter.ClassAttributeModel
	err := row.Scan(
		&model.ID, &model.ClassID, &model.AttributeTypeID, &model.DefaultValue,
		&model.Required, &model.Inheritable, &model.Overridable,
		&model.DisplayOrder, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}
