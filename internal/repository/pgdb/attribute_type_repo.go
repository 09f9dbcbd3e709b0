package pgdb

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

// AttributeTypeRepo реализует реестр типов атрибутов поверх PostgreSQL.
// Правило валидации хранится в jsonb, список choice-значений в text[].
type AttributeTypeRepo struct {
	pool *pgxpool.Pool
}

func NewAttributeTypeRepo(pool *pgxpool.Pool) *AttributeTypeRepo {
	return &AttributeTypeRepo{pool: pool}
}

const attributeTypeColumns = `
	id, name, display_name, kind, choices, rule, created_at, updated_at`

func (r *AttributeTypeRepo) Create(ctx context.Context, attrType *domain.AttributeType) (*domain.AttributeType, error) {
	q := pick(ctx, r.pool)

	rule, err := json.Marshal(attrType.Rule)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO attribute_types (name, display_name, kind, choices, rule)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attributeTypeColumns + `;
	`

	created, err := scanAttributeType(q.QueryRow(ctx, query,
		attrType.Name, attrType.DisplayName, string(attrType.Kind), attrType.Choices, rule,
	))
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.ErrAttributeTypeNameTaken
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return created, nil
}

func (r *AttributeTypeRepo) GetByID(ctx context.Context, id int64) (*domain.AttributeType, error) {
	q := pick(ctx, r.pool)

	query := `SELECT ` + attributeTypeColumns + ` FROM attribute_types WHERE id = $1;`

	attrType, err := scanAttributeType(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return attrType, nil
}

func (r *AttributeTypeRepo) List(ctx context.Context) ([]*domain.AttributeType, error) {
	q := pick(ctx, r.pool)

	query := `SELECT ` + attributeTypeColumns + ` FROM attribute_types ORDER BY id;`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var types []*domain.AttributeType
	for rows.Next() {
		attrType, err := scanAttributeType(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		types = append(types, attrType)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return types, nil
}

func (r *AttributeTypeRepo) Update(ctx context.Context, attrType *domain.AttributeType) error {
	q := pick(ctx, r.pool)

	rule, err := json.Marshal(attrType.Rule)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE attribute_types
		SET name = $2, display_name = $3, kind = $4, choices = $5, rule = $6,
			updated_at = NOW()
		WHERE id = $1;
	`

	tag, err := q.Exec(ctx, query,
		attrType.ID, attrType.Name, attrType.DisplayName,
		string(attrType.Kind), attrType.Choices, rule,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return e.ErrAttributeTypeNameTaken
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrNotFound
	}

	return nil
}

func (r *AttributeTypeRepo) IsReferenced(ctx context.Context, typeID int64) (bool, error) {
	q := pick(ctx, r.pool)

	var referenced bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM class_attributes WHERE attribute_type_id = $1);
	`, typeID).Scan(&referenced)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return referenced, nil
}

func scanAttributeType(row pgx.Row) (*domain.AttributeType, error) {
	var (
		attrType domain.AttributeType
		kind     string
		rule     []byte
	)

	err := row.Scan(
		&attrType.ID, &attrType.Name, &attrType.DisplayName, &kind,
		&attrType.Choices, &rule, &attrType.CreatedAt, &attrType.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	attrType.Kind = domain.AttributeKind(kind)
	if len(rule) > 0 {
		if err := json.Unmarshal(rule, &attrType.Rule); err != nil {
			return nil, err
		}
	}

	return &attrType, nil
}
