package usecase

import (
	"context"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
)

// ClassRepository — хранилище дерева классов. Реализация обязана сама
// поддерживать производные поля: depth у поддерева при перемещении и
// is_leaf у затронутых родителей при добавлении/удалении детей.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.ProductClass) (*domain.ProductClass, error)
	GetByID(ctx context.Context, id int64) (*domain.ProductClass, error)
	// Update сохраняет изменяемые поля: name, price, display_order,
	// is_active, media_keys. Родитель меняется только через SetParent.
	Update(ctx context.Context, class *domain.ProductClass) error
	SetParent(ctx context.Context, id int64, parentID *int64) error
	Delete(ctx context.Context, id int64) error

	// Children возвращает прямых детей в порядке (display_order, id).
	Children(ctx context.Context, id int64) ([]*domain.ProductClass, error)
	// Ancestors возвращает цепочку от узла к корню.
	Ancestors(ctx context.Context, id int64, includeSelf bool) ([]*domain.ProductClass, error)
	// Descendants возвращает id всех потомков узла, сам узел не входит.
	Descendants(ctx context.Context, id int64) ([]int64, error)
	HasChildren(ctx context.Context, id int64) (bool, error)
}

type AttributeTypeRepository interface {
	// Create возвращает e.ErrAttributeTypeNameTaken при конфликте имени.
	Create(ctx context.Context, attrType *domain.AttributeType) (*domain.AttributeType, error)
	GetByID(ctx context.Context, id int64) (*domain.AttributeType, error)
	List(ctx context.Context) ([]*domain.AttributeType, error)
	Update(ctx context.Context, attrType *domain.AttributeType) error
	// IsReferenced — есть ли у типа хотя бы одна привязка к классу.
	IsReferenced(ctx context.Context, typeID int64) (bool, error)
}

type ClassAttributeRepository interface {
	// Add возвращает e.ErrDuplicateAttribute, если пара
	// (class_id, attribute_type_id) уже определена.
	Add(ctx context.Context, attr *domain.ClassAttribute) (*domain.ClassAttribute, error)
	Update(ctx context.Context, attr *domain.ClassAttribute) error
	Remove(ctx context.Context, classID, attributeTypeID int64) error
	Get(ctx context.Context, classID, attributeTypeID int64) (*domain.ClassAttribute, error)
	// ListByClass возвращает определения класса в порядке (display_order, id).
	ListByClass(ctx context.Context, classID int64) ([]*domain.ClassAttribute, error)
}

type BindingRepository interface {
	// Bind возвращает e.ErrProductAlreadyBound при повторной привязке товара.
	Bind(ctx context.Context, binding *domain.ProductBinding) error
	// Unbind возвращает id класса, от которого товар был отвязан.
	Unbind(ctx context.Context, productID string) (int64, error)
	HasBindings(ctx context.Context, classID int64) (bool, error)
	CountBindings(ctx context.Context, classID int64) (int64, error)
}

// ProfileCache — кэш разрешенных профилей. Get возвращает (nil, nil)
// при промахе.
type ProfileCache interface {
	Get(ctx context.Context, classID int64) (*domain.ResolvedProfile, error)
	Set(ctx context.Context, profile *domain.ResolvedProfile) error
	Delete(ctx context.Context, classIDs []int64) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
