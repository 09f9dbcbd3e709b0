package memtree

import (
	"context"
	"sync"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
)

// Store — встроенное хранилище движка в памяти процесса. Используется
// во встроенном режиме и в тестах вместо Postgres. Все публичные методы
// потокобезопасны; репозитории, видимые слою usecase, это тонкие обертки
// над одним Store.
type Store struct {
	mu sync.RWMutex

	classes  map[int64]*domain.ProductClass
	children map[int64][]int64

	attrTypes map[int64]*domain.AttributeType
	typeNames map[string]int64

	// class_id -> attribute_type_id -> определение
	classAttrs map[int64]map[int64]*domain.ClassAttribute

	bindings      map[string]*domain.ProductBinding
	classBindings map[int64]int64

	nextClassID int64
	nextTypeID  int64
	nextAttrID  int64
}

func NewStore() *Store {
	return &Store{
		classes:       make(map[int64]*domain.ProductClass),
		children:      make(map[int64][]int64),
		attrTypes:     make(map[int64]*domain.AttributeType),
		typeNames:     make(map[string]int64),
		classAttrs:    make(map[int64]map[int64]*domain.ClassAttribute),
		bindings:      make(map[string]*domain.ProductBinding),
		classBindings: make(map[int64]int64),
	}
}

func (s *Store) Classes() *ClassRepo             { return &ClassRepo{store: s} }
func (s *Store) AttributeTypes() *AttributeTypeRepo {
	return &AttributeTypeRepo{store: s}
}
func (s *Store) ClassAttributes() *ClassAttributeRepo {
	return &ClassAttributeRepo{store: s}
}
func (s *Store) Bindings() *BindingRepo { return &BindingRepo{store: s} }

// Transactor — сквозная замена транзакций для встроенного режима.
// Мутации usecase сериализованы блокировкой магазина и состоят из
// валидации плюс одного вызова хранилища, поэтому откат не нужен.
type Transactor struct{}

func NewTransactor() *Transactor { return &Transactor{} }

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func cloneClass(class *domain.ProductClass) *domain.ProductClass {
	cp := *class
	if class.ParentID != nil {
		id := *class.ParentID
		cp.ParentID = &id
	}
	if class.Price != nil {
		p := *class.Price
		cp.Price = &p
	}
	if class.UpdatedAt != nil {
		t := *class.UpdatedAt
		cp.UpdatedAt = &t
	}
	cp.MediaKeys = append([]string(nil), class.MediaKeys...)
	return &cp
}

func cloneAttrType(attrType *domain.AttributeType) *domain.AttributeType {
	cp := *attrType
	cp.Choices = append([]string(nil), attrType.Choices...)
	return &cp
}

func cloneClassAttr(attr *domain.ClassAttribute) *domain.ClassAttribute {
	cp := *attr
	return &cp
}
