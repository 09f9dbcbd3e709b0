package memtree

import (
	"context"
	"sort"
	"time"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

type AttributeTypeRepo struct {
	store *Store
}

func (r *AttributeTypeRepo) Create(ctx context.Context, attrType *domain.AttributeType) (*domain.AttributeType, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.typeNames[attrType.Name]; ok {
		return nil, e.ErrAttributeTypeNameTaken
	}

	s.nextTypeID++
	stored := cloneAttrType(attrType)
	stored.ID = s.nextTypeID
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = &now

	s.attrTypes[stored.ID] = stored
	s.typeNames[stored.Name] = stored.ID
	return cloneAttrType(stored), nil
}

func (r *AttributeTypeRepo) GetByID(ctx context.Context, id int64) (*domain.AttributeType, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	attrType, ok := s.attrTypes[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cloneAttrType(attrType), nil
}

func (r *AttributeTypeRepo) List(ctx context.Context) ([]*domain.AttributeType, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.AttributeType, 0, len(s.attrTypes))
	for _, attrType := range s.attrTypes {
		out = append(out, cloneAttrType(attrType))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AttributeTypeRepo) Update(ctx context.Context, attrType *domain.AttributeType) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.attrTypes[attrType.ID]
	if !ok {
		return e.ErrNotFound
	}

	if stored.Name != attrType.Name {
		if _, taken := s.typeNames[attrType.Name]; taken {
			return e.ErrAttributeTypeNameTaken
		}
		delete(s.typeNames, stored.Name)
		s.typeNames[attrType.Name] = stored.ID
	}

	next := cloneAttrType(attrType)
	next.ID = stored.ID
	next.CreatedAt = stored.CreatedAt
	now := time.Now().UTC()
	next.UpdatedAt = &now
	s.attrTypes[stored.ID] = next
	return nil
}

func (r *AttributeTypeRepo) IsReferenced(ctx context.Context, typeID int64) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, attrs := range s.classAttrs {
		if _, ok := attrs[typeID]; ok {
			return true, nil
		}
	}
	return false, nil
}

type ClassAttributeRepo struct {
	store *Store
}

func (r *ClassAttributeRepo) Add(ctx context.Context, attr *domain.ClassAttribute) (*domain.ClassAttribute, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[attr.ClassID]; !ok {
		return nil, e.ErrNotFound
	}
	if _, ok := s.attrTypes[attr.AttributeTypeID]; !ok {
		return nil, e.ErrNotFound
	}

	attrs, ok := s.classAttrs[attr.ClassID]
	if !ok {
		attrs = make(map[int64]*domain.ClassAttribute)
		s.classAttrs[attr.ClassID] = attrs
	}
	if _, ok := attrs[attr.AttributeTypeID]; ok {
		return nil, e.ErrDuplicateAttribute
	}

	s.nextAttrID++
	stored := cloneClassAttr(attr)
	stored.ID = s.nextAttrID
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = &now

	attrs[attr.AttributeTypeID] = stored
	return cloneClassAttr(stored), nil
}

func (r *ClassAttributeRepo) Update(ctx context.Context, attr *domain.ClassAttribute) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.classAttrs[attr.ClassID][attr.AttributeTypeID]
	if !ok {
		return e.ErrNotFound
	}

	stored.DefaultValue = attr.DefaultValue
	stored.Required = attr.Required
	stored.Inheritable = attr.Inheritable
	stored.Overridable = attr.Overridable
	stored.DisplayOrder = attr.DisplayOrder
	now := time.Now().UTC()
	stored.UpdatedAt = &now
	return nil
}

func (r *ClassAttributeRepo) Remove(ctx context.Context, classID, attributeTypeID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classAttrs[classID][attributeTypeID]; !ok {
		return e.ErrNotFound
	}
	delete(s.classAttrs[classID], attributeTypeID)
	return nil
}

func (r *ClassAttributeRepo) Get(ctx context.Context, classID, attributeTypeID int64) (*domain.ClassAttribute, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	attr, ok := s.classAttrs[classID][attributeTypeID]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cloneClassAttr(attr), nil
}

func (r *ClassAttributeRepo) ListByClass(ctx context.Context, classID int64) ([]*domain.ClassAttribute, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ClassAttribute, 0, len(s.classAttrs[classID]))
	for _, attr := range s.classAttrs[classID] {
		out = append(out, cloneClassAttr(attr))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
