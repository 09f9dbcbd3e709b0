package memtree

import (
	"context"
	"sort"
	"time"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

type ClassRepo struct {
	store *Store
}

func (r *ClassRepo) Create(ctx context.Context, class *domain.ProductClass) (*domain.ProductClass, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if class.ParentID != nil {
		if _, ok := s.classes[*class.ParentID]; !ok {
			return nil, e.ErrInvalidParent
		}
	}

	s.nextClassID++
	stored := cloneClass(class)
	stored.ID = s.nextClassID
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = &now

	if stored.ParentID != nil {
		parent := s.classes[*stored.ParentID]
		stored.Depth = parent.Depth + 1
		s.children[parent.ID] = append(s.children[parent.ID], stored.ID)
		parent.IsLeaf = false
	} else {
		stored.Depth = 1
	}
	stored.IsLeaf = true

	s.classes[stored.ID] = stored
	return cloneClass(stored), nil
}

func (r *ClassRepo) GetByID(ctx context.Context, id int64) (*domain.ProductClass, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	class, ok := s.classes[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cloneClass(class), nil
}

func (r *ClassRepo) Update(ctx context.Context, class *domain.ProductClass) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.classes[class.ID]
	if !ok {
		return e.ErrNotFound
	}

	stored.Name = class.Name
	stored.DisplayOrder = class.DisplayOrder
	stored.IsActive = class.IsActive
	stored.MediaKeys = append([]string(nil), class.MediaKeys...)
	if class.Price != nil {
		p := *class.Price
		stored.Price = &p
	} else {
		stored.Price = nil
	}
	now := time.Now().UTC()
	stored.UpdatedAt = &now
	return nil
}

func (r *ClassRepo) SetParent(ctx context.Context, id int64, parentID *int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	class, ok := s.classes[id]
	if !ok {
		return e.ErrNotFound
	}

	var newParent *domain.ProductClass
	if parentID != nil {
		newParent, ok = s.classes[*parentID]
		if !ok {
			return e.ErrInvalidParent
		}
	}

	if class.ParentID != nil {
		oldParent := s.classes[*class.ParentID]
		s.children[oldParent.ID] = removeID(s.children[oldParent.ID], id)
		oldParent.IsLeaf = len(s.children[oldParent.ID]) == 0
	}

	if newParent != nil {
		pid := newParent.ID
		class.ParentID = &pid
		class.Depth = newParent.Depth + 1
		s.children[newParent.ID] = append(s.children[newParent.ID], id)
		newParent.IsLeaf = false
	} else {
		class.ParentID = nil
		class.Depth = 1
	}
	now := time.Now().UTC()
	class.UpdatedAt = &now

	// Глубина меняется у всего перенесенного поддерева.
	queue := append([]int64(nil), s.children[id]...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		node := s.classes[next]
		node.Depth = s.classes[*node.ParentID].Depth + 1
		queue = append(queue, s.children[next]...)
	}

	return nil
}

func (r *ClassRepo) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	class, ok := s.classes[id]
	if !ok {
		return e.ErrNotFound
	}
	if len(s.children[id]) > 0 {
		return e.ErrHasChildren
	}

	if class.ParentID != nil {
		parent := s.classes[*class.ParentID]
		s.children[parent.ID] = removeID(s.children[parent.ID], id)
		parent.IsLeaf = len(s.children[parent.ID]) == 0
	}

	delete(s.classes, id)
	delete(s.children, id)
	delete(s.classAttrs, id)
	delete(s.classBindings, id)
	return nil
}

func (r *ClassRepo) Children(ctx context.Context, id int64) ([]*domain.ProductClass, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.classes[id]; !ok {
		return nil, e.ErrNotFound
	}

	out := make([]*domain.ProductClass, 0, len(s.children[id]))
	for _, childID := range s.children[id] {
		out = append(out, cloneClass(s.classes[childID]))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ClassRepo) Ancestors(ctx context.Context, id int64, includeSelf bool) ([]*domain.ProductClass, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	class, ok := s.classes[id]
	if !ok {
		return nil, e.ErrNotFound
	}

	var chain []*domain.ProductClass
	if includeSelf {
		chain = append(chain, cloneClass(class))
	}
	for class.ParentID != nil {
		class = s.classes[*class.ParentID]
		chain = append(chain, cloneClass(class))
	}
	return chain, nil
}

func (r *ClassRepo) Descendants(ctx context.Context, id int64) ([]int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.classes[id]; !ok {
		return nil, e.ErrNotFound
	}

	var out []int64
	queue := append([]int64(nil), s.children[id]...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		out = append(out, next)
		queue = append(queue, s.children[next]...)
	}
	return out, nil
}

func (r *ClassRepo) HasChildren(ctx context.Context, id int64) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.classes[id]; !ok {
		return false, e.ErrNotFound
	}
	return len(s.children[id]) > 0, nil
}

func removeID(ids []int64, id int64) []int64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
