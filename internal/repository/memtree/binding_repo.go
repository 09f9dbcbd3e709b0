package memtree

import (
	"context"
	"time"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

type BindingRepo struct {
	store *Store
}

func (r *BindingRepo) Bind(ctx context.Context, binding *domain.ProductBinding) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[binding.ClassID]; !ok {
		return e.ErrNotFound
	}
	if _, ok := s.bindings[binding.ProductID]; ok {
		return e.ErrProductAlreadyBound
	}

	stored := *binding
	stored.CreatedAt = time.Now().UTC()
	s.bindings[binding.ProductID] = &stored
	s.classBindings[binding.ClassID]++
	return nil
}

func (r *BindingRepo) Unbind(ctx context.Context, productID string) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	binding, ok := s.bindings[productID]
	if !ok {
		return 0, e.ErrNotFound
	}

	delete(s.bindings, productID)
	s.classBindings[binding.ClassID]--
	if s.classBindings[binding.ClassID] <= 0 {
		delete(s.classBindings, binding.ClassID)
	}
	return binding.ClassID, nil
}

func (r *BindingRepo) HasBindings(ctx context.Context, classID int64) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.classBindings[classID] > 0, nil
}

func (r *BindingRepo) CountBindings(ctx context.Context, classID int64) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.classBindings[classID], nil
}
