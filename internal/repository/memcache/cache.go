package memcache

import (
	"context"
	"sync"
	"time"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
)

// Cache — кэш профилей в памяти процесса для встроенного режима.
// Запись живет не дольше ttl, инвалидация удаляет ее сразу.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[int64]entry
	now     func() time.Time
}

type entry struct {
	profile   *domain.ResolvedProfile
	expiresAt time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[int64]entry),
		now:     time.Now,
	}
}

func (c *Cache) Get(ctx context.Context, classID int64) (*domain.ResolvedProfile, error) {
	c.mu.RLock()
	ent, ok := c.entries[classID]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if c.now().After(ent.expiresAt) {
		c.mu.Lock()
		delete(c.entries, classID)
		c.mu.Unlock()
		return nil, nil
	}
	// Копия: вызывающий не должен разделять карту и срезы с кэшем.
	return ent.profile.Clone(), nil
}

func (c *Cache) Set(ctx context.Context, profile *domain.ResolvedProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[profile.ClassID] = entry{
		profile:   profile.Clone(),
		expiresAt: c.now().Add(c.ttl),
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, classIDs []int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range classIDs {
		delete(c.entries, id)
	}
	return nil
}

// Len — количество живых записей, используется в тестах.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
