package usecase

import "sync"

// storeLocks сериализует мутации дерева в пределах одного магазина.
// Деревья разных магазинов независимы и мутируют параллельно.
type storeLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newStoreLocks() *storeLocks {
	return &storeLocks{locks: make(map[int64]*sync.Mutex)}
}

func (s *storeLocks) Lock(storeID int64) func() {
	s.mu.Lock()
	lock, ok := s.locks[storeID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[storeID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
