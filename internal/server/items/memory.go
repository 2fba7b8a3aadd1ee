package items

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps items in process memory. SellerEmail is stored as
// given on Create.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  map[int64]Item
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]Item), nextID: 1}
}

func (r *MemoryRepository) Create(ctx context.Context, it *Item) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it.ID = r.nextID
	it.CreatedAt = time.Now().UTC()
	r.nextID++
	r.items[it.ID] = *it
	return it, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *MemoryRepository) ListActive(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0, len(r.items))
	for id := int64(1); id < r.nextID; id++ {
		if it, ok := r.items[id]; ok && it.IsActive {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *MemoryRepository) SetActive(ctx context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	it.IsActive = active
	r.items[id] = it
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.Title == title {
			return true, nil
		}
	}
	return false, nil
}
