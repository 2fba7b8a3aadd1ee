package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps users in process memory. It backs tests and the
// "memory" database DSN.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  []User
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(ctx context.Context, u *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return nil, ErrDuplicate
		}
	}

	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	r.nextID++
	r.users = append(r.users, *u)
	return u, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.find(func(u User) bool { return u.Email == email })
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.find(func(u User) bool { return u.Username == username })
}

func (r *MemoryRepository) Exists(ctx context.Context, email, username string) (bool, error) {
	_, err := r.find(func(u User) bool { return u.Email == email || u.Username == username })
	return err == nil, nil
}

func (r *MemoryRepository) find(match func(User) bool) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}
