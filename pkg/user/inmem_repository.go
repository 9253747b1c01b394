package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryUserDirectory implements UserDirectory using in-memory storage
type InMemoryUserDirectory struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]User // userID -> User
	byEmail map[string]uuid.UUID
}

// NewInMemoryUserDirectory creates a new in-memory user directory
func NewInMemoryUserDirectory() *InMemoryUserDirectory {
	return &InMemoryUserDirectory{
		users:   make(map[uuid.UUID]User),
		byEmail: make(map[string]uuid.UUID),
	}
}

// GetByID retrieves a user by id
func (d *InMemoryUserDirectory) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// GetByEmail retrieves a user by email
func (d *InMemoryUserDirectory) GetByEmail(ctx context.Context, email string) (User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	id, ok := d.byEmail[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return d.users[id], nil
}

// SeedUser adds a user record directly (for testing), returning its id
func (d *InMemoryUserDirectory) SeedUser(u User) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	d.users[u.ID] = u
	d.byEmail[u.Email] = u.ID

	return u.ID
}
