package role

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryUserRoleRepository implements UserRoleRepository using in-memory storage
type InMemoryUserRoleRepository struct {
	mu    sync.RWMutex
	roles map[uuid.UUID]UserRole // userID -> UserRole
}

// NewInMemoryUserRoleRepository creates a new in-memory role repository
func NewInMemoryUserRoleRepository() *InMemoryUserRoleRepository {
	return &InMemoryUserRoleRepository{
		roles: make(map[uuid.UUID]UserRole),
	}
}

// GetByUserID looks up the role record for a user
func (r *InMemoryUserRoleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (UserRole, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ur, ok := r.roles[userID]
	if !ok {
		return UserRole{}, ErrRoleNotFound
	}
	return ur, nil
}

// HasAdmin reports whether any admin grant exists
func (r *InMemoryUserRoleRepository) HasAdmin(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hasAdminLocked(), nil
}

func (r *InMemoryUserRoleRepository) hasAdminLocked() bool {
	for _, ur := range r.roles {
		if ur.Role == RoleAdmin {
			return true
		}
	}
	return false
}

// GrantAdminIfNoneExists upserts an admin grant for userID unless one already
// exists. The mutex is held across the check and the write.
func (r *InMemoryUserRoleRepository) GrantAdminIfNoneExists(ctx context.Context, userID uuid.UUID) (UserRole, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasAdminLocked() {
		return UserRole{}, ErrAdminExists
	}

	ur, ok := r.roles[userID]
	if ok {
		ur.Role = RoleAdmin
	} else {
		ur = UserRole{
			ID:        uuid.New(),
			UserID:    userID,
			Role:      RoleAdmin,
			CreatedAt: time.Now().UTC(),
		}
	}
	r.roles[userID] = ur

	return ur, nil
}

// SeedRole adds a role record directly (for testing)
func (r *InMemoryUserRoleRepository) SeedRole(ur UserRole) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ur.ID == uuid.Nil {
		ur.ID = uuid.New()
	}
	r.roles[ur.UserID] = ur
}
