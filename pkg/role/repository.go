package role

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrRoleNotFound means no role record exists for the user. Absence is
	// valid and maps to the default role at the call site.
	ErrRoleNotFound = errors.New("role not found")

	// ErrAdminExists is returned by GrantAdminIfNoneExists when an admin
	// grant is already present.
	ErrAdminExists = errors.New("an admin user already exists")
)

// UserRoleRepository defines storage operations for role grants.
type UserRoleRepository interface {
	// GetByUserID looks up the role record for a user by its unique index.
	// Returns ErrRoleNotFound when the user has no record.
	GetByUserID(ctx context.Context, userID uuid.UUID) (UserRole, error)

	// HasAdmin reports whether at least one admin grant exists. The result
	// is always derived from the role index, never cached.
	HasAdmin(ctx context.Context) (bool, error)

	// GrantAdminIfNoneExists makes userID an admin, updating an existing
	// role record in place or inserting a new one. Fails with
	// ErrAdminExists if any admin grant already exists. The existence check
	// and the write execute atomically: concurrent calls cannot both
	// succeed.
	GrantAdminIfNoneExists(ctx context.Context, userID uuid.UUID) (UserRole, error)
}
