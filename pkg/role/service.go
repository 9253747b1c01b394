package role

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// RoleService provides role resolution for callers
type RoleService struct {
	repo UserRoleRepository
}

func NewRoleService(repo UserRoleRepository) *RoleService {
	return &RoleService{
		repo: repo,
	}
}

// ResolveRole returns the role granted to userID, or RoleUser when no grant
// exists. Absence is not an error.
func (s *RoleService) ResolveRole(ctx context.Context, userID uuid.UUID) (Role, error) {
	ur, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return RoleUser, nil
		}
		return RoleUser, err
	}
	return ur.Role, nil
}

// IsAdmin reports whether userID holds the admin role
func (s *RoleService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	r, err := s.ResolveRole(ctx, userID)
	if err != nil {
		return false, err
	}
	return r == RoleAdmin, nil
}
