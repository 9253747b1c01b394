package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tendant/simple-ideas/pkg/role"
	"github.com/tendant/simple-ideas/pkg/user"
)

var (
	// ErrAlreadyInitialized means an admin grant already exists; bootstrap
	// only works once, globally.
	ErrAlreadyInitialized = errors.New("an admin user already exists")

	// ErrUserNotFound means the bootstrap target email matches no user.
	ErrUserNotFound = errors.New("user not found, create an account first")
)

// SetupResult is the success record of a completed bootstrap.
type SetupResult struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
}

// SetupService assigns the first admin. It requires no authentication: its
// only safety property is that it works at most once, enforced atomically
// by the role store.
type SetupService struct {
	roles role.UserRoleRepository
	users user.UserDirectory
}

func NewSetupService(roles role.UserRoleRepository, users user.UserDirectory) *SetupService {
	return &SetupService{
		roles: roles,
		users: users,
	}
}

// HasAdminUser reports whether any admin has been assigned yet. Derived
// from the role store on every call; the UI uses it to decide whether to
// show the setup affordance.
func (s *SetupService) HasAdminUser(ctx context.Context) (bool, error) {
	return s.roles.HasAdmin(ctx)
}

// CreateFirstAdmin grants the admin role to the user registered under
// email. Fails with ErrAlreadyInitialized when an admin exists and
// ErrUserNotFound when the email is unknown; the admin check takes
// precedence, so an unknown email after bootstrap still reports
// ErrAlreadyInitialized. An existing role record for the target is
// upgraded in place; otherwise one is inserted.
func (s *SetupService) CreateFirstAdmin(ctx context.Context, email string) (SetupResult, error) {
	hasAdmin, err := s.roles.HasAdmin(ctx)
	if err != nil {
		return SetupResult{}, fmt.Errorf("failed to check for admin: %w", err)
	}
	if hasAdmin {
		return SetupResult{}, ErrAlreadyInitialized
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return SetupResult{}, ErrUserNotFound
		}
		return SetupResult{}, fmt.Errorf("failed to look up user: %w", err)
	}

	_, err = s.roles.GrantAdminIfNoneExists(ctx, u.ID)
	if err != nil {
		if errors.Is(err, role.ErrAdminExists) {
			return SetupResult{}, ErrAlreadyInitialized
		}
		return SetupResult{}, fmt.Errorf("failed to grant admin role: %w", err)
	}

	slog.Info("First admin assigned", "userId", u.ID, "email", u.Email)

	return SetupResult{
		UserID:  u.ID,
		Email:   u.Email,
		Message: "Admin role assigned successfully",
	}, nil
}
