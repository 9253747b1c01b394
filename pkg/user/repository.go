package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUserNotFound means no user matches the given id or email.
var ErrUserNotFound = errors.New("user not found")

// UserDirectory provides read access to the auth provider's user records.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
