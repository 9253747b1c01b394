package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record owned by the auth provider. This service only
// reads it; account creation and sessions live elsewhere.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
