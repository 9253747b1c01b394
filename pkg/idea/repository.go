package idea

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrIdeaNotFound means the referenced idea id does not exist.
var ErrIdeaNotFound = errors.New("idea not found")

// IdeaRepository defines storage operations for ideas. Every listing is
// ordered by creation time descending (most recent first).
type IdeaRepository interface {
	// Create inserts a new idea and returns it with system-assigned fields
	// (id, created_at) populated.
	Create(ctx context.Context, arg CreateIdeaParams) (Idea, error)

	// GetByID retrieves a single idea. Returns ErrIdeaNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (Idea, error)

	// List returns all ideas, newest first.
	List(ctx context.Context) ([]Idea, error)

	// ListByStatus returns ideas with the given status via the status
	// index, newest first.
	ListByStatus(ctx context.Context, status IdeaStatus) ([]Idea, error)

	// ListBySubmitter returns ideas submitted by userID via the submitter
	// index, newest first.
	ListBySubmitter(ctx context.Context, userID uuid.UUID) ([]Idea, error)

	// IncrementPledgeSupport atomically adds 1 to the idea's support count
	// and returns the new value. Returns ErrIdeaNotFound when absent.
	IncrementPledgeSupport(ctx context.Context, id uuid.UUID) (int32, error)

	// UpdateStatus patches the idea's status unconditionally. Returns
	// ErrIdeaNotFound when absent.
	UpdateStatus(ctx context.Context, id uuid.UUID, status IdeaStatus) error
}

// CreateIdeaParams contains all fields of a new idea record. Status and
// count are fixed by the service; they are not caller inputs.
type CreateIdeaParams struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	SubmittedBy uuid.UUID
}
