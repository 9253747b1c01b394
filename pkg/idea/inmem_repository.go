package idea

import (
	"cmp"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// InMemoryIdeaRepository implements IdeaRepository using in-memory storage
type InMemoryIdeaRepository struct {
	mu    sync.RWMutex
	ideas map[uuid.UUID]Idea
	seq   map[uuid.UUID]int64 // insertion order, for stable newest-first sorting
	next  int64
}

// NewInMemoryIdeaRepository creates a new in-memory idea repository
func NewInMemoryIdeaRepository() *InMemoryIdeaRepository {
	return &InMemoryIdeaRepository{
		ideas: make(map[uuid.UUID]Idea),
		seq:   make(map[uuid.UUID]int64),
	}
}

// Create inserts a new idea with status pending and a zero support count
func (r *InMemoryIdeaRepository) Create(ctx context.Context, arg CreateIdeaParams) (Idea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tags := arg.Tags
	if tags == nil {
		tags = []string{}
	}

	idea := Idea{
		ID:                 uuid.New(),
		Title:              arg.Title,
		Description:        arg.Description,
		Category:           arg.Category,
		Tags:               tags,
		SubmittedBy:        arg.SubmittedBy,
		PledgeSupportCount: 0,
		Status:             StatusPending,
		CreatedAt:          time.Now().UTC(),
	}

	r.ideas[idea.ID] = idea
	r.next++
	r.seq[idea.ID] = r.next

	return idea, nil
}

// GetByID retrieves a single idea
func (r *InMemoryIdeaRepository) GetByID(ctx context.Context, id uuid.UUID) (Idea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idea, ok := r.ideas[id]
	if !ok {
		return Idea{}, ErrIdeaNotFound
	}
	return idea, nil
}

// List returns all ideas, newest first
func (r *InMemoryIdeaRepository) List(ctx context.Context) ([]Idea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectLocked(func(Idea) bool { return true }), nil
}

// ListByStatus returns ideas with the given status, newest first
func (r *InMemoryIdeaRepository) ListByStatus(ctx context.Context, status IdeaStatus) ([]Idea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectLocked(func(i Idea) bool { return i.Status == status }), nil
}

// ListBySubmitter returns ideas submitted by userID, newest first
func (r *InMemoryIdeaRepository) ListBySubmitter(ctx context.Context, userID uuid.UUID) ([]Idea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectLocked(func(i Idea) bool { return i.SubmittedBy == userID }), nil
}

// IncrementPledgeSupport adds 1 to the support count under the write lock
func (r *InMemoryIdeaRepository) IncrementPledgeSupport(ctx context.Context, id uuid.UUID) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idea, ok := r.ideas[id]
	if !ok {
		return 0, ErrIdeaNotFound
	}

	idea.PledgeSupportCount++
	r.ideas[id] = idea

	return idea.PledgeSupportCount, nil
}

// UpdateStatus patches the idea's status unconditionally
func (r *InMemoryIdeaRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status IdeaStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idea, ok := r.ideas[id]
	if !ok {
		return ErrIdeaNotFound
	}

	idea.Status = status
	r.ideas[id] = idea

	return nil
}

func (r *InMemoryIdeaRepository) collectLocked(keep func(Idea) bool) []Idea {
	ideas := make([]Idea, 0, len(r.ideas))
	for _, idea := range r.ideas {
		if keep(idea) {
			ideas = append(ideas, idea)
		}
	}

	slices.SortFunc(ideas, func(a, b Idea) int {
		// Newest first; seq breaks created-at ties deterministically
		return cmp.Compare(r.seq[b.ID], r.seq[a.ID])
	})

	return ideas
}
