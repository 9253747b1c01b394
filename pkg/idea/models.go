package idea

import (
	"time"

	"github.com/google/uuid"
)

// IdeaStatus is the lifecycle state of an idea. Transitions are
// unrestricted: an admin may set any status from any status.
type IdeaStatus string

const (
	StatusPending     IdeaStatus = "pending"
	StatusUnderReview IdeaStatus = "under_review"
	StatusApproved    IdeaStatus = "approved"
	StatusRejected    IdeaStatus = "rejected"
	StatusImplemented IdeaStatus = "implemented"
)

// Valid reports whether the status is one of the known values.
func (s IdeaStatus) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusImplemented:
		return true
	}
	return false
}

// Idea is a submitted proposal. Title, description, category and tags are
// immutable after creation; only the status (admin) and the support counter
// (any authenticated user) change afterwards.
type Idea struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	Tags               []string   `json:"tags"`
	SubmittedBy        uuid.UUID  `json:"submitted_by"`
	PledgeSupportCount int32      `json:"pledge_support_count"`
	Status             IdeaStatus `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
}

// IdeaWithSubmitter is the public listing view: the idea plus the
// submitter's email resolved from the user directory.
type IdeaWithSubmitter struct {
	Idea
	SubmitterEmail string `json:"submitter_email"`
}

// SubmitIdeaParams contains the author-supplied fields of a new idea.
type SubmitIdeaParams struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}
