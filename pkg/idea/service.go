package idea

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
	// ErrForbidden means the caller is authenticated but lacks the admin role.
	ErrForbidden = errors.New("admin access required")

	// ErrInvalidStatus means the requested status is not a known value.
	ErrInvalidStatus = errors.New("invalid idea status")
)

// unknownSubmitter is shown when a submitter's user record is missing from
// the directory.
const unknownSubmitter = "Unknown"

// IdeaService provides idea submission, listing, pledging and status
// management. Authentication is enforced at the HTTP layer; methods that
// take a caller id trust it to be an authenticated identity.
type IdeaService struct {
	repo  IdeaRepository
	roles *role.RoleService
	users user.UserDirectory
}

func NewIdeaService(repo IdeaRepository, roles *role.RoleService, users user.UserDirectory) *IdeaService {
	return &IdeaService{
		repo:  repo,
		roles: roles,
		users: users,
	}
}

// ListIdeas returns ideas newest first, each annotated with the submitter's
// email. A nil status means no filter. Available to anonymous callers.
func (s *IdeaService) ListIdeas(ctx context.Context, status *IdeaStatus) ([]IdeaWithSubmitter, error) {
	var (
		ideas []Idea
		err   error
	)

	if status != nil {
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		ideas, err = s.repo.ListByStatus(ctx, *status)
	} else {
		ideas, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]IdeaWithSubmitter, 0, len(ideas))
	for _, i := range ideas {
		email := unknownSubmitter
		u, err := s.users.GetByID(ctx, i.SubmittedBy)
		if err == nil {
			email = u.Email
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to resolve submitter: %w", err)
		}
		result = append(result, IdeaWithSubmitter{Idea: i, SubmitterEmail: email})
	}

	return result, nil
}

// MyIdeas returns the caller's own ideas, newest first.
func (s *IdeaService) MyIdeas(ctx context.Context, userID uuid.UUID) ([]Idea, error) {
	return s.repo.ListBySubmitter(ctx, userID)
}

// SubmitIdea inserts a new idea owned by the caller with status pending and
// a zero support count. Field contents are accepted as-is; validation is a
// client concern.
func (s *IdeaService) SubmitIdea(ctx context.Context, userID uuid.UUID, params SubmitIdeaParams) (uuid.UUID, error) {
	idea, err := s.repo.Create(ctx, CreateIdeaParams{
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Tags:        params.Tags,
		SubmittedBy: userID,
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("Idea submitted", "ideaId", idea.ID, "userId", userID, "category", idea.Category)

	return idea.ID, nil
}

// PledgeSupport increments the idea's support count by exactly 1 and
// returns the new value. Repeat pledges by the same user are allowed; there
// is no per-user pledge record.
func (s *IdeaService) PledgeSupport(ctx context.Context, ideaID uuid.UUID) (int32, error) {
	return s.repo.IncrementPledgeSupport(ctx, ideaID)
}

// UpdateIdeaStatus patches the idea's status and returns the new value.
// Requires the admin role; any status may be set from any prior status.
func (s *IdeaService) UpdateIdeaStatus(ctx context.Context, callerID, ideaID uuid.UUID, status IdeaStatus) (IdeaStatus, error) {
	if !status.Valid() {
		return "", ErrInvalidStatus
	}

	isAdmin, err := s.roles.IsAdmin(ctx, callerID)
	if err != nil {
		return "", err
	}
	if !isAdmin {
		return "", ErrForbidden
	}

	if err := s.repo.UpdateStatus(ctx, ideaID, status); err != nil {
		return "", err
	}

	slog.Info("Idea status updated", "ideaId", ideaID, "status", status, "adminId", callerID)

	return status, nil
}
