package idea

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-ideas/pkg/role"
	"github.com/tendant/simple-ideas/pkg/user"
)

type fixture struct {
	service   *IdeaService
	ideas     *InMemoryIdeaRepository
	roles     *role.InMemoryUserRoleRepository
	directory *user.InMemoryUserDirectory
}

func newFixture() *fixture {
	ideas := NewInMemoryIdeaRepository()
	roles := role.NewInMemoryUserRoleRepository()
	directory := user.NewInMemoryUserDirectory()
	return &fixture{
		service:   NewIdeaService(ideas, role.NewRoleService(roles), directory),
		ideas:     ideas,
		roles:     roles,
		directory: directory,
	}
}

func TestSubmitIdea_InitialState(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userID := f.directory.SeedUser(user.User{Email: "alice@example.com"})

	ideaID, err := f.service.SubmitIdea(ctx, userID, SubmitIdeaParams{
		Title:       "Dark mode",
		Description: "Add a dark theme",
		Category:    "Web Development",
		Tags:        []string{"ui", "theme"},
	})
	require.NoError(t, err)

	idea, err := f.ideas.GetByID(ctx, ideaID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, idea.Status)
	assert.Equal(t, int32(0), idea.PledgeSupportCount)
	assert.Equal(t, userID, idea.SubmittedBy)
	assert.Equal(t, []string{"ui", "theme"}, idea.Tags)
}

func TestSubmitIdea_AcceptsEmptyFields(t *testing.T) {
	// Server-side field validation is deliberately absent; the client owns it.
	f := newFixture()
	ctx := context.Background()
	userID := f.directory.SeedUser(user.User{Email: "alice@example.com"})

	ideaID, err := f.service.SubmitIdea(ctx, userID, SubmitIdeaParams{})
	require.NoError(t, err)

	idea, err := f.ideas.GetByID(ctx, ideaID)
	require.NoError(t, err)
	assert.Empty(t, idea.Title)
	assert.Empty(t, idea.Description)
	assert.Equal(t, StatusPending, idea.Status)
}

func TestPledgeSupport_IncrementsByOne(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userID := f.directory.SeedUser(user.User{Email: "alice@example.com"})

	ideaID, err := f.service.SubmitIdea(ctx, userID, SubmitIdeaParams{Title: "Search"})
	require.NoError(t, err)

	for i := int32(1); i <= 5; i++ {
		count, err := f.service.PledgeSupport(ctx, ideaID)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	idea, err := f.ideas.GetByID(ctx, ideaID)
	require.NoError(t, err)
	assert.Equal(t, int32(5), idea.PledgeSupportCount)
}

func TestPledgeSupport_UnknownIdea(t *testing.T) {
	f := newFixture()

	_, err := f.service.PledgeSupport(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrIdeaNotFound)
}

func TestUpdateIdeaStatus_RequiresAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userID := f.directory.SeedUser(user.User{Email: "alice@example.com"})

	ideaID, err := f.service.SubmitIdea(ctx, userID, SubmitIdeaParams{Title: "Search"})
	require.NoError(t, err)

	_, err = f.service.UpdateIdeaStatus(ctx, userID, ideaID, StatusApproved)
	assert.ErrorIs(t, err, ErrForbidden)

	idea, err := f.ideas.GetByID(ctx, ideaID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, idea.Status)
}

func TestUpdateIdeaStatus_AnyTransitionAllowed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userID := f.directory.SeedUser(user.User{Email: "alice@example.com"})
	adminID := f.directory.SeedUser(user.User{Email: "admin@example.com"})
	f.roles.SeedRole(role.UserRole{UserID: adminID, Role: role.RoleAdmin})

	ideaID, err := f.service.SubmitIdea(ctx, userID, SubmitIdeaParams{Title: "Search"})
	require.NoError(t, err)

	// No transition graph: statuses may be set in any order, including
	// moving backwards.
	for _, status := range []IdeaStatus{StatusImplemented, StatusPending, StatusRejected, StatusUnderReview, StatusApproved} {
		got, err := f.service.UpdateIdeaStatus(ctx, adminID, ideaID, status)
		require.NoError(t, err)
		assert.Equal(t, status, got)

		idea, err := f.ideas.GetByID(ctx, ideaID)
		require.NoError(t, err)
		assert.Equal(t, status, idea.Status)
	}
}

func TestUpdateIdeaStatus_InvalidStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	adminID := f.directory.SeedUser(user.User{Email: "admin@example.com"})
	f.roles.SeedRole(role.UserRole{UserID: adminID, Role: role.RoleAdmin})

	_, err := f.service.UpdateIdeaStatus(ctx, adminID, uuid.New(), IdeaStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateIdeaStatus_UnknownIdea(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	adminID := f.directory.SeedUser(user.User{Email: "admin@example.com"})
	f.roles.SeedRole(role.UserRole{UserID: adminID, Role: role.RoleAdmin})

	_, err := f.service.UpdateIdeaStatus(ctx, adminID, uuid.New(), StatusApproved)
	assert.ErrorIs(t, err, ErrIdeaNotFound)
}

func TestListIdeas_FilterAndOrdering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userID := f.directory.SeedUser(user.User{Email: "alice@example.com"})
	adminID := f.directory.SeedUser(user.User{Email: "admin@example.com"})
	f.roles.SeedRole(role.UserRole{UserID: adminID, Role: role.RoleAdmin})

	first, err := f.service.SubmitIdea(ctx, userID, SubmitIdeaParams{Title: "first"})
	require.NoError(t, err)
	second, err := f.service.SubmitIdea(ctx, userID, SubmitIdeaParams{Title: "second"})
	require.NoError(t, err)
	third, err := f.service.SubmitIdea(ctx, userID, SubmitIdeaParams{Title: "third"})
	require.NoError(t, err)

	_, err = f.service.UpdateIdeaStatus(ctx, adminID, second, StatusApproved)
	require.NoError(t, err)

	all, err := f.service.ListIdeas(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Most recent first
	assert.Equal(t, third, all[0].ID)
	assert.Equal(t, second, all[1].ID)
	assert.Equal(t, first, all[2].ID)
	for _, i := range all {
		assert.Equal(t, "alice@example.com", i.SubmitterEmail)
	}

	approved := StatusApproved
	filtered, err := f.service.ListIdeas(ctx, &approved)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second, filtered[0].ID)

	pending := StatusPending
	filtered, err = f.service.ListIdeas(ctx, &pending)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, third, filtered[0].ID)
	assert.Equal(t, first, filtered[1].ID)
}

func TestListIdeas_MissingSubmitterShowsUnknown(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Submitter never registered in the directory
	_, err := f.service.SubmitIdea(ctx, uuid.New(), SubmitIdeaParams{Title: "orphan"})
	require.NoError(t, err)

	all, err := f.service.ListIdeas(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Unknown", all[0].SubmitterEmail)
}

func TestMyIdeas_OwnershipExactness(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.directory.SeedUser(user.User{Email: "alice@example.com"})
	bob := f.directory.SeedUser(user.User{Email: "bob@example.com"})

	aliceIdea, err := f.service.SubmitIdea(ctx, alice, SubmitIdeaParams{Title: "alice's"})
	require.NoError(t, err)
	_, err = f.service.SubmitIdea(ctx, bob, SubmitIdeaParams{Title: "bob's"})
	require.NoError(t, err)

	mine, err := f.service.MyIdeas(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, aliceIdea, mine[0].ID)

	none, err := f.service.MyIdeas(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestIdeaLifecycleScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	u1 := f.directory.SeedUser(user.User{Email: "u1@example.com"})
	f.directory.SeedUser(user.User{Email: "u2@example.com"})
	adminID := f.directory.SeedUser(user.User{Email: "admin@example.com"})
	f.roles.SeedRole(role.UserRole{UserID: adminID, Role: role.RoleAdmin})

	ideaID, err := f.service.SubmitIdea(ctx, u1, SubmitIdeaParams{
		Title:       "Dark mode",
		Description: "Add a dark theme",
		Category:    "Web Development",
		Tags:        []string{"ui", "theme"},
	})
	require.NoError(t, err)

	mine, err := f.service.MyIdeas(ctx, u1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, StatusPending, mine[0].Status)
	assert.Equal(t, int32(0), mine[0].PledgeSupportCount)

	// Any authenticated user may pledge, including non-owners
	count, err := f.service.PledgeSupport(ctx, ideaID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), count)

	status, err := f.service.UpdateIdeaStatus(ctx, adminID, ideaID, StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)

	approved := StatusApproved
	list, err := f.service.ListIdeas(ctx, &approved)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ideaID, list[0].ID)

	pending := StatusPending
	list, err = f.service.ListIdeas(ctx, &pending)
	require.NoError(t, err)
	assert.Empty(t, list)
}
