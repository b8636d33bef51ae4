package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"personal-site/internal/domain"
)

func TestCommentService_AppendRequiresIdentity(t *testing.T) {
	_, comments := newServices(t)
	ctx := context.Background()

	_, err := comments.Append(ctx, "hello", domain.Anonymous)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = comments.Append(ctx, "hello", nil)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	got, err := comments.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCommentService_AppendAttributesCommenter(t *testing.T) {
	users, comments := newServices(t)
	ctx := context.Background()

	user, err := users.Provision(ctx, "alice", "pw")
	require.NoError(t, err)

	posted, err := comments.Append(ctx, "hello", domain.IdentityFor(user))
	require.NoError(t, err)
	require.NotNil(t, posted.CommenterID)
	require.Equal(t, user.ID, *posted.CommenterID)
	require.False(t, posted.Posted.IsZero())

	got, err := comments.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "hello", got[0].Content)
	require.Equal(t, "alice", got[0].Commenter)
}

func TestCommentService_ListNewestFirst(t *testing.T) {
	users, comments := newServices(t)
	ctx := context.Background()

	user, err := users.Provision(ctx, "alice", "pw")
	require.NoError(t, err)

	id := domain.IdentityFor(user)
	for _, content := range []string{"one", "two", "three"} {
		_, err := comments.Append(ctx, content, id)
		require.NoError(t, err)
	}

	got, err := comments.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "three", got[0].Content)
	require.Equal(t, "two", got[1].Content)
	require.Equal(t, "one", got[2].Content)
	for i := 1; i < len(got); i++ {
		require.False(t, got[i-1].Posted.Before(got[i].Posted))
	}
}
