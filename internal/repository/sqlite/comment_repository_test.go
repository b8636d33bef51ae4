package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"personal-site/internal/domain"
	"personal-site/internal/repository"
)

func openTestDB(t *testing.T) (*UserRepository, *CommentRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "site.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := NewUserRepository(db).(*UserRepository)
	comments := NewCommentRepository(db).(*CommentRepository)

	ctx := context.Background()
	require.NoError(t, users.Init(ctx))
	require.NoError(t, comments.Init(ctx))
	return users, comments
}

func TestCommentRepository_CreateAndList(t *testing.T) {
	users, comments := openTestDB(t)
	ctx := context.Background()

	userID, err := users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		_, err := comments.Create(ctx, &domain.Comment{
			Content:     content,
			Posted:      base.Add(time.Duration(i) * time.Minute),
			CommenterID: &userID,
		})
		require.NoError(t, err)
	}

	got, err := comments.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, "third", got[0].Content)
	require.Equal(t, "second", got[1].Content)
	require.Equal(t, "first", got[2].Content)
	for _, c := range got {
		require.Equal(t, "alice", c.Commenter)
		require.NotNil(t, c.CommenterID)
		require.Equal(t, userID, *c.CommenterID)
	}
	require.False(t, got[0].Posted.Before(got[1].Posted))
	require.False(t, got[1].Posted.Before(got[2].Posted))
}

func TestCommentRepository_EqualTimestampsNewestFirst(t *testing.T) {
	_, comments := openTestDB(t)
	ctx := context.Background()

	posted := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, content := range []string{"one", "two", "three"} {
		_, err := comments.Create(ctx, &domain.Comment{Content: content, Posted: posted})
		require.NoError(t, err)
	}

	got, err := comments.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "three", got[0].Content)
	require.Equal(t, "one", got[2].Content)
}

func TestCommentRepository_NullCommenter(t *testing.T) {
	_, comments := openTestDB(t)
	ctx := context.Background()

	_, err := comments.Create(ctx, &domain.Comment{
		Content: "drive-by",
		Posted:  time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := comments.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Nil(t, got[0].CommenterID)
	require.Equal(t, "", got[0].Commenter)
}

func TestCommentRepository_ContentBound(t *testing.T) {
	_, comments := openTestDB(t)
	ctx := context.Background()

	long := strings.Repeat("a", domain.MaxCommentLength+100)
	comment := &domain.Comment{Content: long, Posted: time.Now().UTC()}
	_, err := comments.Create(ctx, comment)
	require.NoError(t, err)

	got, err := comments.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, []rune(got[0].Content), domain.MaxCommentLength)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	users, _ := openTestDB(t)
	ctx := context.Background()

	_, err := users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	user, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "hash", user.PasswordHash)

	_, err = users.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	users, _ := openTestDB(t)
	ctx := context.Background()

	_, err := users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h2"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}
