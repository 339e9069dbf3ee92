package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewProgressRepository(openTestDB(t))

	done, err := repo.IsCompleted(ctx, "welcome")
	require.NoError(t, err)
	require.False(t, done)

	require.NoError(t, repo.RecordRun(ctx, "welcome"))
	require.NoError(t, repo.RecordRun(ctx, "welcome"))

	progress, err := repo.Get(ctx, "welcome")
	require.NoError(t, err)
	require.Equal(t, 2, progress.Runs)
	require.False(t, progress.Completed())

	require.NoError(t, repo.MarkCompleted(ctx, "welcome"))
	done, err = repo.IsCompleted(ctx, "welcome")
	require.NoError(t, err)
	require.True(t, done)

	progress, err = repo.Get(ctx, "welcome")
	require.NoError(t, err)
	require.Equal(t, 2, progress.Runs)
}

func TestProgressRepositoryListAndReset(t *testing.T) {
	ctx := context.Background()
	repo := NewProgressRepository(openTestDB(t))

	require.NoError(t, repo.RecordRun(ctx, "b"))
	require.NoError(t, repo.RecordRun(ctx, "a"))
	require.NoError(t, repo.MarkCompleted(ctx, "c"))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "a", all[0].Tour)
	require.True(t, all[2].Completed())

	count, err := repo.Reset(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	_, err = repo.Get(ctx, "a")
	require.ErrorIs(t, err, ErrProgressNotFound)

	count, err = repo.Reset(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestProgressRepositoryRequiresName(t *testing.T) {
	repo := NewProgressRepository(openTestDB(t))

	require.Error(t, repo.RecordRun(context.Background(), " "))
	require.Error(t, repo.MarkCompleted(context.Background(), ""))
}
