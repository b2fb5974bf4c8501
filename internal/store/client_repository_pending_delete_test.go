package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingDeleteRepository_AddAndList(t *testing.T) {
	repo := NewPendingDeleteRepository(newLocalDB(t))
	ctx := testContext()

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	// insert newest first to prove ordering comes from the store
	require.NoError(t, repo.Add(ctx, "exp-2", second))
	require.NoError(t, repo.Add(ctx, "exp-1", first))

	tombstones, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tombstones, 2)

	assert.Equal(t, "exp-1", tombstones[0].ID)
	assert.Equal(t, first, tombstones[0].DeletedAt)
	assert.Equal(t, "exp-2", tombstones[1].ID)
	assert.Equal(t, second, tombstones[1].DeletedAt)
}

func TestPendingDeleteRepository_Add_KeepsOriginalDeletionTime(t *testing.T) {
	repo := NewPendingDeleteRepository(newLocalDB(t))
	ctx := testContext()

	original := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := original.Add(48 * time.Hour)

	require.NoError(t, repo.Add(ctx, "exp-1", original))
	require.NoError(t, repo.Add(ctx, "exp-1", later))

	tombstones, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tombstones, 1)
	assert.Equal(t, original, tombstones[0].DeletedAt)
}

func TestPendingDeleteRepository_Remove(t *testing.T) {
	repo := NewPendingDeleteRepository(newLocalDB(t))
	ctx := testContext()

	require.NoError(t, repo.Add(ctx, "exp-1", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Remove(ctx, "exp-1"))

	tombstones, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tombstones)

	// removing an absent tombstone stays silent
	require.NoError(t, repo.Remove(ctx, "exp-1"))
}

func TestPendingDeleteRepository_Contains(t *testing.T) {
	repo := NewPendingDeleteRepository(newLocalDB(t))
	ctx := testContext()

	exists, err := repo.Contains(ctx, "exp-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Add(ctx, "exp-1", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))

	exists, err = repo.Contains(ctx, "exp-1")
	require.NoError(t, err)
	assert.True(t, exists)
}
