package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsRepository_SetAndGet(t *testing.T) {
	repo := NewPrefsRepository(newLocalDB(t))
	ctx := testContext()

	require.NoError(t, repo.Set(ctx, PrefClientID, "0195f3a0-0000-7000-8000-000000000001"))

	got, err := repo.Get(ctx, PrefClientID)
	require.NoError(t, err)
	assert.Equal(t, "0195f3a0-0000-7000-8000-000000000001", got)
}

func TestPrefsRepository_Set_OverwritesValue(t *testing.T) {
	repo := NewPrefsRepository(newLocalDB(t))
	ctx := testContext()

	require.NoError(t, repo.Set(ctx, PrefDarkMode, "false"))
	require.NoError(t, repo.Set(ctx, PrefDarkMode, "true"))

	got, err := repo.Get(ctx, PrefDarkMode)
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestPrefsRepository_Get_NotFound(t *testing.T) {
	repo := NewPrefsRepository(newLocalDB(t))

	_, err := repo.Get(testContext(), "never-set")
	require.ErrorIs(t, err, ErrPrefNotFound)
}
