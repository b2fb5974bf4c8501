package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectSQLite_CreatesFileWithParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "expenses.db")

	db, err := NewConnectSQLite(context.Background(), config.ClientLocal{Path: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestNewConnectSQLite_SchemaIsCreated(t *testing.T) {
	db := newLocalDB(t)

	rows, err := db.QueryContext(context.Background(),
		`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())

	assert.Contains(t, tables, "expenses")
	assert.Contains(t, tables, "pending_deletes")
	assert.Contains(t, tables, "prefs")
}

func TestNewConnectSQLite_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.db")
	cfg := config.ClientLocal{Path: path}

	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	repo := NewExpenseRepository(db)
	expense := makeExpense("exp-1", time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC), false)
	require.NoError(t, repo.Put(testContext(), expense))
	require.NoError(t, db.Close())

	// second open must keep existing data and not recreate the schema
	db, err = NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	got, err := NewExpenseRepository(db).Get(testContext(), "exp-1")
	require.NoError(t, err)
	assert.Equal(t, expense, got)
}
