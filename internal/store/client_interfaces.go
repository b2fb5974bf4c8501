package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ExpenseRepository is the client's local expense table. Every write the
// engine performs lands here first; the remote collection is updated after,
// and only on a best-effort basis.
type ExpenseRepository interface {
	// Put inserts the expense or fully replaces an existing row with the
	// same id, including its synced flag.
	Put(ctx context.Context, expense models.Expense) error

	// Get returns the expense with the given id, or [ErrExpenseNotFound].
	Get(ctx context.Context, id string) (models.Expense, error)

	// GetAll returns every stored expense, newest date first.
	GetAll(ctx context.Context) ([]models.Expense, error)

	// GetUnsynced returns the expenses whose last local state is not
	// confirmed stored remotely, newest date first.
	GetUnsynced(ctx context.Context) ([]models.Expense, error)

	// MarkSynced flips the synced flag of one row without touching the
	// rest of the record. Returns [ErrExpenseNotFound] when no row has
	// the id.
	MarkSynced(ctx context.Context, id string, synced bool) error

	// Delete removes the row. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error

	// Contains reports whether an expense with the id is stored locally.
	Contains(ctx context.Context, id string) (bool, error)
}

// PendingDeleteRepository holds tombstones for deletes that have not been
// replayed against the remote collection yet.
type PendingDeleteRepository interface {
	// Add records a tombstone. Adding an id that already has one keeps
	// the original deletion time.
	Add(ctx context.Context, id string, deletedAt time.Time) error

	// Remove drops the tombstone after the remote delete succeeded.
	Remove(ctx context.Context, id string) error

	// List returns all tombstones, oldest first.
	List(ctx context.Context) ([]models.PendingDelete, error)

	// Contains reports whether the id has a tombstone. Reconciliation
	// uses this to keep imported documents from resurrecting records
	// deleted while offline.
	Contains(ctx context.Context, id string) (bool, error)
}

// PrefsRepository is a small key-value table for client-side settings that
// must survive restarts, such as the generated client identity.
type PrefsRepository interface {
	Set(ctx context.Context, key string, value string) error

	// Get returns the stored value, or [ErrPrefNotFound].
	Get(ctx context.Context, key string) (string, error)
}
