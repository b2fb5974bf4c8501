package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientExpenseService is the client-facing CRUD surface of the sync
// engine. Every mutating call is durable locally before it returns;
// propagation to the remote collection is best effort and its outcome is
// reported through the sync status stream, never through the returned
// error.
type ClientExpenseService interface {
	// Create validates the expense, assigns it an id when it has none,
	// attempts the remote insert when online, and stores the record
	// locally. The returned expense carries the final sync flag.
	Create(ctx context.Context, expense models.Expense) (models.Expense, error)

	// Update validates the expense and replaces the stored record,
	// attempting the remote update when online.
	Update(ctx context.Context, expense models.Expense) (models.Expense, error)

	// Delete removes the expense. When the remote delete cannot be
	// performed the record is kept locally with Synced=false and a
	// tombstone is persisted so the next reconciliation pass replays the
	// delete. An unknown id yields [store.ErrExpenseNotFound].
	Delete(ctx context.Context, id string) error

	// Get returns one locally stored expense.
	Get(ctx context.Context, id string) (models.Expense, error)

	// List returns every locally stored expense, newest date first.
	List(ctx context.Context) ([]models.Expense, error)
}

// ClientSyncService is the reconciliation surface of the sync engine.
type ClientSyncService interface {
	// Sync runs one full bidirectional reconciliation pass: replay
	// pending deletes, push the unsynced set, import remote-only
	// documents. Concurrent calls queue behind the single-writer lock.
	// Offline it is a no-op reporting the offline status; with the
	// remote disabled it returns [ErrRemoteDisabled].
	Sync(ctx context.Context) error

	// Subscribe registers a sync status listener. The stream is
	// replay-none; the cancel function closes the channel.
	Subscribe() (<-chan models.SyncStatusEvent, func())

	// Start launches the connectivity transition listener that triggers
	// one reconciliation per offline→online transition.
	Start(ctx context.Context)

	// Stop terminates the transition listener and blocks until it has
	// exited.
	Stop()
}

// ClientExpenseEngine is the full engine contract: both faces are
// implemented by the same instance so that writes and reconciliation share
// one single-writer queue.
type ClientExpenseEngine interface {
	ClientExpenseService
	ClientSyncService
}

// ClientSyncJob is a background worker that periodically triggers a
// reconciliation pass, complementing the transition-triggered sync.
type ClientSyncJob interface {
	// Start launches the background goroutine syncing every interval
	// (default 5 minutes when zero or negative). A previously running
	// job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has
	// terminated.
	Stop()
}

// ClientPrefsService manages client-side settings persisted in the prefs
// collection.
type ClientPrefsService interface {
	// ClientID returns the stable identifier of this client install,
	// generating and persisting one on first use.
	ClientID(ctx context.Context) (string, error)

	// DarkMode reports whether the dark UI palette is selected. Absent
	// preference means light mode.
	DarkMode(ctx context.Context) (bool, error)

	// SetDarkMode persists the palette selection.
	SetDarkMode(ctx context.Context, enabled bool) error
}
