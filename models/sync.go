package models

import "time"

// SyncStatus is the process-wide derived synchronization state. It is not
// persisted; it is broadcast to observers whenever connectivity or a sync
// operation changes it.
type SyncStatus string

const (
	// SyncStatusSynced means the last write or reconciliation pass
	// confirmed the local and remote stores mirror each other.
	SyncStatusSynced SyncStatus = "synced"

	// SyncStatusSyncing means a reconciliation pass is in flight.
	SyncStatusSyncing SyncStatus = "syncing"

	// SyncStatusPendingSync means a local write could not be propagated
	// and waits for the next reconciliation.
	SyncStatusPendingSync SyncStatus = "pending-sync"

	// SyncStatusOffline means the remote store is unreachable.
	SyncStatusOffline SyncStatus = "offline"

	// SyncStatusError means a sync operation or the connectivity check
	// itself failed; the event carries the cause.
	SyncStatusError SyncStatus = "error"
)

// SyncStatusEvent is one broadcast element of the sync status stream.
// Err is nil except for error events and for pending-sync events caused by
// a swallowed remote failure.
type SyncStatusEvent struct {
	Status SyncStatus
	Err    error
	At     time.Time
}
