package models

import "time"

// PendingDelete is a tombstone for a delete that has not reached the remote
// collection yet. The record itself may already be gone locally; the
// tombstone survives restarts so the next reconciliation pass can replay
// the delete against the remote.
type PendingDelete struct {
	// ID is the expense id the delete targets.
	ID string `json:"id"`

	// DeletedAt is when the local delete was requested.
	DeletedAt time.Time `json:"deleted_at"`
}
