package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// Sync implements [ClientSyncService]. The pass queues behind any write or
// other pass currently holding the single-writer lock.
func (s *syncEngine) Sync(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.reconcile(ctx)
}

// reconcile is the full bidirectional pass. Caller holds writeMu.
//
// Order matters: pending deletes replay first so that the remote import in
// the last step cannot resurrect a record deleted while offline.
func (s *syncEngine) reconcile(ctx context.Context) error {
	if s.remoteDisabled {
		s.hub.broadcast(models.SyncStatusError, ErrRemoteDisabled)
		return ErrRemoteDisabled
	}
	if !s.monitor.Online() {
		s.hub.broadcast(models.SyncStatusOffline, nil)
		return nil
	}

	s.hub.broadcast(models.SyncStatusSyncing, nil)

	var lastRecordErr error

	if err := s.replayDeletes(ctx, &lastRecordErr); err != nil {
		return s.abort(err)
	}
	if err := s.pushUnsynced(ctx, &lastRecordErr); err != nil {
		return s.abort(err)
	}
	if err := s.importRemote(ctx); err != nil {
		return s.abort(err)
	}

	if lastRecordErr != nil {
		// the pass completed but some records stayed pending; they are
		// retried on the next pass
		s.hub.broadcast(models.SyncStatusPendingSync, lastRecordErr)
		return nil
	}

	s.hub.broadcast(models.SyncStatusSynced, nil)
	return nil
}

// replayDeletes reissues every tombstoned delete against the remote.
// Per-record remote failures are recorded in lastRecordErr and the pass
// continues; local-store failures and context cancellation abort.
func (s *syncEngine) replayDeletes(ctx context.Context, lastRecordErr *error) error {
	stones, err := s.tombstones.List(ctx)
	if err != nil {
		return fmt.Errorf("list tombstones: %w", err)
	}

	for _, stone := range stones {
		if err := ctx.Err(); err != nil {
			return err
		}

		remoteErr := s.remote.RemoveByID(ctx, stone.ID)
		if remoteErr != nil && !errors.Is(remoteErr, adapter.ErrNotFound) {
			s.logger.Warn().Err(remoteErr).
				Str("func", "syncEngine.replayDeletes").
				Str("id", stone.ID).
				Msg("replaying delete failed, keeping tombstone")
			*lastRecordErr = remoteErr
			continue
		}

		if err := s.expenses.Delete(ctx, stone.ID); err != nil {
			return fmt.Errorf("delete expense %s after replay: %w", stone.ID, err)
		}
		if err := s.tombstones.Remove(ctx, stone.ID); err != nil {
			return fmt.Errorf("clear tombstone for %s: %w", stone.ID, err)
		}
	}

	return nil
}

// pushUnsynced uploads every record of the unsynced set: update when the id
// exists remotely, insert when it does not. Local state wins
// unconditionally; there is no timestamp comparison and no merge.
func (s *syncEngine) pushUnsynced(ctx context.Context, lastRecordErr *error) error {
	unsynced, err := s.expenses.GetUnsynced(ctx)
	if err != nil {
		return fmt.Errorf("load unsynced set: %w", err)
	}

	for _, expense := range unsynced {
		if err := ctx.Err(); err != nil {
			return err
		}

		// records awaiting a delete replay keep their tombstone and are
		// not pushed
		tombstoned, err := s.tombstones.Contains(ctx, expense.ID)
		if err != nil {
			return fmt.Errorf("check tombstone for %s: %w", expense.ID, err)
		}
		if tombstoned {
			continue
		}

		_, found, remoteErr := s.remote.FindByID(ctx, expense.ID)
		if remoteErr != nil {
			s.logRecordError("pushUnsynced", expense.ID, remoteErr, "remote lookup failed")
			*lastRecordErr = remoteErr
			continue
		}

		doc := expense.WithSynced(true).Document()
		if found {
			remoteErr = s.remote.UpdateByID(ctx, expense.ID, doc)
		} else {
			remoteErr = s.remote.Insert(ctx, doc)
		}
		if remoteErr != nil {
			s.logRecordError("pushUnsynced", expense.ID, remoteErr, "remote write failed")
			*lastRecordErr = remoteErr
			continue
		}

		if err := s.expenses.MarkSynced(ctx, expense.ID, true); err != nil {
			return fmt.Errorf("mark %s synced: %w", expense.ID, err)
		}
	}

	return nil
}

// importRemote fetches the whole remote collection and inserts every
// document whose id is absent locally and not tombstoned. Strictly
// additive: an existing local record is never overwritten in this
// direction.
func (s *syncEngine) importRemote(ctx context.Context) error {
	documents, err := s.remote.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch remote collection: %w", err)
	}

	for _, document := range documents {
		if err := ctx.Err(); err != nil {
			return err
		}

		exists, err := s.expenses.Contains(ctx, document.ID)
		if err != nil {
			return fmt.Errorf("check local presence of %s: %w", document.ID, err)
		}
		if exists {
			continue
		}

		tombstoned, err := s.tombstones.Contains(ctx, document.ID)
		if err != nil {
			return fmt.Errorf("check tombstone for %s: %w", document.ID, err)
		}
		if tombstoned {
			continue
		}

		expense, err := document.Expense()
		if err != nil {
			// a malformed remote document is skipped, not fatal
			s.logRecordError("importRemote", document.ID, err, "undecodable remote document skipped")
			continue
		}

		if err := s.expenses.Put(ctx, expense); err != nil {
			return fmt.Errorf("import remote document %s: %w", document.ID, err)
		}
	}

	return nil
}

func (s *syncEngine) logRecordError(funcName, id string, err error, msg string) {
	s.logger.Warn().Err(err).
		Str("func", "syncEngine."+funcName).
		Str("id", id).
		Msg(msg)
}

// abort reports a pass-level failure through the status stream and returns
// it. Flags keep whatever state they reached; partial progress is retained.
func (s *syncEngine) abort(err error) error {
	s.hub.broadcast(models.SyncStatusError, err)
	return err
}

// Start implements [ClientSyncService]: it launches the goroutine that
// turns offline→online transitions into exactly one reconciliation pass
// each, and online→offline transitions into an offline status event. A
// change carrying a check-run failure is surfaced as an error status event
// with its cause. Any previously running listener is stopped first.
func (s *syncEngine) Start(ctx context.Context) {
	s.Stop()

	s.jobMu.Lock()
	listenCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	changes, unsubscribe := s.monitor.Subscribe()
	s.wg.Add(1)
	s.jobMu.Unlock()

	go func() {
		defer s.wg.Done()
		defer unsubscribe()

		for {
			select {
			case <-listenCtx.Done():
				return
			case change, ok := <-changes:
				if !ok {
					return
				}
				if change.Err != nil {
					s.hub.broadcast(models.SyncStatusError, change.Err)
					continue
				}
				if change.Online {
					// Sync serializes through writeMu, so the
					// transition cannot race a manual pass
					_ = s.Sync(listenCtx)
				} else {
					s.hub.broadcast(models.SyncStatusOffline, nil)
				}
			}
		}
	}()
}

// Stop implements [ClientSyncService]. Safe to call when the listener is
// not running.
func (s *syncEngine) Stop() {
	s.jobMu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}
