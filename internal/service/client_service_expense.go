package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/connectivity"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// syncEngine implements [ClientExpenseEngine]: local-first writes with
// best-effort remote propagation, plus the bidirectional reconciliation
// pass. One instance owns the local expense collection; all mutations and
// the reconciliation pass serialize through writeMu, so exactly one is in
// flight at a time.
type syncEngine struct {
	expenses   store.ExpenseRepository
	tombstones store.PendingDeleteRepository
	remote     adapter.RemoteCollection
	monitor    connectivity.Monitor
	validator  validators.Validator
	ids        *utils.UUIDGenerator

	// remoteDisabled is set when no connection string is configured:
	// write paths skip remote attempts entirely and Sync refuses to run.
	remoteDisabled bool

	// writeMu is the single-writer queue. Callers block FIFO behind it.
	writeMu sync.Mutex

	hub *statusHub

	// transition listener lifecycle
	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientExpenseEngine wires the sync engine. remoteDisabled selects
// local-only operation; the monitor is still consulted for the status
// stream but no remote call is ever attempted.
func NewClientExpenseEngine(
	expenses store.ExpenseRepository,
	tombstones store.PendingDeleteRepository,
	remote adapter.RemoteCollection,
	monitor connectivity.Monitor,
	remoteDisabled bool,
	log *logger.Logger,
) ClientExpenseEngine {
	return &syncEngine{
		expenses:       expenses,
		tombstones:     tombstones,
		remote:         remote,
		monitor:        monitor,
		validator:      validators.NewExpenseValidator(),
		ids:            utils.NewUUIDGenerator(),
		remoteDisabled: remoteDisabled,
		hub:            newStatusHub(log),
		logger:         log,
	}
}

// online reports whether a remote attempt is worth making right now.
func (s *syncEngine) online() bool {
	return !s.remoteDisabled && s.monitor.Online()
}

// Create implements [ClientExpenseService].
func (s *syncEngine) Create(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if expense.ID == "" {
		expense.ID = s.ids.Generate()
	}
	if err := s.validator.Validate(ctx, expense); err != nil {
		return models.Expense{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// a create on a tombstoned id is the newest local intent; the
	// pending delete no longer applies
	if err := s.tombstones.Remove(ctx, expense.ID); err != nil {
		return models.Expense{}, fmt.Errorf("clear tombstone for %s: %w", expense.ID, err)
	}

	expense = expense.WithSynced(false)
	var remoteErr error
	if s.online() {
		remoteErr = s.remote.Insert(ctx, expense.WithSynced(true).Document())
		if remoteErr == nil {
			expense = expense.WithSynced(true)
		} else {
			s.logger.Warn().Err(remoteErr).
				Str("func", "syncEngine.Create").
				Str("id", expense.ID).
				Msg("remote insert failed, keeping record pending")
		}
	}

	// the local write is the durability boundary and always happens last
	if err := s.expenses.Put(ctx, expense); err != nil {
		return models.Expense{}, fmt.Errorf("store expense %s: %w", expense.ID, err)
	}

	s.reportWrite(expense.Synced, remoteErr)
	return expense, nil
}

// Update implements [ClientExpenseService].
func (s *syncEngine) Update(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if err := s.validator.Validate(ctx, expense); err != nil {
		return models.Expense{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.tombstones.Remove(ctx, expense.ID); err != nil {
		return models.Expense{}, fmt.Errorf("clear tombstone for %s: %w", expense.ID, err)
	}

	expense = expense.WithSynced(false)
	var remoteErr error
	if s.online() {
		remoteErr = s.remote.UpdateByID(ctx, expense.ID, expense.WithSynced(true).Document())
		if remoteErr == nil {
			expense = expense.WithSynced(true)
		} else {
			s.logger.Warn().Err(remoteErr).
				Str("func", "syncEngine.Update").
				Str("id", expense.ID).
				Msg("remote update failed, keeping record pending")
		}
	}

	if err := s.expenses.Put(ctx, expense); err != nil {
		return models.Expense{}, fmt.Errorf("store expense %s: %w", expense.ID, err)
	}

	s.reportWrite(expense.Synced, remoteErr)
	return expense, nil
}

// Delete implements [ClientExpenseService]. A delete that could not reach
// the remote keeps the record locally with Synced=false and persists a
// tombstone; the next reconciliation pass replays it. Deleting an unknown
// id returns [store.ErrExpenseNotFound] and leaves no tombstone behind.
func (s *syncEngine) Delete(ctx context.Context, id string) error {
	if id == "" {
		return validators.ErrInvalidID
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	exists, err := s.expenses.Contains(ctx, id)
	if err != nil {
		return fmt.Errorf("look up expense %s: %w", id, err)
	}
	if !exists {
		return store.ErrExpenseNotFound
	}

	replayed := false
	var remoteErr error
	if s.online() {
		remoteErr = s.remote.RemoveByID(ctx, id)
		switch {
		case remoteErr == nil:
			replayed = true
		case errors.Is(remoteErr, adapter.ErrNotFound):
			// already gone remotely, nothing left to replay
			replayed = true
			remoteErr = nil
		default:
			s.logger.Warn().Err(remoteErr).
				Str("func", "syncEngine.Delete").
				Str("id", id).
				Msg("remote delete failed, keeping record and tombstone")
		}
	}

	if replayed {
		if err := s.expenses.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete expense %s: %w", id, err)
		}
		if err := s.tombstones.Remove(ctx, id); err != nil {
			return fmt.Errorf("clear tombstone for %s: %w", id, err)
		}
		s.hub.broadcast(models.SyncStatusSynced, nil)
		return nil
	}

	// offline delete behaves like a failed remote delete
	if err := s.expenses.MarkSynced(ctx, id, false); err != nil {
		return fmt.Errorf("flag expense %s for pending delete: %w", id, err)
	}
	if err := s.tombstones.Add(ctx, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("record tombstone for %s: %w", id, err)
	}

	s.hub.broadcast(models.SyncStatusPendingSync, remoteErr)
	return nil
}

// Get implements [ClientExpenseService]. Reads never touch the remote.
func (s *syncEngine) Get(ctx context.Context, id string) (models.Expense, error) {
	return s.expenses.Get(ctx, id)
}

// List implements [ClientExpenseService].
func (s *syncEngine) List(ctx context.Context) ([]models.Expense, error) {
	return s.expenses.GetAll(ctx)
}

// reportWrite broadcasts the propagation outcome of one completed write.
func (s *syncEngine) reportWrite(synced bool, cause error) {
	if synced {
		s.hub.broadcast(models.SyncStatusSynced, nil)
		return
	}
	s.hub.broadcast(models.SyncStatusPendingSync, cause)
}

// Subscribe implements [ClientSyncService].
func (s *syncEngine) Subscribe() (<-chan models.SyncStatusEvent, func()) {
	return s.hub.Subscribe()
}
