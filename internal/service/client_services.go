package service

import (
	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/connectivity"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
)

// ClientServices bundles every client-side service. Expense and Sync are
// two faces of the same engine instance, so CRUD calls and reconciliation
// passes share one single-writer queue.
type ClientServices struct {
	Expense ClientExpenseService
	Sync    ClientSyncService
	SyncJob ClientSyncJob
	Prefs   ClientPrefsService
}

// NewClientServices wires the engine against the local storages, the
// remote collection adapter, and the connectivity monitor. An empty remote
// URL selects disabled-remote mode.
func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteCollection,
	monitor connectivity.Monitor,
	cfg config.ClientRemote,
	log *logger.Logger,
) *ClientServices {
	engine := NewClientExpenseEngine(
		storages.Expense,
		storages.PendingDelete,
		remote,
		monitor,
		cfg.URL == "",
		log,
	)

	return &ClientServices{
		Expense: engine,
		Sync:    engine,
		SyncJob: NewClientSyncJob(engine),
		Prefs:   NewClientPrefsService(storages.Prefs, log),
	}
}
