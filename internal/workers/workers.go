package workers

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"google.golang.org/grpc/health"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the server's background workers. The database
// health worker is added only when a gRPC health service is present to
// report into.
func NewWorkers(storages *store.Storages, healthService *health.Server, log *logger.Logger) *Workers {
	w := &Workers{}

	if healthService != nil {
		w.workers = append(w.workers, newDBHealthWorker(storages.DB(), healthService, 0, log))
	}

	return w
}

// Run launches every worker in its own goroutine. Workers exit when ctx is
// cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
