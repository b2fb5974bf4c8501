package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// dbHealthWorker pings the database on a ticker and mirrors the result
// into the gRPC health service, so orchestrator probes see a database
// outage as NOT_SERVING without the HTTP API having to fail first.
type dbHealthWorker struct {
	db       *store.DB
	health   *health.Server
	interval time.Duration

	logger *logger.Logger
}

func newDBHealthWorker(db *store.DB, healthService *health.Server, interval time.Duration, log *logger.Logger) *dbHealthWorker {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &dbHealthWorker{
		db:       db,
		health:   healthService,
		interval: interval,
		logger:   log,
	}
}

// Run implements [Worker]. It blocks until ctx is cancelled.
func (w *dbHealthWorker) Run(ctx context.Context) {
	w.probe(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.probe(ctx)
		}
	}
}

func (w *dbHealthWorker) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := w.db.PingContext(pingCtx); err != nil {
		w.logger.Warn().Err(err).
			Str("func", "dbHealthWorker.probe").
			Bool("retryable", w.db.Classify(err) == store.Retryable).
			Msg("database ping failed")
		w.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}

	w.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}
