// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	mu       sync.Mutex
	runCount int
	started  chan struct{}
}

func newMockWorker() *mockWorker {
	return &mockWorker{started: make(chan struct{})}
}

func (m *mockWorker) Run(_ context.Context) {
	m.mu.Lock()
	m.runCount++
	m.mu.Unlock()
	close(m.started)
}

func (m *mockWorker) runs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCount
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := newMockWorker()
	w2 := newMockWorker()
	w3 := newMockWorker()

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatalf("worker[%d]: Run was never called", i)
		}
		assert.Equal(t, 1, w.runs(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestNewWorkers_NoHealthService(t *testing.T) {
	ws := NewWorkers(&store.Storages{}, nil, logger.Nop())

	assert.Empty(t, ws.workers)
}

// ── database health worker ──────────────────────────────────────────────────

func newTestDB(t *testing.T) *store.DB {
	t.Helper()

	cfg := config.ClientLocal{Path: filepath.Join(t.TempDir(), "health.db")}
	db, err := store.NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestDBHealthWorker_ReportsServing(t *testing.T) {
	db := newTestDB(t)
	healthService := health.NewServer()
	healthService.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	worker := newDBHealthWorker(db, healthService, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	require.Eventually(t, func() bool {
		resp, err := healthService.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)
}

func TestDBHealthWorker_ReportsNotServingOnClosedDB(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Close())

	healthService := health.NewServer()
	worker := newDBHealthWorker(db, healthService, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	require.Eventually(t, func() bool {
		resp, err := healthService.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 10*time.Millisecond)
}

func TestDBHealthWorker_StopsOnContextCancel(t *testing.T) {
	db := newTestDB(t)
	worker := newDBHealthWorker(db, health.NewServer(), 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
