package server

import "google.golang.org/grpc/health"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// Health exposes the gRPC health service so background workers can set
	// the serving status. Returns nil when the gRPC listener is disabled.
	Health() *health.Server
}
