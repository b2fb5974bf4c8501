package server

import (
	"net"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// grpcServer carries only the standard gRPC health service. Deployments
// point their liveness probes at it; the database health worker drives the
// serving status.
type grpcServer struct {
	address string

	server *grpc.Server
	health *health.Server

	logger *logger.Logger
}

func newGRPCServer(cfg config.ServerNet, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	healthService := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthService)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  srv,
		health:  healthService,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v\n", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.health.Shutdown()
	g.server.GracefulStop()
}
