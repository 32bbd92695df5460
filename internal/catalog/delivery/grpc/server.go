package grpc

import (
	"context"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tair/catalog-service/pkg/logger"
)

// ServiceName is the health service name reported next to the overall status
const ServiceName = "catalog.CatalogService"

// DefaultCheckInterval is how often the database is probed
const DefaultCheckInterval = 10 * time.Second

// Pinger reports whether the backing store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server exposes the standard gRPC health service for orchestrators
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	pinger Pinger
}

// NewServer creates the gRPC server with tracing, logging and metrics
func NewServer(pinger Pinger, interceptors *Interceptors) *Server {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.Logging,
			interceptors.Metrics,
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Register reflection service (for grpcurl and grpc tools)
	reflection.Register(grpcServer)

	return &Server{grpc: grpcServer, health: healthServer, pinger: pinger}
}

// Check probes the store once and publishes the result
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.PingContext(ctx); err != nil {
		logger.Warn(ctx).Err(err).Msg("Health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Watch re-probes the store every interval until ctx is done
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.Check(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Serve accepts connections on lis until Stop is called
func (s *Server) Serve(lis net.Listener) error {
	logger.Logger.Info().
		Str("addr", lis.Addr().String()).
		Msg("gRPC server started")
	return s.grpc.Serve(lis)
}

// Stop marks the service as not serving and drains in-flight calls
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
