package grpc

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	oteltrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/tair/catalog-service/pkg/logger"
)

// Interceptors carries the gRPC Prometheus metrics
type Interceptors struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestSummary  *prometheus.SummaryVec
	errorsTotal     *prometheus.CounterVec
}

// NewInterceptors registers the gRPC metrics on reg
func NewInterceptors(reg prometheus.Registerer) *Interceptors {
	i := &Interceptors{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_service_grpc_requests_total",
				Help: "Total number of gRPC requests",
			},
			[]string{"method", "status_code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_service_grpc_request_duration_seconds",
				Help:    "Duration of gRPC requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		requestSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "catalog_service_grpc_request_duration_summary",
				Help: "Summary of gRPC request durations with percentiles",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_service_grpc_errors_total",
				Help: "Total number of gRPC errors",
			},
			[]string{"method", "error_code"},
		),
	}
	reg.MustRegister(i.requestsTotal, i.requestDuration, i.requestSummary, i.errorsTotal)
	return i
}

// Metrics collects Prometheus metrics for unary calls
func (i *Interceptors) Metrics(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	duration := time.Since(start).Seconds()

	statusCode := status.Code(err).String()
	if err != nil {
		i.errorsTotal.WithLabelValues(info.FullMethod, statusCode).Inc()
	}

	i.requestsTotal.WithLabelValues(info.FullMethod, statusCode).Inc()
	i.requestDuration.WithLabelValues(info.FullMethod).Observe(duration)
	i.requestSummary.WithLabelValues(info.FullMethod).Observe(duration)

	return resp, err
}

// Logging logs unary calls with structured logging
func (i *Interceptors) Logging(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()

	traceID := "no-trace"
	if span := oteltrace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		traceID = span.SpanContext().TraceID().String()
	}

	resp, err := handler(ctx, req)
	duration := time.Since(start)

	if err != nil {
		logger.Error(ctx).
			Str("method", info.FullMethod).
			Str("protocol", "grpc").
			Dur("duration", duration).
			Int64("duration_ms", duration.Milliseconds()).
			Str("trace_id", traceID).
			Str("grpc_status", status.Code(err).String()).
			Err(err).
			Msg("gRPC request failed")
	} else {
		logger.Debug(ctx).
			Str("method", info.FullMethod).
			Str("protocol", "grpc").
			Dur("duration", duration).
			Int64("duration_ms", duration.Milliseconds()).
			Str("trace_id", traceID).
			Msg("gRPC request completed")
	}

	return resp, err
}
