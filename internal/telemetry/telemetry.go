package telemetry

import (
	"context"
	"ctchen222/tictactoe/internal/config"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const serviceVersion = "v0.2.0"

// ErrUnknownExporter is returned for an exporter name Init does not support.
var ErrUnknownExporter = errors.New("unknown exporter")

var (
	metricsHandler   http.Handler
	metricsHandlerMu sync.RWMutex
)

// MetricsHandler returns the Prometheus scrape handler, or nil unless the
// prometheus metric exporter was selected.
func MetricsHandler() http.Handler {
	metricsHandlerMu.RLock()
	defer metricsHandlerMu.RUnlock()
	return metricsHandler
}

// Init installs the global tracer, meter and logger providers chosen by cfg.
// Signals set to "none" keep the no-op global providers. The returned shutdown
// flushes every provider that was started and closes the OTLP connection.
func Init(ctx context.Context, cfg config.Telemetry) (func(context.Context) error, error) {
	var shutdownFuncs []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var errs []error
		for i := len(shutdownFuncs) - 1; i >= 0; i-- {
			errs = append(errs, shutdownFuncs[i](ctx))
		}
		return errors.Join(errs...)
	}

	// fail releases whatever was already started before reporting err.
	fail := func(err error) (func(context.Context) error, error) {
		return nil, errors.Join(err, shutdown(context.Background()))
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	// OTLP exporters share one gRPC client connection.
	var conn *grpc.ClientConn
	if cfg.UsesOTLP() {
		conn, err = grpc.NewClient(cfg.OTLPEndpoint,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create gRPC connection to OTLP collector: %w", err)
		}
		shutdownFuncs = append(shutdownFuncs, func(context.Context) error {
			if err := conn.Close(); err != nil {
				return fmt.Errorf("failed to close gRPC connection: %w", err)
			}
			return nil
		})
	}

	// --- Traces ---
	if cfg.Traces != "none" {
		tp, err := newTracerProvider(ctx, cfg.Traces, conn, res)
		if err != nil {
			return fail(err)
		}
		otel.SetTracerProvider(tp)
		shutdownFuncs = append(shutdownFuncs, tp.Shutdown)
	}

	// --- Metrics ---
	if cfg.Metrics != "none" {
		mp, err := newMeterProvider(ctx, cfg.Metrics, conn, res)
		if err != nil {
			return fail(err)
		}
		otel.SetMeterProvider(mp)
		shutdownFuncs = append(shutdownFuncs, mp.Shutdown)
	}

	// --- Logs ---
	if cfg.Logs != "none" {
		lp, err := newLoggerProvider(ctx, cfg.Logs, conn, res)
		if err != nil {
			return fail(err)
		}
		global.SetLoggerProvider(lp)
		shutdownFuncs = append(shutdownFuncs, lp.Shutdown)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return shutdown, nil
}

func newTracerProvider(ctx context.Context, exporter string, conn *grpc.ClientConn, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	var (
		exp sdktrace.SpanExporter
		err error
	)

	switch exporter {
	case "stdout":
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "otlp":
		exp, err = otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	default:
		return nil, fmt.Errorf("%w: traces %q", ErrUnknownExporter, exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s trace exporter: %w", exporter, err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	), nil
}

func newMeterProvider(ctx context.Context, exporter string, conn *grpc.ClientConn, res *resource.Resource) (*metric.MeterProvider, error) {
	var reader metric.Reader

	switch exporter {
	case "stdout":
		exp, err := stdoutmetric.New(stdoutmetric.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout metric exporter: %w", err)
		}
		reader = metric.NewPeriodicReader(exp)
	case "otlp":
		exp, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
		}
		reader = metric.NewPeriodicReader(exp)
	case "prometheus":
		registry := prometheus.NewRegistry()
		exp, err := promexporter.New(promexporter.WithRegisterer(registry))
		if err != nil {
			return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
		}
		metricsHandlerMu.Lock()
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
		metricsHandlerMu.Unlock()
		reader = exp
	default:
		return nil, fmt.Errorf("%w: metrics %q", ErrUnknownExporter, exporter)
	}

	return metric.NewMeterProvider(
		metric.WithReader(reader),
		metric.WithResource(res),
	), nil
}

func newLoggerProvider(ctx context.Context, exporter string, conn *grpc.ClientConn, res *resource.Resource) (*sdklog.LoggerProvider, error) {
	if exporter != "otlp" {
		return nil, fmt.Errorf("%w: logs %q", ErrUnknownExporter, exporter)
	}

	exp, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exp)),
		sdklog.WithResource(res),
	), nil
}
