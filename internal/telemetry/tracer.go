// Package telemetry sets up OpenTelemetry tracing and a trace-aware slog handler.
//
// Call SetupTracer once in main and defer the returned shutdown so buffered
// spans are flushed before the process exits.
package telemetry

import (
	"context"
	"fmt"

	"github.com/almasezhe/warauction/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type ShutdownFunc func(ctx context.Context) error

// SetupTracer registers the global TracerProvider and W3C propagators. With an
// empty exporter endpoint spans are still created, so log lines carry trace
// ids, but nothing is exported.
func SetupTracer(ctx context.Context, cfg config.Otel, env string) (ShutdownFunc, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			"",
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: failed to build resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplerRatio))),
	}

	if cfg.ExporterEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.ExporterEndpoint))
		if err != nil {
			return nil, fmt.Errorf("telemetry: failed to create OTLP trace exporter: %w", err)
		}

		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("telemetry: error shutting down TracerProvider: %w", err)
		}

		return nil
	}, nil
}
