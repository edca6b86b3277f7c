package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// setupTelemetry installs tracer and meter providers for the given exporter
// and returns a shutdown function that flushes both.
func setupTelemetry(ctx context.Context, exporter string) (func() error, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("taemno"),
		semconv.ServiceVersion(version),
	))
	if err != nil {
		return nil, err
	}

	spans, reader, err := newExporters(ctx, exporter)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spans),
		sdktrace.WithResource(res),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return func() error {
		ctx := context.Background()
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

// newExporters creates the span exporter and metrics reader for name.
// Supported exporters: stdout, otlp. Telemetry goes to stderr so it never
// mixes with resolved environment output on stdout.
func newExporters(ctx context.Context, name string) (sdktrace.SpanExporter, sdkmetric.Reader, error) {
	switch name {
	case "stdout":
		spans, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
		if err != nil {
			return nil, nil, err
		}
		metrics, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stderr))
		if err != nil {
			return nil, nil, err
		}
		return spans, sdkmetric.NewPeriodicReader(metrics), nil

	case "otlp":
		if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
			return nil, nil, fmt.Errorf("OTLP endpoint not configured: set OTEL_EXPORTER_OTLP_ENDPOINT")
		}
		spans, err := otlptracegrpc.New(ctx)
		if err != nil {
			return nil, nil, err
		}
		metrics, err := otlpmetricgrpc.New(ctx)
		if err != nil {
			return nil, nil, err
		}
		return spans, sdkmetric.NewPeriodicReader(metrics), nil

	default:
		return nil, nil, fmt.Errorf("unknown telemetry exporter: %q", name)
	}
}
