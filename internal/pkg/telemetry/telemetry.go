// Package telemetry sets up OpenTelemetry request tracing.
//
// Tracing is opt-in. When disabled, Setup registers nothing and returns a no-op shutdown.
package telemetry

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans
type ShutdownFunc func(context.Context) error

// Setup registers a global tracer provider exporting to stdout
func Setup(ctx context.Context, settings *config.TelemetrySettings) (ShutdownFunc, error) {
	return SetupWithWriter(ctx, settings, os.Stdout)
}

// SetupWithWriter is Setup with the span destination chosen by the caller
func SetupWithWriter(ctx context.Context, settings *config.TelemetrySettings, w io.Writer) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	if settings == nil || !settings.TracingEnabled {
		return noop, nil
	}
	if settings.ServiceName == "" {
		return noop, errors.New("telemetry service name is required when tracing is enabled")
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(settings.ServiceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}
