// Package otel wires OpenTelemetry tracing for launchboard commands.
package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	envEndpoint = "LAUNCHBOARD_OTEL_ENDPOINT"
	envEnabled  = "LAUNCHBOARD_OTEL_ENABLED"
)

// InstrumentationName scopes every tracer created through Tracer.
const InstrumentationName = "github.com/louisbranch/launchboard"

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when LAUNCHBOARD_OTEL_ENDPOINT is empty or
// LAUNCHBOARD_OTEL_ENABLED is "false", Setup returns a no-op shutdown
// function and the global provider stays the SDK default no-op.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(strings.TrimSpace(os.Getenv(envEnabled)), "false") {
		return noop, nil
	}
	endpoint := strings.TrimSpace(os.Getenv(envEndpoint))
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, err
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a tracer from the global provider for one component.
func Tracer(component string) trace.Tracer {
	component = strings.TrimSpace(component)
	if component == "" {
		return otel.Tracer(InstrumentationName)
	}
	return otel.Tracer(InstrumentationName + "/" + component)
}
