// Package telemetry sets up OpenTelemetry tracing for menucontainer. Drawer
// spans are always kept in an in-memory Recorder; they are also exported over
// OTLP/HTTP when an endpoint is configured.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used for drawer spans.
const TracerName = "menucontainer/drawer"

// recentSpans is how many completed spans the Recorder keeps.
const recentSpans = 8

// Provider owns the tracer provider drawer spans are recorded with.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	recorder *Recorder
	enabled  bool
}

// New creates a provider. A non-empty endpoint adds an OTLP/HTTP exporter.
func New(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return newWithExporter(nil, serviceName), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collectors only
	)
	if err != nil {
		return nil, err
	}
	return newWithExporter(exporter, serviceName), nil
}

func newWithExporter(exporter sdktrace.SpanExporter, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = "menucontainer"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	rec := NewRecorder(recentSpans)
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(rec),
		sdktrace.WithResource(res),
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}
	provider := sdktrace.NewTracerProvider(opts...)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(TracerName),
		recorder: rec,
		enabled:  exporter != nil,
	}
}

// Tracer returns the tracer drawer spans are recorded with.
func (p *Provider) Tracer() oteltrace.Tracer {
	return p.tracer
}

// Recorder returns the in-memory span recorder.
func (p *Provider) Recorder() *Recorder {
	return p.recorder
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.enabled
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.provider.Shutdown(ctx)
}
