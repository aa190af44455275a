// Package telemetry configures OpenTelemetry tracing for the anagram binaries.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type TracerOption func(t *tracerConfig)

func WithOTLPEndpoint(endpoint string) TracerOption {
	return func(t *tracerConfig) {
		t.endpoint = endpoint
	}
}

func WithServiceName(name string) TracerOption {
	return func(t *tracerConfig) {
		t.serviceName = name
	}
}

func WithSamplingRatio(ratio float64) TracerOption {
	return func(t *tracerConfig) {
		t.samplingRatio = ratio
	}
}

type tracerConfig struct {
	endpoint      string
	serviceName   string
	samplingRatio float64
}

// NewTracerProvider builds a batching OTLP/gRPC tracer provider and installs
// it, together with the W3C propagators, as the global provider.
func NewTracerProvider(opts ...TracerOption) (*sdktrace.TracerProvider, error) {
	cfg := &tracerConfig{serviceName: "anagram"}
	for _, opt := range opts {
		opt(cfg)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", cfg.serviceName)),
	)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	exp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("creating otlp exporter for %s: %w", cfg.endpoint, err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.samplingRatio)),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exp)),
	)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetTracerProvider(tp)

	return tp, nil
}

func MustNewTracerProvider(opts ...TracerOption) *sdktrace.TracerProvider {
	tp, err := NewTracerProvider(opts...)
	if err != nil {
		panic(err)
	}
	return tp
}

// TraceError marks span as failed with err.
func TraceError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
