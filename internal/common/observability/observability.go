package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type Observability struct {
	meterProvider *metric.MeterProvider
	traceProvider *sdktrace.TracerProvider
	meter         otelmetric.Meter
	tracer        oteltrace.Tracer
	fetchCounter  otelmetric.Int64Counter
	fetchDuration otelmetric.Float64Histogram
}

// New wires an OpenTelemetry meter backed by the Prometheus exporter and,
// when jaegerEndpoint is non-empty, a tracer for fetch spans.
func New(serviceName, jaegerEndpoint string) *Observability {
	o := &Observability{}

	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return o
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	o.meterProvider = provider
	o.meter = provider.Meter(serviceName)

	o.fetchCounter, _ = o.meter.Int64Counter(
		"browse.fetches",
		otelmetric.WithDescription("Number of player list fetches"),
	)

	o.fetchDuration, _ = o.meter.Float64Histogram(
		"browse.fetch.duration",
		otelmetric.WithDescription("Player list fetch duration"),
		otelmetric.WithUnit("ms"),
	)

	if jaegerEndpoint != "" {
		jexp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
		if err != nil {
			log.Printf("Failed to create Jaeger exporter: %v", err)
		} else {
			tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(jexp))
			otel.SetTracerProvider(tp)
			o.traceProvider = tp
		}
	}
	o.tracer = otel.Tracer(serviceName)

	return o
}

// StartSpan opens a span around a fetch; the returned end func is safe to
// call even when tracing is disabled.
func (o *Observability) StartSpan(ctx context.Context, name string) (context.Context, func()) {
	if o.tracer == nil {
		return ctx, func() {}
	}
	ctx, span := o.tracer.Start(ctx, name)
	return ctx, func() { span.End() }
}

func (o *Observability) RecordFetch(ctx context.Context, status string) {
	if o.fetchCounter != nil {
		o.fetchCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordFetchDuration(ctx context.Context, duration time.Duration, status string) {
	if o.fetchDuration != nil {
		o.fetchDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if o.traceProvider != nil {
		_ = o.traceProvider.Shutdown(ctx)
	}
	if o.meterProvider != nil {
		_ = o.meterProvider.Shutdown(ctx)
	}
}
