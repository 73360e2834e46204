package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "postboard/internal/repository"

type queryMetrics struct {
	count    metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

// Option configures how a repository reports its store operations.
type Option func(*options)

type options struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

type telemetry struct {
	tracer  trace.Tracer
	metrics *queryMetrics
}

func newTelemetry(opts []Option) *telemetry {
	o := options{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &telemetry{
		tracer:  o.tracerProvider.Tracer(instrumentationName),
		metrics: newQueryMetrics(o.meterProvider.Meter(instrumentationName)),
	}
}

func newQueryMetrics(meter metric.Meter) *queryMetrics {
	count, _ := meter.Int64Counter("postboard.db.query.count",
		metric.WithDescription("Total number of store operations"),
		metric.WithUnit("{query}"),
	)

	errs, _ := meter.Int64Counter("postboard.db.query.errors",
		metric.WithDescription("Total number of failed store operations"),
		metric.WithUnit("{error}"),
	)

	duration, _ := meter.Float64Histogram("postboard.db.query.duration",
		metric.WithDescription("Store operation duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000),
	)

	return &queryMetrics{count: count, errors: errs, duration: duration}
}

// observe opens a span for a store operation. The returned func must be
// called with the operation's final error.
func (t *telemetry) observe(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()
	attrs := metric.WithAttributes(attribute.String("db.operation", op))

	ctx, span := t.tracer.Start(ctx, "db."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.operation", op)),
	)

	return ctx, func(err error) {
		t.metrics.count.Add(ctx, 1, attrs)
		t.metrics.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, attrs)

		if err != nil {
			t.metrics.errors.Add(ctx, 1, attrs)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
