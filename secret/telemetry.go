package secret

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/taemno/taemno/secret"

// instrumentedProvider wraps a Provider with a span, an operation counter,
// an error counter, and a duration histogram per operation. Only the
// operation name and the service/account names are recorded, never secret
// values.
type instrumentedProvider struct {
	next     Provider
	tracer   trace.Tracer
	opCount  metric.Int64Counter
	errCount metric.Int64Counter
	duration metric.Float64Histogram
}

// Instrument wraps provider with tracing and metrics from the global
// tracer and meter providers. Without an installed SDK both are no-ops,
// so wrapping is always safe.
func Instrument(provider Provider) Provider {
	meter := otel.Meter(instrumentationName)
	opCount, _ := meter.Int64Counter(
		"secret.ops.total",
		metric.WithDescription("Total provider operations"),
		metric.WithUnit("{call}"),
	)
	errCount, _ := meter.Int64Counter(
		"secret.ops.errors",
		metric.WithDescription("Failed provider operations"),
		metric.WithUnit("{error}"),
	)
	duration, _ := meter.Float64Histogram(
		"secret.ops.duration_ms",
		metric.WithDescription("Provider operation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	return &instrumentedProvider{
		next:     provider,
		tracer:   otel.Tracer(instrumentationName),
		opCount:  opCount,
		errCount: errCount,
		duration: duration,
	}
}

func (p *instrumentedProvider) observe(ctx context.Context, op, service, account string, fn func(ctx context.Context) error) error {
	attrs := []attribute.KeyValue{
		attribute.String("secret.op", op),
		attribute.String("secret.service", service),
		attribute.String("secret.account", account),
	}
	ctx, span := p.tracer.Start(ctx, "secret.op."+op, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	opt := metric.WithAttributes(attrs...)
	p.opCount.Add(ctx, 1, opt)
	p.duration.Record(ctx, float64(elapsed.Milliseconds()), opt)
	if err != nil {
		p.errCount.Add(ctx, 1, opt)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (p *instrumentedProvider) Set(ctx context.Context, service, account, secret string) error {
	return p.observe(ctx, "set", service, account, func(ctx context.Context) error {
		return p.next.Set(ctx, service, account, secret)
	})
}

func (p *instrumentedProvider) Get(ctx context.Context, service, account string) (string, error) {
	var value string
	err := p.observe(ctx, "get", service, account, func(ctx context.Context) error {
		var err error
		value, err = p.next.Get(ctx, service, account)
		return err
	})
	return value, err
}

func (p *instrumentedProvider) Exists(ctx context.Context, service, account string) (bool, error) {
	var present bool
	err := p.observe(ctx, "exists", service, account, func(ctx context.Context) error {
		var err error
		present, err = p.next.Exists(ctx, service, account)
		return err
	})
	return present, err
}

func (p *instrumentedProvider) Delete(ctx context.Context, service, account string) error {
	return p.observe(ctx, "delete", service, account, func(ctx context.Context) error {
		return p.next.Delete(ctx, service, account)
	})
}
