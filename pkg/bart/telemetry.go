package bart

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "gobart/pkg/bart"

// instruments holds the metric instruments recorded per invocation.
type instruments struct {
	invocations metric.Int64Counter
	failures    metric.Int64Counter
	duration    metric.Float64Histogram
}

func newInstruments(meter metric.Meter) (*instruments, error) {
	inv, err := meter.Int64Counter("bart.invocations",
		metric.WithDescription("Number of toolbox invocations"),
	)
	if err != nil {
		return nil, err
	}

	fail, err := meter.Int64Counter("bart.failures",
		metric.WithDescription("Number of failed toolbox invocations"),
	)
	if err != nil {
		return nil, err
	}

	dur, err := meter.Float64Histogram("bart.duration",
		metric.WithDescription("Duration of toolbox invocations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &instruments{
		invocations: inv,
		failures:    fail,
		duration:    dur,
	}, nil
}

func (c *Client) startSpan(ctx context.Context, tool, id string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "bart."+tool,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("bart.tool", tool),
			attribute.String("bart.invocation_id", id),
		),
	)
}

// observe closes the span and records metrics for a finished call.
func (c *Client) observe(ctx context.Context, span trace.Span, tool string, exitCode int, elapsed time.Duration, err error) {
	span.SetAttributes(attribute.Int("bart.exit_code", exitCode))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()

	attrs := metric.WithAttributes(attribute.String("bart.tool", tool))
	c.metrics.invocations.Add(ctx, 1, attrs)
	c.metrics.duration.Record(ctx, elapsed.Seconds(), attrs)
	if err != nil {
		c.metrics.failures.Add(ctx, 1, attrs)
	}
}
