package viewcount

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "outterspace.viewcount"

type metrics struct {
	applyCounter   metric.Int64Counter
	droppedCounter metric.Int64Counter
	latency        metric.Int64Histogram
}

func newMetrics() *metrics {
	m := otel.GetMeterProvider().Meter(meterName)
	applyCounter, _ := m.Int64Counter("outterspace_view_count_apply_total")
	droppedCounter, _ := m.Int64Counter("outterspace_view_count_dropped_total")
	latency, _ := m.Int64Histogram("outterspace_view_count_apply_ms")
	return &metrics{applyCounter: applyCounter, droppedCounter: droppedCounter, latency: latency}
}

func (m *metrics) recordSuccess(ctx context.Context, started time.Time) {
	if m == nil || m.applyCounter == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("result", "success"))
	m.applyCounter.Add(ctx, 1, attrs)
	if m.latency != nil {
		m.latency.Record(ctx, time.Since(started).Milliseconds(), attrs)
	}
}

func (m *metrics) recordFailure(ctx context.Context) {
	if m == nil || m.applyCounter == nil {
		return
	}
	m.applyCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "failure")))
}

func (m *metrics) recordDropped(ctx context.Context) {
	if m == nil || m.droppedCounter == nil {
		return
	}
	m.droppedCounter.Add(ctx, 1)
}
