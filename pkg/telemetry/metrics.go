package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/grow"

// BedMetrics counts bed writes. A nil *BedMetrics is a no-op.
type BedMetrics struct {
	created metric.Int64Counter
	deleted metric.Int64Counter
}

// NewBedMetrics registers the bed counters on the global meter provider.
// Call it after Setup so the counters reach the configured exporters.
func NewBedMetrics() (*BedMetrics, error) {
	meter := otel.Meter(meterName)
	created, err := meter.Int64Counter("grow.beds.created",
		metric.WithDescription("Beds inserted, by operation"),
		metric.WithUnit("{bed}"))
	if err != nil {
		return nil, err
	}
	deleted, err := meter.Int64Counter("grow.beds.deleted",
		metric.WithDescription("Beds removed, by operation"),
		metric.WithUnit("{bed}"))
	if err != nil {
		return nil, err
	}
	return &BedMetrics{created: created, deleted: deleted}, nil
}

// Created records n beds inserted by op.
func (m *BedMetrics) Created(ctx context.Context, op string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.created.Add(ctx, int64(n), metric.WithAttributes(attribute.String("operation", op)))
}

// Deleted records n beds removed by op.
func (m *BedMetrics) Deleted(ctx context.Context, op string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.deleted.Add(ctx, int64(n), metric.WithAttributes(attribute.String("operation", op)))
}
