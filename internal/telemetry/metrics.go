package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics counts projectile lifecycle events. A nil *Metrics records nothing.
type Metrics struct {
	launched    metric.Int64Counter
	exploded    metric.Int64Counter
	directHits  metric.Int64Counter
	outOfBounds metric.Int64Counter
}

// New registers the counters on the global meter provider.
func New() (*Metrics, error) {
	return NewWithMeter(meter())
}

// NewWithMeter registers the counters on m.
func NewWithMeter(m metric.Meter) (*Metrics, error) {
	var (
		mt  Metrics
		err error
	)

	mt.launched, err = m.Int64Counter(
		"flyable.launched",
		metric.WithDescription("Projectiles launched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating launched counter: %w", err)
	}

	mt.exploded, err = m.Int64Counter(
		"flyable.exploded",
		metric.WithDescription("Projectiles exploded"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating exploded counter: %w", err)
	}

	mt.directHits, err = m.Int64Counter(
		"flyable.direct_hits",
		metric.WithDescription("Explosions that hit a kart directly"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating direct hits counter: %w", err)
	}

	mt.outOfBounds, err = m.Int64Counter(
		"flyable.out_of_bounds",
		metric.WithDescription("Projectiles that left the track surface"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating out of bounds counter: %w", err)
	}

	return &mt, nil
}

func kindAttr(kind string) metric.AddOption {
	return metric.WithAttributes(attribute.String("kind", kind))
}

func (m *Metrics) Launched(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.launched.Add(ctx, 1, kindAttr(kind))
}

func (m *Metrics) Exploded(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.exploded.Add(ctx, 1, kindAttr(kind))
}

func (m *Metrics) DirectHit(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.directHits.Add(ctx, 1, kindAttr(kind))
}

func (m *Metrics) OutOfBounds(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.outOfBounds.Add(ctx, 1, kindAttr(kind))
}
