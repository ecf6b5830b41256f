package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type TransferMetrics struct {
	transfersStarted metric.Int64Counter
	transfersMinted  metric.Int64Counter
	relayerFallbacks metric.Int64Counter
	transferTime     metric.Float64Histogram

	opts metric.MeasurementOption
}

// NewTransferMetrics initializes metrics tracking transfer outcomes
func NewTransferMetrics(meter metric.Meter, env string) (*TransferMetrics, error) {
	transfersStarted, err := meter.Int64Counter(
		"gateway.TransfersStarted",
		metric.WithDescription("Total number of transfer attempts started"),
	)
	if err != nil {
		return nil, err
	}
	transfersMinted, err := meter.Int64Counter(
		"gateway.TransfersMinted",
		metric.WithDescription("Total number of transfers completed with a successful mint"),
	)
	if err != nil {
		return nil, err
	}
	relayerFallbacks, err := meter.Int64Counter(
		"gateway.RelayerFallbacks",
		metric.WithDescription("Total number of transfers left to the service relayer after a failed mint"),
	)
	if err != nil {
		return nil, err
	}
	transferTime, err := meter.Float64Histogram(
		"gateway.TransferTime",
		metric.WithDescription("Duration of end-to-end transfers in seconds"),
	)
	if err != nil {
		return nil, err
	}

	return &TransferMetrics{
		transfersStarted: transfersStarted,
		transfersMinted:  transfersMinted,
		relayerFallbacks: relayerFallbacks,
		transferTime:     transferTime,
		opts:             metric.WithAttributes(attribute.String("env", env)),
	}, nil
}

func (m *TransferMetrics) TrackStart(ctx context.Context) {
	m.transfersStarted.Add(ctx, 1, m.opts)
}

func (m *TransferMetrics) TrackMinted(ctx context.Context, start time.Time) {
	m.transfersMinted.Add(ctx, 1, m.opts)
	m.transferTime.Record(ctx, time.Since(start).Seconds(), m.opts)
}

func (m *TransferMetrics) TrackRelayerFallback(ctx context.Context) {
	m.relayerFallbacks.Add(ctx, 1, m.opts)
}
