package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/unifiedusdc/gateway-client/metrics"
)

type MetricProviderTestSuite struct {
	suite.Suite
}

func TestRunMetricProviderTestSuite(t *testing.T) {
	suite.Run(t, new(MetricProviderTestSuite))
}

func (s *MetricProviderTestSuite) Test_InitMetricProvider_WithoutCollector() {
	mp, err := metrics.InitMetricProvider(context.Background(), "")

	s.Nil(err)
	s.NotNil(mp)

	m, err := metrics.NewTransferMetrics(mp.Meter("gateway-client"), "TEST")
	s.Nil(err)
	s.NotNil(m)

	s.Nil(mp.Shutdown(context.Background()))
}

func (s *MetricProviderTestSuite) Test_TransferMetrics_RecordsCounters() {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := metrics.NewTransferMetrics(mp.Meter("gateway-client"), "TEST")
	s.Nil(err)

	ctx := context.Background()
	m.TrackStart(ctx)
	m.TrackMinted(ctx, time.Now())
	m.TrackRelayerFallback(ctx)

	var rm metricdata.ResourceMetrics
	s.Nil(reader.Collect(ctx, &rm))

	recorded := make(map[string]bool)
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			recorded[metric.Name] = true
		}
	}
	s.True(recorded["gateway.TransfersStarted"])
	s.True(recorded["gateway.TransfersMinted"])
	s.True(recorded["gateway.RelayerFallbacks"])
	s.True(recorded["gateway.TransferTime"])

	s.Nil(mp.Shutdown(ctx))
}
