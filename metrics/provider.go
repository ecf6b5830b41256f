package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const EXPORT_INTERVAL = 60 * time.Second

// InitMetricProvider configures a meter provider pushing to an OTLP
// collector. An empty collector URL yields a provider without readers, so
// instrument calls stay cheap when no collector is deployed.
func InitMetricProvider(ctx context.Context, collectorURL string) (*sdkmetric.MeterProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("gateway-client"),
		),
	)
	if err != nil {
		return nil, err
	}

	if collectorURL == "" {
		return sdkmetric.NewMeterProvider(sdkmetric.WithResource(res)), nil
	}

	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpoint(collectorURL))
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(EXPORT_INTERVAL)),
		),
	), nil
}
