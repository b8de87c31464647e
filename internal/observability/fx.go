// Package observability wires logging, tracing, and metrics together.
package observability

import (
	"github.com/mannyyy07/quickqr/internal/config"
	"github.com/mannyyy07/quickqr/internal/observability/logger"
	"github.com/mannyyy07/quickqr/internal/observability/metrics"
	"github.com/mannyyy07/quickqr/internal/observability/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the full observability stack.
var Module = fx.Module("observability",
	logger.Module,
	fx.Provide(func(cfg config.Config) tracing.Config {
		return tracing.Config{
			Enabled:          cfg.Telemetry.Enabled,
			ServiceName:      cfg.Telemetry.ServiceName,
			Environment:      cfg.Environment,
			ExporterEndpoint: cfg.Telemetry.ExporterEndpoint,
			ExporterProtocol: cfg.Telemetry.ExporterProtocol,
			SamplingRatio:    cfg.Telemetry.SamplingRatio,
		}
	}),
	fx.Invoke(func(lc fx.Lifecycle, cfg tracing.Config, log *zap.Logger) error {
		_, err := tracing.NewProvider(lc, cfg, log)
		return err
	}),
	fx.Provide(func(cfg config.Config) metrics.Config {
		return metrics.Config{ServiceName: cfg.Telemetry.ServiceName}
	}),
	fx.Provide(func() metric.MeterProvider {
		return otel.GetMeterProvider()
	}),
	fx.Provide(metrics.NewHTTPMetrics),
)
