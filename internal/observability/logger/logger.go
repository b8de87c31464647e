// Package logger wires zap logging with request and trace correlation.
package logger

import (
	"context"

	"github.com/mannyyy07/quickqr/internal/config"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// New builds the process logger for the configured environment.
func New(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// FromContext returns the global logger enriched with the active trace and
// span identifiers, when a recorded span is present.
func FromContext(ctx context.Context) *zap.Logger {
	log := zap.L()
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		log = log.With(
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	return log
}

// Module provides the logger and installs it as the zap global.
var Module = fx.Module("logger",
	fx.Provide(New),
	fx.Invoke(func(lc fx.Lifecycle, log *zap.Logger) {
		restore := zap.ReplaceGlobals(log)
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				restore()
				_ = log.Sync()
				return nil
			},
		})
	}),
)
