// Package config loads service configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config holds everything the service reads from its environment.
type Config struct {
	Addr        string
	Environment string

	// DatabaseURL is the Postgres DSN. When empty the service still serves
	// QR generation; event ingestion degrades to a silent no-op.
	DatabaseURL string

	// DashboardSecret gates /dashboard. Empty means the dashboard is open.
	DashboardSecret string

	Track     TrackConfig
	Telemetry TelemetryConfig
}

// TrackConfig bounds the ingestion endpoint.
type TrackConfig struct {
	RateLimit  int
	RateWindow time.Duration
}

// TelemetryConfig configures the optional OTLP trace exporter.
type TelemetryConfig struct {
	Enabled          bool
	ServiceName      string
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

// Load reads configuration from QUICKQR_* environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("QUICKQR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("environment", "development")
	v.SetDefault("database_url", "")
	v.SetDefault("dashboard_secret", "")
	v.SetDefault("track.rate_limit", 60)
	v.SetDefault("track.rate_window", time.Minute)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "quickqr")
	v.SetDefault("telemetry.exporter_endpoint", "")
	v.SetDefault("telemetry.exporter_protocol", "grpc")
	v.SetDefault("telemetry.sampling_ratio", 0.1)

	cfg := Config{
		Addr:            v.GetString("addr"),
		Environment:     v.GetString("environment"),
		DatabaseURL:     v.GetString("database_url"),
		DashboardSecret: v.GetString("dashboard_secret"),
		Track: TrackConfig{
			RateLimit:  v.GetInt("track.rate_limit"),
			RateWindow: v.GetDuration("track.rate_window"),
		},
		Telemetry: TelemetryConfig{
			Enabled:          v.GetBool("telemetry.enabled"),
			ServiceName:      v.GetString("telemetry.service_name"),
			ExporterEndpoint: v.GetString("telemetry.exporter_endpoint"),
			ExporterProtocol: v.GetString("telemetry.exporter_protocol"),
			SamplingRatio:    v.GetFloat64("telemetry.sampling_ratio"),
		},
	}
	return cfg, nil
}

// Module provides Config to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)
