// Package db opens the analytics database connection.
package db

import (
	"strings"

	"github.com/mannyyy07/quickqr/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to Postgres using the configured DSN.
//
// A missing DSN is not an error: the product works without an analytics
// backend, so Open returns a nil connection and callers degrade to no-ops.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := strings.TrimSpace(cfg.DatabaseURL)
	if dsn == "" {
		log.Warn("database url not configured; usage events will not be stored")
		return nil, nil
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if !cfg.IsProduction() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	conn, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, err
	}
	log.Info("database connected")
	return conn, nil
}

// Module provides the gorm connection to the fx graph.
var Module = fx.Module("db",
	fx.Provide(Open),
)
