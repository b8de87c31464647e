package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/mannyyy07/quickqr/internal/clock"
	"github.com/mannyyy07/quickqr/internal/config"
	"github.com/mannyyy07/quickqr/internal/event"
	"github.com/mannyyy07/quickqr/internal/migration"
	"github.com/mannyyy07/quickqr/internal/observability"
	"github.com/mannyyy07/quickqr/internal/qr"
	"github.com/mannyyy07/quickqr/internal/server"
	"github.com/mannyyy07/quickqr/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,

		event.Module,
		qr.Module,

		fx.Invoke(runMigrations),
		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(s *server.Server, engine *gin.Engine) {
			s.RegisterRoutes(engine)
		}),
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func runMigrations(conn *gorm.DB, log *zap.Logger) error {
	if conn == nil {
		return nil
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	log.Info("running migrations", zap.String("version", version))
	return migration.RunMigrations(sqlDB)
}
