package server

import (
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/mannyyy07/quickqr/internal/clock"
	"github.com/mannyyy07/quickqr/internal/config"
	eventservice "github.com/mannyyy07/quickqr/internal/event/service"
	"github.com/mannyyy07/quickqr/internal/qr"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServerTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS usage_events (
			id BIGINT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			kind TEXT NOT NULL,
			session_id TEXT NOT NULL,
			payload TEXT NOT NULL DEFAULT '{}',
			ip_hash TEXT NOT NULL,
			user_agent TEXT,
			referrer TEXT
		)`,
	).Error; err != nil {
		t.Fatalf("create usage_events: %v", err)
	}
	return db
}

func newTestServer(t *testing.T, db *gorm.DB, cfg config.Config) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cfg.Track.RateLimit == 0 {
		cfg.Track = config.TrackConfig{RateLimit: 100, RateWindow: time.Minute}
	}

	node, err := snowflake.NewNode(9)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}

	svc := eventservice.NewService(eventservice.ServiceParam{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.SystemClock{},
	})

	srv := NewServer(ServerParam{
		Cfg:      cfg,
		Log:      zap.NewNop(),
		DB:       db,
		EventSvc: svc,
		Renderer: qr.NewRenderer(zap.NewNop()),
	})

	engine := gin.New()
	srv.RegisterRoutes(engine)
	return srv, engine
}
