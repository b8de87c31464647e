// Package server exposes the HTTP surface: the page, the JSON API, and the
// analytics dashboard.
package server

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mannyyy07/quickqr/internal/config"
	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
	"github.com/mannyyy07/quickqr/internal/observability/logger"
	"github.com/mannyyy07/quickqr/internal/observability/metrics"
	"github.com/mannyyy07/quickqr/internal/qr"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServerParam struct {
	fx.In

	Cfg      config.Config
	Log      *zap.Logger
	DB       *gorm.DB
	EventSvc eventdomain.Service
	Renderer *qr.Renderer
}

type Server struct {
	cfg      config.Config
	log      *zap.Logger
	db       *gorm.DB
	eventSvc eventdomain.Service
	renderer *qr.Renderer

	trackLimiter *rateLimiter
	dashboardTpl *template.Template
}

func NewServer(p ServerParam) *Server {
	return &Server{
		cfg:          p.Cfg,
		log:          p.Log.Named("server"),
		db:           p.DB,
		eventSvc:     p.EventSvc,
		renderer:     p.Renderer,
		trackLimiter: newRateLimiter(p.Cfg.Track.RateLimit, p.Cfg.Track.RateWindow),
		dashboardTpl: newDashboardTemplate(),
	}
}

// NewEngine builds the gin engine with recovery, request logging, and HTTP
// metrics middleware.
func NewEngine(cfg config.Config, m *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{SkipPaths: []string{"/healthz"}}))
	engine.Use(metrics.GinMiddleware(m))
	return engine
}

// RegisterRoutes attaches every handler to the engine.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", s.Index)
	engine.GET("/healthz", s.Health)
	engine.GET("/dashboard", s.Dashboard)

	api := engine.Group("/api")
	api.POST("/generate", s.Generate)
	api.POST("/track", s.Track)
}

// RunHTTP starts the HTTP server under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{Addr: cfg.Addr, Handler: engine}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			log.Info("http server listening", zap.String("addr", cfg.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
