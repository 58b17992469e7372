package rest

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sandevgo/bodai/internal/config"
	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/pkg/log"
)

//go:embed web
var webFS embed.FS

// Bot is the conversational surface the API exposes.
type Bot interface {
	core.Chatter
	core.Conversation
}

type Server struct {
	bot      Bot
	memories core.MemoryRepository
	profile  core.ProfileRepository
	gatherer prometheus.Gatherer

	engine     *gin.Engine
	httpServer *http.Server
}

func NewServer(
	ctx context.Context,
	cfg *config.HTTPConfig,
	bot Bot,
	memories core.MemoryRepository,
	profile core.ProfileRepository,
	gatherer prometheus.Gatherer,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(ctx))

	if cfg.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		bot:      bot,
		memories: memories,
		profile:  profile,
		gatherer: gatherer,
		engine:   engine,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/chat", s.handleChat)

	s.engine.GET("/context", s.handleGetContext)
	s.engine.DELETE("/context", s.handleClearContext)

	profile := s.engine.Group("/profile")
	{
		profile.GET("", s.handleListProfile)
		profile.DELETE("", s.handleClearProfile)
		profile.PUT("/:id", s.handleUpdateProfile)
		profile.DELETE("/:id", s.handleDeleteProfile)
	}

	memories := s.engine.Group("/memories")
	{
		memories.GET("", s.handleListMemories)
		memories.PUT("/:id", s.handleUpdateMemory)
		memories.DELETE("/:id", s.handleDeleteMemory)
	}

	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	static, _ := fs.Sub(webFS, "web")
	s.engine.NoRoute(gin.WrapH(http.FileServer(http.FS(static))))
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.httpServer.Addr).Msg("starting http server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(ctx context.Context) gin.HandlerFunc {
	logger := log.FromCtx(ctx)
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()

		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("http request")
	}
}
