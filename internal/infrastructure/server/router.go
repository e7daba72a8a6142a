package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/pkg/httputil"
)

type Router struct {
	engine         *gin.Engine
	presignHandler *handler.PresignHandler
	rateLimiter    *middleware.RateLimiter
	metrics        *observability.Metrics
	logger         *zap.Logger
	allowedOrigins []string
	staticDir      string
}

type RouterConfig struct {
	PresignHandler *handler.PresignHandler
	// RateLimiter is optional.
	RateLimiter    *middleware.RateLimiter
	Metrics        *observability.Metrics
	Logger         *zap.Logger
	Environment    string
	AllowedOrigins []string
	StaticDir      string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		presignHandler: cfg.PresignHandler,
		rateLimiter:    cfg.RateLimiter,
		metrics:        cfg.Metrics,
		logger:         cfg.Logger,
		allowedOrigins: cfg.AllowedOrigins,
		staticDir:      cfg.StaticDir,
	}

	r.setupMiddleware()
	r.setupRoutes()
	r.setupFallback()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Metrics(r.metrics))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", handler.Health)

	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}
	{
		api.POST("/presign-image", r.presignHandler.PresignImage)
		api.POST("/presign-cutout", r.presignHandler.PresignCutout)
	}
}

// setupFallback serves the frontend bundle for any unmatched GET or HEAD.
// API paths and other methods get a JSON 404.
func (r *Router) setupFallback() {
	var files http.Handler
	if r.staticDir != "" {
		if info, err := os.Stat(r.staticDir); err == nil && info.IsDir() {
			files = http.FileServer(http.Dir(r.staticDir))
			r.logger.Info("serving static files", zap.String("dir", r.staticDir))
		} else {
			r.logger.Info("static directory not found, frontend disabled", zap.String("dir", r.staticDir))
		}
	}

	r.engine.NoRoute(func(c *gin.Context) {
		method := c.Request.Method
		if files == nil || strings.HasPrefix(c.Request.URL.Path, "/api/") ||
			(method != http.MethodGet && method != http.MethodHead) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "route not found")
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
