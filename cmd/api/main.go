package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "github.com/marcos-nsantos/cutout-presign-backend/docs"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/adapter/handler"
	adapterstorage "github.com/marcos-nsantos/cutout-presign-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/usecase/cors"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/usecase/presign"
)

//	@title			Cutout Presign API
//	@version		1.0
//	@description	Issues short-lived signed URLs so browsers upload images and their cutouts straight to the bucket.
//	@BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	metrics := observability.NewMetrics()

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}

	// Optional Redis: file registry and rate limiting
	var (
		registry    adapterstorage.FileRegistry
		rateLimiter *middleware.RateLimiter
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()

		registry = cache.NewFileRegistry(redisClient, cfg.Presign.FileRegistryTTL)
		if cfg.RateLimit.Enabled {
			rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
		}
	}

	// Bucket CORS, once, before accepting traffic
	corsCtx, cancelCORS := context.WithTimeout(ctx, cfg.CORS.SetupTimeout)
	result := cors.NewReconciler(s3Storage, cfg.CORS.AutoSetup, logger, metrics).Reconcile(corsCtx)
	cancelCORS()
	if !result.Ready() && result.Status != cors.StatusSkipped {
		logger.Warn("browser uploads may be blocked until bucket cors is fixed", zap.String("cors_status", string(result.Status)))
	}

	// Use cases
	presignSvc := presign.NewService(s3Storage, registry, presign.Config{
		Expiry:             cfg.Presign.Expiry,
		RequireKnownFileID: cfg.Presign.RequireKnownFileID,
	}, logger, metrics)

	// Handlers
	presignHandler := handler.NewPresignHandler(presignSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		PresignHandler: presignHandler,
		RateLimiter:    rateLimiter,
		Metrics:        metrics,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		StaticDir:      cfg.Server.StaticDir,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
	})
	if err := srv.Listen(); err != nil {
		logger.Fatal("failed to bind port", zap.Error(err))
	}

	logger.Info("presign server ready",
		zap.String("addr", srv.Addr()),
		zap.String("bucket", s3Storage.Bucket()),
		zap.String("endpoint", cfg.S3.Endpoint),
		zap.Duration("presign_expiry", cfg.Presign.Expiry),
		zap.String("cors_status", string(result.Status)),
		zap.Bool("file_registry", registry != nil),
		zap.Bool("rate_limit", rateLimiter != nil),
	)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Serve(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
