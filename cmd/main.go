package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-service/internal/handler"
	mid "inventory-service/internal/middleware"
	"inventory-service/internal/store"
	"inventory-service/pkg/cache"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/jwtutil"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory service",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	metrics := prometheus.NewMetrics(cfg.Metrics.Prefix, promclient.DefaultRegisterer)
	jwtUtil := jwtutil.NewJWTUtil(&cfg.JWT)

	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close(db)
	log.Info("Database connection established", zap.String("driver", cfg.DB.Driver))

	var lookupCache *cache.Cache
	if cfg.Cache.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		lookupCache, err = cache.Dial(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB, cfg.Cache.Prefix, cfg.Cache.TTL)
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.String("addr", cfg.Cache.Addr), zap.Error(err))
		}
		defer lookupCache.Close()
		log.Info("Lookup cache enabled", zap.String("addr", cfg.Cache.Addr), zap.Duration("ttl", cfg.Cache.TTL))
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.RequestLoggerMiddleware)
	e.Use(mid.MetricsMiddleware(metrics))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.HealthCheck(cfg.ServiceName, db, lookupCache))

	api := e.Group("/api", mid.AuthMiddleware(jwtUtil, metrics))
	handler.New(store.New(db, lookupCache), metrics).Register(api)

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}
