package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"schoolrate/database"
	"schoolrate/internal/cache"
	"schoolrate/internal/config"
	"schoolrate/internal/http-api/handler"
	"schoolrate/internal/http-api/middleware"
	"schoolrate/internal/http-api/repository"
	"schoolrate/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// Cache is optional: without Redis the aggregates are computed per request.
	overviewCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Warn("running without Redis cache", "error", err)
		overviewCache = nil
	}

	// Repositories
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Services
	authService := service.NewAuthService(studentRepo, refreshTokenRepo, cfg)
	ratingService := service.NewRatingService(ratingRepo, teacherRepo, overviewCache)
	teacherService := service.NewTeacherService(teacherRepo, adminRepo, overviewCache)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	teacherHandler := handler.NewTeacherHandler(teacherService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)

	authRoutes := r.Group("/api/auth")
	authRoutes.POST("/register", authLimiter.Middleware(), authHandler.Register)
	authRoutes.POST("/login", authLimiter.Middleware(), authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.RevokeToken)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(authService))
	teacherHandler.RegisterRoutes(api, middleware.RequireAdmin(adminRepo))
	ratingHandler.RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
