// Package main runs the volunteer matching HTTP API with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/churchserve/backend/config"
	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/metrics"
	"github.com/churchserve/backend/internal/middleware"
	"github.com/churchserve/backend/internal/opportunities"
	"github.com/churchserve/backend/internal/organizations"
	"github.com/churchserve/backend/internal/signups"
	"github.com/churchserve/backend/internal/stats"
	"github.com/churchserve/backend/pkg/database"
	"github.com/churchserve/backend/pkg/queue"
	"github.com/churchserve/backend/pkg/redis"
	"github.com/churchserve/backend/pkg/response"
	"github.com/churchserve/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	if _, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf)); err != nil {
		logger.Warn("set GOMAXPROCS", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), database.PoolOptions{
		MaxConns:        int32(cfg.Database.MaxConns),
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// Redis only carries reconcile jobs; without it drift is logged and left to the scheduled sweep.
	var reconcileQueue signups.Enqueuer
	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Warn("redis unavailable, reconcile jobs disabled", zap.Error(err))
	} else {
		defer rdb.Close()
		reconcileQueue = queue.NewQueue(rdb.Client, logger)
	}

	var logos organizations.LogoStore
	if cfg.AWS.Region != "" {
		s3Client, err := storage.NewS3(ctx, storage.S3Config{
			Region:               cfg.AWS.Region,
			AccessKeyID:          cfg.AWS.AccessKeyID,
			SecretAccessKey:      cfg.AWS.SecretAccessKey,
			LogosBucket:          cfg.AWS.LogosBucket,
			PresignExpireMinutes: cfg.AWS.PresignExpireMinutes,
		}, logger)
		if err != nil {
			logger.Warn("s3 disabled", zap.Error(err))
		} else {
			logos = s3Client
		}
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	// Auth
	authRepo := auth.NewRepository(pool)
	authHandler := auth.NewHandler(authRepo, jwtService, logger)

	// Opportunities
	oppRepo := opportunities.NewRepository(pool)
	oppService := opportunities.NewService(oppRepo, cfg.Listing.DefaultLimit, cfg.Listing.MaxLimit, logger)

	// Organizations
	orgRepo := organizations.NewRepository(pool)
	orgService := organizations.NewService(orgRepo, oppRepo, logger)
	orgHandler := organizations.NewHandler(orgService, logos, logger)
	oppHandler := opportunities.NewHandler(oppService, orgService, logger)

	// Signups
	signupRepo := signups.NewRepository(pool)
	signupService := signups.NewService(signupRepo, oppRepo, reconcileQueue, logger)
	signupHandler := signups.NewHandler(signupService, oppService, logger)

	// Stats
	statsHandler := stats.NewHandler(stats.NewService(stats.NewRepository(pool)), logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(metrics.Middleware())

	// Health
	router.GET("/health", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			response.ServiceUnavailable(c, "database unavailable")
			return
		}
		response.OK(c, gin.H{"status": "ok"})
	})

	// Auth (public)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
	}

	// Public browsing
	router.GET("/opportunities", oppHandler.List)
	router.GET("/opportunities/:id", oppHandler.Get)

	// Protected API (JWT required)
	api := router.Group("")
	api.Use(middleware.JWT(jwtService))
	{
		api.GET("/auth/user", authHandler.Me)
		api.PATCH("/auth/user", authHandler.UpdateMe)

		// Organizations
		api.POST("/organizations", orgHandler.Create)
		api.GET("/organizations/my", orgHandler.ListMine)
		api.GET("/organizations/owned", orgHandler.ListOwned)
		api.GET("/organizations/:id", orgHandler.Get)
		api.PATCH("/organizations/:id", orgHandler.Update)
		api.GET("/organizations/:id/stats", statsHandler.Organization)
		api.GET("/organizations/:id/members", orgHandler.ListMembers)
		api.POST("/organizations/:id/members", orgHandler.AddMember)
		api.PATCH("/organizations/:id/members/:userId", orgHandler.UpdateMemberRole)
		api.DELETE("/organizations/:id/members/:userId", orgHandler.RemoveMember)
		api.POST("/organizations/:id/logo", orgHandler.UploadLogo)
		api.POST("/organizations/:id/logo/upload-url", orgHandler.LogoUploadURL)
		api.POST("/organizations/:id/logo/confirm", orgHandler.ConfirmLogo)
		api.GET("/organizations/:id/logo/url", orgHandler.LogoURL)

		// Opportunities
		api.POST("/opportunities", oppHandler.Create)
		api.PATCH("/opportunities/:id", oppHandler.Update)
		api.DELETE("/opportunities/:id", oppHandler.Delete)

		// Signups
		api.POST("/opportunities/:id/signup", signupHandler.SignUp)
		api.GET("/opportunities/:id/signups", signupHandler.ListForOpportunity)
		api.GET("/user/signups", signupHandler.ListMine)
		api.PATCH("/signups/:id", signupHandler.UpdateStatus)
		api.DELETE("/signups/:id", signupHandler.Cancel)

		// Dashboard
		api.GET("/user/stats", statsHandler.Volunteer)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	var metricsSrv *metrics.Server
	if cfg.Metrics.ListenAddr != "" {
		metricsSrv = metrics.NewServer(cfg.Metrics.ListenAddr)
		go func() {
			logger.Info("metrics listening", zap.String("addr", cfg.Metrics.ListenAddr))
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics shutdown", zap.Error(err))
		}
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
