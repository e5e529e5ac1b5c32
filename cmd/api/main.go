package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-api/config"
	v1 "go-jobboard-api/internal/delivery/http/v1"
	"go-jobboard-api/internal/repository/postgres"
	"go-jobboard-api/internal/usecase"
	"go-jobboard-api/pkg/database"
	"go-jobboard-api/pkg/logger"
	"go-jobboard-api/pkg/redis"
	"go-jobboard-api/pkg/storage"
	"go-jobboard-api/pkg/token"
)

// @title           Job Board API
// @version         1.0
// @description     Job board backend with role-based access control.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board API", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; blacklist and rate limiting degrade in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
	}
	defer redis.Close()

	// 5. Setup Asset Storage
	ctx := context.Background()
	s3Client, err := storage.NewS3Client(ctx, storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to create S3 client", "error", err)
		os.Exit(1)
	}
	if err := storage.TestConnection(ctx, s3Client, cfg.S3Bucket); err != nil {
		logger.Log.Warn("S3 bucket check failed", "error", err)
	}
	assetStore := storage.NewS3Store(s3Client, cfg.S3Bucket)

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	offerRepo := postgres.NewJobOfferRepository(dbPool)
	appRepo := postgres.NewApplicationRepository(dbPool)
	cvRepo := postgres.NewCVRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	refreshRepo := postgres.NewRefreshTokenRepository(dbPool)

	// 7. Setup Tokens
	tokens := token.NewProvider(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	blacklist := token.NewRedisBlacklist(redis.Client())

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, profileRepo, skillRepo, cvRepo, refreshRepo, tokens, blacklist, cfg.RefreshTokenTTL)
	userUC := usecase.NewUserUsecase(userRepo, cvRepo, appRepo, refreshRepo, assetStore)
	offerUC := usecase.NewJobOfferUsecase(offerRepo, appRepo, assetStore)
	appUC := usecase.NewApplicationUsecase(appRepo, offerRepo, assetStore)
	cvUC := usecase.NewCVUsecase(cvRepo, appRepo, assetStore)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Tokens:    tokens,
		Blacklist: blacklist,
		AuthUC:    authUC,
		UserUC:    userUC,
		OfferUC:   offerUC,
		AppUC:     appUC,
		CVUC:      cvUC,
		SkillUC:   skillUC,
		ProfileUC: profileUC,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
