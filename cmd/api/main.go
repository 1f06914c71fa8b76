package main

// @title HorecaSeek Service API
// @version 1.0.0
// @description Directory service for horeca venues: professional establishment listings (restaurants, bars, traiteurs, hotels) and user-shared spots, with ratings, merged search and role-driven account views.
// @description
// @description Main capabilities:
// @description - Public category pages and spot feed with display ratings
// @description - Merged substring search over establishments and spots
// @description - Account area gated by session with role-resolved content
// @description - Vote recording with atomic accumulators and stream-fed platform stats

// @contact.name API Support
// @contact.email support@horecaseek.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/horecaseek-service/docs/swagger"
	"github.com/horecaseek-service/internal/config"
	httpDelivery "github.com/horecaseek-service/internal/delivery/http"
	"github.com/horecaseek-service/internal/delivery/http/handler"
	"github.com/horecaseek-service/internal/infrastructure/storage"
	"github.com/horecaseek-service/internal/pkg/logger"
	"github.com/horecaseek-service/internal/repository/cache"
	"github.com/horecaseek-service/internal/repository/postgres"
	redisRepo "github.com/horecaseek-service/internal/repository/redis"
	"github.com/horecaseek-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting HorecaSeek Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	estRepo := postgres.NewEstablishmentRepository(db)
	spotRepo := postgres.NewSpotRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	sessionRepo := cache.NewSessionRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	storageRepo := storage.NewStorageClient(&cfg.Storage, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	authUC := usecase.NewAuthUseCase(
		userRepo,
		sessionRepo,
		log,
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTTL,
		cfg.Auth.RefreshTTL,
		cfg.Auth.ConfirmCodeTTL,
	)
	profileUC := usecase.NewProfileUseCase(profileRepo, storageRepo, log)
	estUC := usecase.NewEstablishmentUseCase(
		estRepo,
		storageRepo,
		cacheRepo,
		log,
		cfg.Cache.ListingCacheTTL,
	)
	spotUC := usecase.NewSpotUseCase(
		spotRepo,
		storageRepo,
		cacheRepo,
		log,
		cfg.Cache.ListingCacheTTL,
	)
	ratingUC := usecase.NewRatingUseCase(estRepo, spotRepo, cacheRepo, streamRepo, log)
	searchUC := usecase.NewSearchUseCase(
		estRepo,
		spotRepo,
		cacheRepo,
		log,
		cfg.Cache.SearchCacheTTL,
	)
	accountUC := usecase.NewAccountUseCase(profileRepo, estRepo, spotRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	profileHandler := handler.NewProfileHandler(profileUC, log)
	estHandler := handler.NewEstablishmentHandler(estUC, ratingUC, log)
	spotHandler := handler.NewSpotHandler(spotUC, ratingUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	accountHandler := handler.NewAccountHandler(accountUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authHandler,
		profileHandler,
		estHandler,
		spotHandler,
		searchHandler,
		accountHandler,
		statsHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
