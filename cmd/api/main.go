package main

// @title Places Microservice API
// @version 1.0.0
// @description Микросервис каталога мест на MongoDB. Принимает KML файлы с Placemark'ами, сохраняет места с геопривязкой и предоставляет API для полнотекстового и геопространственного поиска.
// @description
// @description Основные возможности:
// @description - Загрузка KML файлов: синхронная вставка или фоновая обработка батчами через Redis Streams
// @description - Полнотекстовый поиск по названиям и описаниям мест
// @description - Поиск мест в радиусе от точки с сортировкой по расстоянию
// @description - Архив загруженных KML файлов в объектном хранилище
// @description - Статистика коллекции: размеры, индексы, географический охват

// @contact.name API Support
// @contact.email support@places-microservice.com

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

	_ "github.com/places-microservice/docs"
	"github.com/places-microservice/internal/config"
	httpDelivery "github.com/places-microservice/internal/delivery/http"
	"github.com/places-microservice/internal/delivery/http/handler"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/logger"
	"github.com/places-microservice/internal/repository/cache"
	"github.com/places-microservice/internal/repository/minio"
	"github.com/places-microservice/internal/repository/mongo"
	redisRepo "github.com/places-microservice/internal/repository/redis"
	"github.com/places-microservice/internal/usecase"
	"go.uber.org/zap"
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

	log.Info("Starting Places Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to MongoDB
	db, err := mongo.New(&cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}()
	log.Info("MongoDB connected")

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

	// 5. Connect to MinIO (опционально: без него выгрузки не архивируются)
	var minioClient *minio.Minio
	if cfg.Minio.Enabled {
		minioClient, err = minio.New(&cfg.Minio, log)
		if err != nil {
			log.Fatal("Failed to connect to MinIO", zap.Error(err))
		}
		log.Info("MinIO connected")
	} else {
		log.Info("MinIO disabled, uploads will not be archived")
	}

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("MongoDB health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize Repositories
	placeRepo := mongo.NewPlaceRepository(db)
	statsRepo := mongo.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)

	var archiveRepo repository.ArchiveRepository
	if minioClient != nil {
		archiveRepo = minio.NewArchiveRepository(minioClient)
	}

	// Текстовый и 2dsphere индексы нужны поиску: без них $text и $geoNear не работают
	if err := placeRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to ensure MongoDB indexes", zap.Error(err))
	}
	log.Info("MongoDB indexes ensured")

	log.Info("Repositories initialized")

	// 8. Initialize Use Cases
	uploadUC := usecase.NewUploadUseCase(
		placeRepo,
		streamRepo,
		archiveRepo,
		cacheRepo,
		log,
		cfg.Upload.MaxFileSize,
		cfg.Upload.SyncThreshold,
		cfg.Worker.IngestBatchSize,
	)

	searchUC := usecase.NewSearchUseCase(
		placeRepo,
		cacheRepo,
		log,
		cfg.Cache.SearchCacheTTL,
	)

	geoUC := usecase.NewGeoUseCase(placeRepo, log)

	placeUC := usecase.NewPlaceUseCase(placeRepo, log)

	statsUC := usecase.NewStatsUseCase(
		statsRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	uploadHandler := handler.NewUploadHandler(uploadUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, geoUC, log)
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	healthChecks := []httpDelivery.HealthCheck{
		{Name: "mongo", Check: db.Health},
		{Name: "redis", Check: redisClient.Health},
	}
	if minioClient != nil {
		healthChecks = append(healthChecks, httpDelivery.HealthCheck{Name: "minio", Check: minioClient.Health})
	}

	server := httpDelivery.NewServer(
		cfg,
		log,
		uploadHandler,
		searchHandler,
		placeHandler,
		statsHandler,
		healthChecks...,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
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
