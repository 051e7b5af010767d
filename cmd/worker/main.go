package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/pkg/logger"
	"github.com/places-microservice/internal/repository/cache"
	"github.com/places-microservice/internal/repository/mongo"
	redisRepo "github.com/places-microservice/internal/repository/redis"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/worker"
	"github.com/places-microservice/internal/worker/ingest"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Ingest Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Duration("stream_read_timeout", cfg.Worker.StreamReadTimeout))

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

	// 4. Connect to Redis (кеш и отдельный клиент под стримы)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	streamsClient, err := cache.NewStreamsClient(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis Streams", zap.Error(err))
	}
	defer func() {
		if err := streamsClient.Close(); err != nil {
			log.Error("Failed to close Redis Streams connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	placeRepo := mongo.NewPlaceRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(streamsClient, cfg.Worker.StreamReadTimeout, log)

	// Воркер может писать в свежую коллекцию раньше API
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := placeRepo.EnsureIndexes(ctx); err != nil {
			cancel()
			log.Fatal("Failed to ensure indexes", zap.Error(err))
		}
		cancel()
	}

	// 6. Initialize use cases
	ingestUC := usecase.NewIngestUseCase(placeRepo, cacheRepo, log)

	// 7. Initialize workers
	ingestWorker := ingest.NewIngestWorker(
		streamRepo,
		ingestUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(ingestWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
