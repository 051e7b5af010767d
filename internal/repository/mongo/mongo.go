package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/places-microservice/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *zap.Logger
}

func New(cfg *config.MongoConfig, logger *zap.Logger) (*DB, error) {
	uri := fmt.Sprintf("mongodb://%s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
	if cfg.User != "" {
		uri = fmt.Sprintf(
			"mongodb://%s:%s@%s:%d/%s",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
		)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("MongoDB connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
	)

	return &DB{
		client:   client,
		database: client.Database(cfg.DBName),
		logger:   logger,
	}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing MongoDB connection")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.client.Disconnect(ctx)
}

func (db *DB) Health(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

func (db *DB) Database() *mongo.Database {
	return db.database
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}
