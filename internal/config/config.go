package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Minio  MinioConfig
	Cache  CacheConfig
	Upload UploadConfig
	Log    LogConfig
	Worker WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type MongoConfig struct {
	Host                   string
	Port                   int
	User                   string
	Password               string
	DBName                 string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type MinioConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
	StatsCacheTTL  time.Duration
}

type UploadConfig struct {
	MaxFileSize   int
	SyncThreshold int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	IngestBatchSize   int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			CORSOrigins: viper.GetString("CORS_ORIGINS"),
		},
		Mongo: MongoConfig{
			Host:                   viper.GetString("MONGO_HOST"),
			Port:                   viper.GetInt("MONGO_PORT"),
			User:                   viper.GetString("MONGO_USER"),
			Password:               viper.GetString("MONGO_PASSWORD"),
			DBName:                 viper.GetString("MONGO_DB"),
			ConnectTimeout:         time.Duration(viper.GetInt("MONGO_CONNECT_TIMEOUT")) * time.Second,
			ServerSelectionTimeout: time.Duration(viper.GetInt("MONGO_SERVER_SELECTION_TIMEOUT")) * time.Millisecond,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Minio: MinioConfig{
			Enabled:   viper.GetBool("MINIO_ENABLED"),
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
			StatsCacheTTL:  time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Upload: UploadConfig{
			MaxFileSize:   viper.GetInt("UPLOAD_MAX_FILE_SIZE"),
			SyncThreshold: viper.GetInt("UPLOAD_SYNC_THRESHOLD"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
			IngestBatchSize:   viper.GetInt("WORKER_INGEST_BATCH_SIZE"),
		},
	}

	// Set default values if not provided
	if cfg.Server.CORSOrigins == "" {
		cfg.Server.CORSOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if cfg.Mongo.Port == 0 {
		cfg.Mongo.Port = 27017
	}
	if cfg.Mongo.ConnectTimeout == 0 {
		cfg.Mongo.ConnectTimeout = 5 * time.Second
	}
	if cfg.Mongo.ServerSelectionTimeout == 0 {
		cfg.Mongo.ServerSelectionTimeout = 5000 * time.Millisecond
	}
	if cfg.Cache.SearchCacheTTL == 0 {
		cfg.Cache.SearchCacheTTL = 60 * time.Second
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 3600 * time.Second
	}
	if cfg.Upload.MaxFileSize == 0 {
		cfg.Upload.MaxFileSize = 10 << 20
	}
	if cfg.Upload.SyncThreshold == 0 {
		cfg.Upload.SyncThreshold = 500
	}
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "kml-uploads"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "places-ingest-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.IngestBatchSize == 0 {
		cfg.Worker.IngestBatchSize = 100
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetMongoURI() string {
	if c.Mongo.User != "" {
		return fmt.Sprintf(
			"mongodb://%s:%s@%s:%d/%s",
			c.Mongo.User,
			c.Mongo.Password,
			c.Mongo.Host,
			c.Mongo.Port,
			c.Mongo.DBName,
		)
	}
	return fmt.Sprintf("mongodb://%s:%d/%s", c.Mongo.Host, c.Mongo.Port, c.Mongo.DBName)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
