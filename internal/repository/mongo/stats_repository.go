package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
)

type statsRepository struct {
	db         *DB
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:         db,
		collection: db.Collection(placesCollection),
		logger:     logger,
	}
}

// GetStatistics собирает статистику коллекции мест: размеры из collStats,
// число описанных мест, описание индексов и покрытие территории
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		LastUpdated: time.Now().UTC(),
	}

	// Получаем размеры коллекции и индексов
	indexSizes, err := r.getCollectionStats(ctx, stats)
	if err != nil {
		// Коллекции может ещё не быть - отдаём нулевые размеры
		r.logger.Warn("failed to get collection stats", zap.Error(err))
	}

	// Считаем места с непустым описанием
	described, err := r.getDescribedCount(ctx)
	if err != nil {
		r.logger.Error("failed to count described places", zap.Error(err))
		return nil, fmt.Errorf("count described places: %w", err)
	}
	stats.DescribedPlaces = described

	// Получаем описание индексов
	indexes, err := r.getIndexInfo(ctx, indexSizes)
	if err != nil {
		r.logger.Error("failed to get index info", zap.Error(err))
		return nil, fmt.Errorf("get index info: %w", err)
	}
	stats.Indexes = indexes

	// Получаем покрытие территории
	coverage, err := r.getCoverageStats(ctx)
	if err != nil {
		r.logger.Error("failed to get coverage stats", zap.Error(err))
		return nil, fmt.Errorf("get coverage stats: %w", err)
	}
	stats.Coverage = coverage

	return stats, nil
}

// getCollectionStats читает collStats коллекции мест, возвращает размеры
// индексов по именам
func (r *statsRepository) getCollectionStats(ctx context.Context, stats *domain.Statistics) (map[string]int64, error) {
	var collStats struct {
		Count          int64            `bson:"count"`
		Size           int64            `bson:"size"`
		AvgObjSize     int64            `bson:"avgObjSize"`
		TotalIndexSize int64            `bson:"totalIndexSize"`
		IndexSizes     map[string]int64 `bson:"indexSizes"`
	}

	cmd := bson.D{{Key: "collStats", Value: placesCollection}}
	if err := r.db.Database().RunCommand(ctx, cmd).Decode(&collStats); err != nil {
		return nil, fmt.Errorf("run collStats: %w", err)
	}

	stats.TotalPlaces = collStats.Count
	stats.StorageBytes = collStats.Size
	stats.AvgPlaceBytes = collStats.AvgObjSize
	stats.IndexSizeBytes = collStats.TotalIndexSize

	return collStats.IndexSizes, nil
}

func (r *statsRepository) getDescribedCount(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"description": bson.M{"$ne": ""}})
	if err != nil {
		return 0, fmt.Errorf("count described documents: %w", err)
	}
	return count, nil
}

// getIndexInfo возвращает имена, ключи и размеры индексов коллекции
func (r *statsRepository) getIndexInfo(ctx context.Context, sizes map[string]int64) ([]domain.IndexInfo, error) {
	specs, err := r.collection.Indexes().ListSpecifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list index specifications: %w", err)
	}

	indexes := make([]domain.IndexInfo, 0, len(specs))
	for _, spec := range specs {
		keys := make(map[string]interface{})
		if err := bson.Unmarshal(spec.KeysDocument, &keys); err != nil {
			r.logger.Warn("failed to decode index keys",
				zap.String("index", spec.Name),
				zap.Error(err))
		}

		indexes = append(indexes, domain.IndexInfo{
			Name:      spec.Name,
			Keys:      keys,
			SizeBytes: sizes[spec.Name],
		})
	}

	return indexes, nil
}

// getCoverageStats агрегирует ограничивающий прямоугольник по координатам
// всех мест. Для пустой коллекции возвращает nil.
func (r *statsRepository) getCoverageStats(ctx context.Context) (*domain.CoverageStats, error) {
	lonExpr := bson.D{{Key: "$arrayElemAt", Value: bson.A{"$geo.coordinates", 0}}}
	latExpr := bson.D{{Key: "$arrayElemAt", Value: bson.A{"$geo.coordinates", 1}}}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "minLon", Value: bson.D{{Key: "$min", Value: lonExpr}}},
			{Key: "minLat", Value: bson.D{{Key: "$min", Value: latExpr}}},
			{Key: "maxLon", Value: bson.D{{Key: "$max", Value: lonExpr}}},
			{Key: "maxLat", Value: bson.D{{Key: "$max", Value: latExpr}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate coverage: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		MinLon float64 `bson:"minLon"`
		MinLat float64 `bson:"minLat"`
		MaxLon float64 `bson:"maxLon"`
		MaxLat float64 `bson:"maxLat"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode coverage: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	box := results[0]
	return domain.ComputeCoverage(box.MinLon, box.MinLat, box.MaxLon, box.MaxLat), nil
}
