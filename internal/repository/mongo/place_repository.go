package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/errors"
)

const placesCollection = "places"

type placeRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		collection: db.Collection(placesCollection),
		logger:     db.logger,
	}
}

func (r *placeRepository) InsertMany(ctx context.Context, places []*domain.Place) (int, error) {
	if len(places) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(places))
	for _, place := range places {
		docs = append(docs, place)
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		r.logger.Error("Failed to insert places", zap.Int("count", len(places)), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return len(result.InsertedIDs), nil
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.ErrInvalidPlaceID
	}

	var place domain.Place
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&place)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) SearchByText(ctx context.Context, query string, skip, limit int64) ([]*domain.Place, error) {
	filter := bson.M{"$text": bson.M{"$search": query}}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to search places", zap.String("query", query), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer cursor.Close(ctx)

	places := make([]*domain.Place, 0)
	if err := cursor.All(ctx, &places); err != nil {
		r.logger.Error("Failed to decode search results", zap.String("query", query), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

// SearchNearby выполняет $geoNear поиск. Стадия $geoNear обязана быть
// первой в пайплайне, maxDistance задаётся в метрах.
func (r *placeRepository) SearchNearby(ctx context.Context, lon, lat, radiusM float64, limit int64) ([]*domain.PlaceWithDistance, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: domain.NewGeoPoint(lon, lat)},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: radiusM},
			{Key: "spherical", Value: true},
		}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error("Failed to search nearby places",
			zap.Float64("lon", lon),
			zap.Float64("lat", lat),
			zap.Float64("radius_m", radiusM),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer cursor.Close(ctx)

	places := make([]*domain.PlaceWithDistance, 0)
	if err := cursor.All(ctx, &places); err != nil {
		r.logger.Error("Failed to decode nearby results", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

// EnsureIndexes создаёт составной текстовый индекс по name и description
// и 2dsphere индекс по geo. Повторный вызов с теми же ключами - no-op.
func (r *placeRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
			},
		},
		{
			Keys: bson.D{{Key: "geo", Value: "2dsphere"}},
		},
	}

	names, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		r.logger.Error("Failed to create indexes", zap.Error(err))
		return errors.ErrDatabaseError
	}

	r.logger.Info("Indexes ensured", zap.Strings("indexes", names))
	return nil
}
