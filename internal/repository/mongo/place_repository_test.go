package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/errors"
	mongorepo "github.com/places-microservice/internal/repository/mongo"
)

// PlaceRepositorySuite tests the place repository with a real MongoDB
type PlaceRepositorySuite struct {
	suite.Suite
	db        *mongorepo.DB
	repo      repository.PlaceRepository
	statsRepo repository.StatsRepository
	ctx       context.Context
}

// SetupSuite runs once before all tests
func (s *PlaceRepositorySuite) SetupSuite() {
	cfg := &config.MongoConfig{
		Host:                   "localhost",
		Port:                   27017,
		DBName:                 "places_test",
		ServerSelectionTimeout: 2 * time.Second,
	}

	db, err := mongorepo.New(cfg, zap.NewNop())
	if err != nil {
		s.T().Skipf("MongoDB not available for integration tests: %v", err)
	}

	s.db = db
	s.repo = mongorepo.NewPlaceRepository(db)
	s.statsRepo = mongorepo.NewStatsRepository(db, zap.NewNop())

	// Текстовый поиск не работает без текстового индекса
	s.Require().NoError(s.repo.EnsureIndexes(context.Background()))
}

// TearDownSuite runs once after all tests
func (s *PlaceRepositorySuite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Database().Drop(context.Background())
		_ = s.db.Close()
	}
}

// SetupTest runs before each test
func (s *PlaceRepositorySuite) SetupTest() {
	s.ctx = context.Background()

	// Чистим документы между тестами, индексы сохраняются
	_, err := s.db.Collection("places").DeleteMany(s.ctx, bson.M{})
	s.Require().NoError(err)
}

func (s *PlaceRepositorySuite) seedPlaces() {
	places := []*domain.Place{
		domain.NewPlace("Sagrada Familia", "Famous basilica by Gaudi", 2.1744, 41.4036),
		domain.NewPlace("Park Guell", "Park with mosaic works by Gaudi", 2.1527, 41.4145),
		domain.NewPlace("Camp Nou", "Football stadium", 2.1228, 41.3809),
	}

	inserted, err := s.repo.InsertMany(s.ctx, places)
	s.Require().NoError(err)
	s.Require().Equal(3, inserted)
}

func (s *PlaceRepositorySuite) TestInsertMany_Empty() {
	inserted, err := s.repo.InsertMany(s.ctx, nil)
	s.NoError(err)
	s.Equal(0, inserted)
}

func (s *PlaceRepositorySuite) TestEnsureIndexes_Idempotent() {
	// Повторный вызов с теми же ключами не должен падать
	s.NoError(s.repo.EnsureIndexes(s.ctx))

	stats, err := s.statsRepo.GetStatistics(s.ctx)
	s.Require().NoError(err)

	names := make([]string, 0, len(stats.Indexes))
	for _, idx := range stats.Indexes {
		names = append(names, idx.Name)
	}
	s.Contains(names, "_id_")
	s.Contains(names, "geo_2dsphere")
	s.Contains(names, "name_text_description_text")
}

func (s *PlaceRepositorySuite) TestSearchByText() {
	s.seedPlaces()

	places, err := s.repo.SearchByText(s.ctx, "Gaudi", 0, 10)
	s.Require().NoError(err)
	s.Require().Len(places, 2)

	// Сортировка по имени по возрастанию
	s.Equal("Park Guell", places[0].Name)
	s.Equal("Sagrada Familia", places[1].Name)
}

func (s *PlaceRepositorySuite) TestSearchByText_SkipAndLimit() {
	s.seedPlaces()

	places, err := s.repo.SearchByText(s.ctx, "Gaudi", 1, 10)
	s.Require().NoError(err)
	s.Require().Len(places, 1)
	s.Equal("Sagrada Familia", places[0].Name)

	places, err = s.repo.SearchByText(s.ctx, "Gaudi", 0, 1)
	s.Require().NoError(err)
	s.Require().Len(places, 1)
	s.Equal("Park Guell", places[0].Name)
}

func (s *PlaceRepositorySuite) TestSearchByText_NoMatches() {
	s.seedPlaces()

	places, err := s.repo.SearchByText(s.ctx, "nonexistent", 0, 10)
	s.NoError(err)
	s.Empty(places)
}

func (s *PlaceRepositorySuite) TestGetByID() {
	s.seedPlaces()

	found, err := s.repo.SearchByText(s.ctx, "stadium", 0, 1)
	s.Require().NoError(err)
	s.Require().Len(found, 1)

	place, err := s.repo.GetByID(s.ctx, found[0].ID.Hex())
	s.Require().NoError(err)
	s.Equal("Camp Nou", place.Name)
	s.Equal(domain.GeoTypePoint, place.Geo.Type)
	s.InDelta(2.1228, place.Geo.Longitude(), 0.0001)
	s.InDelta(41.3809, place.Geo.Latitude(), 0.0001)
}

func (s *PlaceRepositorySuite) TestGetByID_NotFound() {
	place, err := s.repo.GetByID(s.ctx, primitive.NewObjectID().Hex())
	s.ErrorIs(err, errors.ErrPlaceNotFound)
	s.Nil(place)
}

func (s *PlaceRepositorySuite) TestGetByID_InvalidID() {
	place, err := s.repo.GetByID(s.ctx, "not-a-hex-id")
	s.ErrorIs(err, errors.ErrInvalidPlaceID)
	s.Nil(place)
}

func (s *PlaceRepositorySuite) TestSearchNearby() {
	s.seedPlaces()

	// Точка у Саграды Фамилии, радиус 3 км покрывает и парк Гуэля
	places, err := s.repo.SearchNearby(s.ctx, 2.1744, 41.4036, 3000, 10)
	s.Require().NoError(err)
	s.Require().Len(places, 2)

	// Результаты отсортированы по расстоянию
	s.Equal("Sagrada Familia", places[0].Name)
	s.Less(places[0].Distance, 10.0)
	s.Equal("Park Guell", places[1].Name)
	s.Greater(places[1].Distance, 1000.0)
}

func (s *PlaceRepositorySuite) TestSearchNearby_Limit() {
	s.seedPlaces()

	places, err := s.repo.SearchNearby(s.ctx, 2.1744, 41.4036, 10000, 1)
	s.Require().NoError(err)
	s.Require().Len(places, 1)
	s.Equal("Sagrada Familia", places[0].Name)
}

func (s *PlaceRepositorySuite) TestSearchNearby_OutsideRadius() {
	s.seedPlaces()

	// Точка в центре Барселоны, радиус 100 м - ни одного места рядом
	places, err := s.repo.SearchNearby(s.ctx, 2.1700, 41.3870, 100, 10)
	s.NoError(err)
	s.Empty(places)
}

func (s *PlaceRepositorySuite) TestStatistics() {
	s.seedPlaces()

	// Место без описания не попадает в счётчик описанных
	_, err := s.repo.InsertMany(s.ctx, []*domain.Place{
		domain.NewPlace("Bunkers del Carmel", "", 2.1615, 41.4050),
	})
	s.Require().NoError(err)

	stats, err := s.statsRepo.GetStatistics(s.ctx)
	s.Require().NoError(err)

	s.Equal(int64(4), stats.TotalPlaces)
	s.Equal(int64(3), stats.DescribedPlaces)
	s.Greater(stats.StorageBytes, int64(0))
	s.GreaterOrEqual(len(stats.Indexes), 3)
	s.False(stats.LastUpdated.IsZero())

	for _, idx := range stats.Indexes {
		s.Greater(idx.SizeBytes, int64(0), "index %s should have a size", idx.Name)
	}

	s.Require().NotNil(stats.Coverage)
	s.InDelta(2.1228, stats.Coverage.BBoxMinLon, 0.0001)
	s.InDelta(2.1744, stats.Coverage.BBoxMaxLon, 0.0001)
	s.InDelta(41.3809, stats.Coverage.BBoxMinLat, 0.0001)
	s.InDelta(41.4145, stats.Coverage.BBoxMaxLat, 0.0001)
	s.Greater(stats.Coverage.DiagonalM, 0.0)
}

func (s *PlaceRepositorySuite) TestStatistics_EmptyCollection() {
	stats, err := s.statsRepo.GetStatistics(s.ctx)
	s.Require().NoError(err)

	s.Equal(int64(0), stats.TotalPlaces)
	s.Equal(int64(0), stats.DescribedPlaces)
	s.Nil(stats.Coverage)
}

func TestPlaceRepositorySuite(t *testing.T) {
	suite.Run(t, new(PlaceRepositorySuite))
}
