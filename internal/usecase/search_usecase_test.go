package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	pkgerrors "github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/usecase/dto"
)

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) InsertMany(ctx context.Context, places []*domain.Place) (int, error) {
	args := m.Called(ctx, places)
	return args.Int(0), args.Error(1)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) SearchByText(ctx context.Context, query string, skip, limit int64) ([]*domain.Place, error) {
	args := m.Called(ctx, query, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) SearchNearby(ctx context.Context, lon, lat, radiusM float64, limit int64) ([]*domain.PlaceWithDistance, error) {
	args := m.Called(ctx, lon, lat, radiusM, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlaceWithDistance), args.Error(1)
}

func (m *MockPlaceRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func testPlaces() []*domain.Place {
	return []*domain.Place{
		{
			ID:          primitive.NewObjectID(),
			Name:        "Park Guell",
			Description: "Park with mosaic works by Gaudi",
			Geo:         domain.NewGeoPoint(2.1527, 41.4145),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Sagrada Familia",
			Description: "Basilica designed by Gaudi",
			Geo:         domain.NewGeoPoint(2.1744, 41.4036),
		},
	}
}

func TestSearchUseCase_SearchPlaces(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("cache miss fetches from repository and caches", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(mockPlace, mockCache, logger, time.Minute)

		places := testPlaces()
		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockPlace.On("SearchByText", ctx, "gaudi", int64(0), int64(10)).Return(places, nil)
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Minute).Return(nil)

		resp, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{SearchWords: "gaudi", Limit: 10})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "Park Guell", resp.Results[0].Name)

		mockPlace.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(mockPlace, mockCache, logger, time.Minute)

		cached, err := json.Marshal(&dto.SearchPlacesResponse{
			Results: testPlaces(),
			Total:   2,
		})
		assert.NoError(t, err)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(cached, nil)

		resp, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{SearchWords: "gaudi", Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "Sagrada Familia", resp.Results[1].Name)

		// SearchByText не должен вызываться
		mockPlace.AssertNotCalled(t, "SearchByText", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache error falls through to repository", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(mockPlace, mockCache, logger, time.Minute)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, errors.New("redis down"))
		mockPlace.On("SearchByText", ctx, "gaudi", int64(0), int64(10)).Return(testPlaces(), nil)
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Minute).Return(nil)

		resp, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{SearchWords: "gaudi", Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Total)

		mockPlace.AssertExpectations(t)
	})

	t.Run("default limit applied", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(mockPlace, mockCache, logger, time.Minute)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockPlace.On("SearchByText", ctx, "gaudi", int64(5), int64(20)).Return([]*domain.Place{}, nil)
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Minute).Return(nil)

		resp, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{SearchWords: "gaudi", Skip: 5})

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Total)

		mockPlace.AssertExpectations(t)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSearchUseCase(mockPlace, mockCache, logger, time.Minute)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockPlace.On("SearchByText", ctx, "gaudi", int64(0), int64(20)).
			Return(nil, pkgerrors.ErrDatabaseError)

		resp, err := uc.SearchPlaces(ctx, dto.SearchPlacesRequest{SearchWords: "gaudi"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, pkgerrors.ErrDatabaseError)

		mockPlace.AssertExpectations(t)
	})
}
