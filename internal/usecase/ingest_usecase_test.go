package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	pkgerrors "github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/usecase"
)

func testIngestEvent(batch, total int) *domain.PlaceIngestEvent {
	return &domain.PlaceIngestEvent{
		UploadID:     uuid.New(),
		Filename:     "city.kml",
		Batch:        batch,
		TotalBatches: total,
		Places: []domain.PlaceInput{
			{Name: "Sagrada Familia", Description: "Basilica", Coordinates: [2]float64{2.1744, 41.4036}},
			{Name: "Park Guell", Description: "Park", Coordinates: [2]float64{2.1527, 41.4145}},
		},
	}
}

func TestIngestUseCase_ProcessBatch(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("inserts batch and reports done", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewIngestUseCase(mockPlace, mockCache, logger)

		event := testIngestEvent(1, 3)
		mockPlace.On("InsertMany", ctx, mock.MatchedBy(func(places []*domain.Place) bool {
			return len(places) == 2 &&
				places[0].Name == "Sagrada Familia" &&
				places[0].Geo.Longitude() == 2.1744
		})).Return(2, nil)

		done, err := uc.ProcessBatch(ctx, event)

		assert.NoError(t, err)
		assert.Equal(t, event.UploadID, done.UploadID)
		assert.Equal(t, 1, done.Batch)
		assert.Equal(t, 2, done.Inserted)
		assert.Empty(t, done.Error)

		// Не последний батч: кеш не трогаем
		mockCache.AssertNotCalled(t, "DeleteByPattern", mock.Anything, mock.Anything)
		mockPlace.AssertExpectations(t)
	})

	t.Run("last batch invalidates caches", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewIngestUseCase(mockPlace, mockCache, logger)

		event := testIngestEvent(3, 3)
		mockPlace.On("InsertMany", ctx, mock.Anything).Return(2, nil)
		mockCache.On("DeleteByPattern", ctx, "search:*").Return(nil)
		mockCache.On("DeleteByPattern", ctx, "stats:*").Return(nil)

		done, err := uc.ProcessBatch(ctx, event)

		assert.NoError(t, err)
		assert.Equal(t, 3, done.Batch)

		mockCache.AssertExpectations(t)
	})

	t.Run("cache invalidation failure is not fatal", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewIngestUseCase(mockPlace, mockCache, logger)

		event := testIngestEvent(1, 1)
		mockPlace.On("InsertMany", ctx, mock.Anything).Return(2, nil)
		mockCache.On("DeleteByPattern", ctx, mock.AnythingOfType("string")).
			Return(pkgerrors.ErrCacheError)

		done, err := uc.ProcessBatch(ctx, event)

		assert.NoError(t, err)
		assert.Equal(t, 2, done.Inserted)
	})

	t.Run("insert error propagates to caller", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewIngestUseCase(mockPlace, mockCache, logger)

		event := testIngestEvent(2, 3)
		mockPlace.On("InsertMany", ctx, mock.Anything).Return(0, pkgerrors.ErrDatabaseError)

		done, err := uc.ProcessBatch(ctx, event)

		assert.Nil(t, done)
		assert.ErrorIs(t, err, pkgerrors.ErrDatabaseError)

		mockCache.AssertNotCalled(t, "DeleteByPattern", mock.Anything, mock.Anything)
	})
}
