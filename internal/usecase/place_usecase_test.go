package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	pkgerrors "github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/usecase"
)

func TestPlaceUseCase_GetPlace(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns place by id", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockPlace, logger)

		id := primitive.NewObjectID()
		place := &domain.Place{
			ID:   id,
			Name: "Camp Nou",
			Geo:  domain.NewGeoPoint(2.1228, 41.3809),
		}
		mockPlace.On("GetByID", ctx, id.Hex()).Return(place, nil)

		got, err := uc.GetPlace(ctx, id.Hex())

		assert.NoError(t, err)
		assert.Equal(t, place, got)

		mockPlace.AssertExpectations(t)
	})

	t.Run("not found is propagated", func(t *testing.T) {
		mockPlace := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockPlace, logger)

		id := primitive.NewObjectID().Hex()
		mockPlace.On("GetByID", ctx, id).Return(nil, pkgerrors.ErrPlaceNotFound)

		got, err := uc.GetPlace(ctx, id)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, pkgerrors.ErrPlaceNotFound)
	})
}
