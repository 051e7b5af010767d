package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
)

// PlaceUseCase - use case для работы с отдельными местами
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

// NewPlaceUseCase - создание нового PlaceUseCase
func NewPlaceUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// GetPlace возвращает место по ID
func (uc *PlaceUseCase) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return place, nil
}
