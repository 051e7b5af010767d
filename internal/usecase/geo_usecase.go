package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/usecase/dto"
)

const (
	defaultAroundRadiusM = 1000.0
	defaultAroundLimit   = 100
)

// GeoUseCase - use case геопоиска мест вокруг точки
type GeoUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

// NewGeoUseCase - создание нового GeoUseCase
func NewGeoUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *GeoUseCase {
	return &GeoUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// PlacesAround - места в радиусе от точки, отсортированные по удалённости
func (uc *GeoUseCase) PlacesAround(ctx context.Context, req dto.PlacesAroundRequest) (*dto.PlacesAroundResponse, error) {
	lon, lat := req.Coordinates[0], req.Coordinates[1]
	if !utils.ValidateCoordinates(lon, lat) {
		return nil, errors.ErrInvalidCoordinates
	}

	// Установка значений по умолчанию
	if req.Radius == 0 {
		req.Radius = defaultAroundRadiusM
	}
	if !utils.ValidateRadius(req.Radius) {
		return nil, errors.ErrInvalidRadius.WithDetails(map[string]interface{}{
			"radius": req.Radius,
		})
	}
	if req.Limit == 0 {
		req.Limit = defaultAroundLimit
	}

	places, err := uc.placeRepo.SearchNearby(ctx, lon, lat, req.Radius, int64(req.Limit))
	if err != nil {
		uc.logger.Error("Failed to search places around point", zap.Error(err))
		return nil, err
	}

	return &dto.PlacesAroundResponse{
		Results: places,
		Total:   len(places),
	}, nil
}
