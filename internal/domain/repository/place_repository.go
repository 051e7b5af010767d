package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// PlaceRepository определяет методы для работы с местами
type PlaceRepository interface {
	// InsertMany сохраняет пачку мест, возвращает число вставленных
	InsertMany(ctx context.Context, places []*domain.Place) (int, error)

	// GetByID возвращает место по ID
	GetByID(ctx context.Context, id string) (*domain.Place, error)

	// SearchByText выполняет полнотекстовый поиск по имени и описанию
	SearchByText(ctx context.Context, query string, skip, limit int64) ([]*domain.Place, error)

	// SearchNearby возвращает места в радиусе от точки, с расстоянием в метрах
	SearchNearby(ctx context.Context, lon, lat, radiusM float64, limit int64) ([]*domain.PlaceWithDistance, error)

	// EnsureIndexes создаёт текстовый и геопространственный индексы
	EnsureIndexes(ctx context.Context) error
}
