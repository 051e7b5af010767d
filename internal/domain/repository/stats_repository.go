package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// StatsRepository интерфейс для работы со статистикой
type StatsRepository interface {
	// GetStatistics собирает статистику коллекции, индексов и покрытия
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
