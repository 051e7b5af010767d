package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// ArchiveRepository - интерфейс архива исходных KML файлов
type ArchiveRepository interface {
	// Store сохраняет исходный файл выгрузки
	Store(ctx context.Context, archive *domain.UploadArchive, data []byte) error

	// List возвращает сохранённые выгрузки, свежие первыми
	List(ctx context.Context, limit int) ([]*domain.UploadArchive, error)

	// Download возвращает метаданные и содержимое выгрузки
	Download(ctx context.Context, uploadID string) (*domain.UploadArchive, []byte, error)
}
