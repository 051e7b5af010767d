package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
)

// IngestUseCase - use case фоновой вставки батчей мест из стрима
type IngestUseCase struct {
	placeRepo repository.PlaceRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

// NewIngestUseCase - создание нового IngestUseCase
func NewIngestUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		placeRepo: placeRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// ProcessBatch вставляет батч мест из события стрима. Ошибка вставки
// возвращается наружу: решение о ретраях принимает воркер.
func (uc *IngestUseCase) ProcessBatch(ctx context.Context, event *domain.PlaceIngestEvent) (*domain.PlaceIngestDoneEvent, error) {
	places := make([]*domain.Place, 0, len(event.Places))
	for _, in := range event.Places {
		places = append(places, in.ToPlace())
	}

	inserted, err := uc.placeRepo.InsertMany(ctx, places)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ingest batch inserted",
		zap.String("upload_id", event.UploadID.String()),
		zap.Int("batch", event.Batch),
		zap.Int("total_batches", event.TotalBatches),
		zap.Int("inserted", inserted))

	// После последнего батча выгрузки сбрасываем кеши
	if event.IsLast() {
		uc.invalidateCaches(ctx)
	}

	return &domain.PlaceIngestDoneEvent{
		UploadID: event.UploadID,
		Batch:    event.Batch,
		Inserted: inserted,
	}, nil
}

func (uc *IngestUseCase) invalidateCaches(ctx context.Context) {
	for _, pattern := range []string{"search:*", "stats:*"} {
		if err := uc.cacheRepo.DeleteByPattern(ctx, pattern); err != nil {
			uc.logger.Warn("failed to invalidate cache",
				zap.String("pattern", pattern),
				zap.Error(err))
		}
	}
}
