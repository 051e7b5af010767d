package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/kml"
	"github.com/places-microservice/internal/usecase/dto"
)

const (
	defaultMaxFileSize     = 10 << 20
	defaultSyncThreshold   = 500
	defaultIngestBatch     = 100
	defaultUploadListLimit = 50
)

// UploadUseCase - usecase загрузки KML файлов с местами.
// archiveRepo может быть nil, если объектное хранилище не сконфигурировано.
type UploadUseCase struct {
	placeRepo     repository.PlaceRepository
	streamRepo    repository.StreamRepository
	archiveRepo   repository.ArchiveRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	maxFileSize   int
	syncThreshold int
	batchSize     int
}

// NewUploadUseCase создает новый UploadUseCase
func NewUploadUseCase(
	placeRepo repository.PlaceRepository,
	streamRepo repository.StreamRepository,
	archiveRepo repository.ArchiveRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	maxFileSize, syncThreshold, batchSize int,
) *UploadUseCase {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	if syncThreshold <= 0 {
		syncThreshold = defaultSyncThreshold
	}
	if batchSize <= 0 {
		batchSize = defaultIngestBatch
	}
	return &UploadUseCase{
		placeRepo:     placeRepo,
		streamRepo:    streamRepo,
		archiveRepo:   archiveRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		maxFileSize:   maxFileSize,
		syncThreshold: syncThreshold,
		batchSize:     batchSize,
	}
}

// Upload разбирает KML и сохраняет места. Маленькие выгрузки пишутся
// синхронно, большие режутся на батчи и уходят в Redis Stream на фоновую
// вставку воркером.
func (uc *UploadUseCase) Upload(ctx context.Context, filename string, data []byte) (*dto.UploadResponse, error) {
	if len(data) == 0 {
		return nil, errors.ErrEmptyKML
	}
	if len(data) > uc.maxFileSize {
		return nil, errors.ErrFileTooLarge.WithDetails(map[string]interface{}{
			"size_bytes": len(data),
			"max_bytes":  uc.maxFileSize,
		})
	}

	result, err := kml.Parse(data)
	if err != nil {
		return nil, errors.ErrInvalidKML.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	if len(result.Placemarks) == 0 {
		return nil, errors.ErrEmptyKML
	}

	uploadID := uuid.New()
	uc.archiveUpload(ctx, uploadID, filename, data, len(result.Placemarks))

	if len(result.Placemarks) <= uc.syncThreshold {
		return uc.insertSync(ctx, uploadID, result)
	}
	return uc.publishBatches(ctx, uploadID, filename, result)
}

// archiveUpload сохраняет исходный файл best effort: ошибка хранилища не валит загрузку
func (uc *UploadUseCase) archiveUpload(ctx context.Context, uploadID uuid.UUID, filename string, data []byte, places int) {
	if uc.archiveRepo == nil {
		return
	}

	archive := &domain.UploadArchive{
		UploadID:   uploadID.String(),
		Filename:   filename,
		SizeBytes:  int64(len(data)),
		Places:     places,
		UploadedAt: time.Now().UTC(),
	}
	if err := uc.archiveRepo.Store(ctx, archive, data); err != nil {
		uc.logger.Warn("failed to archive upload",
			zap.String("upload_id", uploadID.String()),
			zap.Error(err))
	}
}

func (uc *UploadUseCase) insertSync(ctx context.Context, uploadID uuid.UUID, result *kml.ParseResult) (*dto.UploadResponse, error) {
	places := make([]*domain.Place, 0, len(result.Placemarks))
	for _, pm := range result.Placemarks {
		places = append(places, domain.NewPlace(pm.Name, pm.Description, pm.Longitude, pm.Latitude))
	}

	inserted, err := uc.placeRepo.InsertMany(ctx, places)
	if err != nil {
		return nil, err
	}

	uc.invalidateCaches(ctx)

	uc.logger.Info("KML upload inserted",
		zap.String("upload_id", uploadID.String()),
		zap.Int("inserted", inserted),
		zap.Int("skipped", result.Skipped))

	return &dto.UploadResponse{
		Status:          dto.StatusOK,
		UploadID:        uploadID.String(),
		TotalPlacemarks: len(result.Placemarks),
		Inserted:        inserted,
		Skipped:         result.Skipped,
		Coverage:        coverageFromPlacemarks(result.Placemarks),
	}, nil
}

func (uc *UploadUseCase) publishBatches(ctx context.Context, uploadID uuid.UUID, filename string, result *kml.ParseResult) (*dto.UploadResponse, error) {
	inputs := make([]domain.PlaceInput, 0, len(result.Placemarks))
	for _, pm := range result.Placemarks {
		inputs = append(inputs, domain.PlaceInput{
			Name:        pm.Name,
			Description: pm.Description,
			Coordinates: [2]float64{pm.Longitude, pm.Latitude},
		})
	}

	totalBatches := (len(inputs) + uc.batchSize - 1) / uc.batchSize
	for i := 0; i < totalBatches; i++ {
		start := i * uc.batchSize
		end := start + uc.batchSize
		if end > len(inputs) {
			end = len(inputs)
		}

		event := &domain.PlaceIngestEvent{
			UploadID:     uploadID,
			Filename:     filename,
			Batch:        i + 1,
			TotalBatches: totalBatches,
			Places:       inputs[start:end],
		}
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamPlacesIngest, event); err != nil {
			uc.logger.Error("failed to publish ingest batch",
				zap.String("upload_id", uploadID.String()),
				zap.Int("batch", i+1),
				zap.Error(err))
			return nil, err
		}
	}

	uc.logger.Info("KML upload queued",
		zap.String("upload_id", uploadID.String()),
		zap.Int("places", len(inputs)),
		zap.Int("batches", totalBatches),
		zap.Int("skipped", result.Skipped))

	return &dto.UploadResponse{
		Status:          dto.StatusQueued,
		UploadID:        uploadID.String(),
		TotalPlacemarks: len(result.Placemarks),
		Skipped:         result.Skipped,
		Batches:         totalBatches,
		Coverage:        coverageFromPlacemarks(result.Placemarks),
	}, nil
}

// ListUploads возвращает сохранённые в архиве выгрузки, свежие первыми
func (uc *UploadUseCase) ListUploads(ctx context.Context, limit int) (*dto.UploadListResponse, error) {
	if uc.archiveRepo == nil {
		return nil, errors.ErrStorageUnavailable
	}
	if limit <= 0 {
		limit = defaultUploadListLimit
	}

	uploads, err := uc.archiveRepo.List(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list uploads", zap.Error(err))
		return nil, err
	}

	return &dto.UploadListResponse{
		Uploads: uploads,
		Total:   len(uploads),
	}, nil
}

// DownloadUpload возвращает метаданные и исходное содержимое выгрузки
func (uc *UploadUseCase) DownloadUpload(ctx context.Context, uploadID string) (*domain.UploadArchive, []byte, error) {
	if uc.archiveRepo == nil {
		return nil, nil, errors.ErrStorageUnavailable
	}
	if _, err := uuid.Parse(uploadID); err != nil {
		return nil, nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"upload_id": uploadID,
		})
	}

	archive, data, err := uc.archiveRepo.Download(ctx, uploadID)
	if err != nil {
		return nil, nil, err
	}
	return archive, data, nil
}

// invalidateCaches сбрасывает поисковый кеш и кеш статистики после записи мест
func (uc *UploadUseCase) invalidateCaches(ctx context.Context) {
	for _, pattern := range []string{"search:*", "stats:*"} {
		if err := uc.cacheRepo.DeleteByPattern(ctx, pattern); err != nil {
			uc.logger.Warn("failed to invalidate cache",
				zap.String("pattern", pattern),
				zap.Error(err))
		}
	}
}

// coverageFromPlacemarks считает bounding box загруженных точек
func coverageFromPlacemarks(marks []kml.Placemark) *domain.CoverageStats {
	if len(marks) == 0 {
		return nil
	}

	minLon, minLat := marks[0].Longitude, marks[0].Latitude
	maxLon, maxLat := minLon, minLat
	for _, pm := range marks[1:] {
		if pm.Longitude < minLon {
			minLon = pm.Longitude
		}
		if pm.Longitude > maxLon {
			maxLon = pm.Longitude
		}
		if pm.Latitude < minLat {
			minLat = pm.Latitude
		}
		if pm.Latitude > maxLat {
			maxLat = pm.Latitude
		}
	}
	return domain.ComputeCoverage(minLon, minLat, maxLon, maxLat)
}
