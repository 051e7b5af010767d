package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/usecase/dto"
)

const defaultSearchLimit = 20

// SearchUseCase - use case полнотекстового поиска мест
type SearchUseCase struct {
	placeRepo repository.PlaceRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		placeRepo: placeRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// SearchPlaces - поиск мест по словам в имени и описании, с кешированием
func (uc *SearchUseCase) SearchPlaces(ctx context.Context, req dto.SearchPlacesRequest) (*dto.SearchPlacesResponse, error) {
	// Установка значений по умолчанию
	if req.Limit == 0 {
		req.Limit = defaultSearchLimit
	}

	cacheKey := uc.buildCacheKey(req)

	// Пытаемся получить из кеша
	if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		var response dto.SearchPlacesResponse
		if err := json.Unmarshal(cached, &response); err == nil {
			uc.logger.Debug("search cache hit", zap.String("key", cacheKey))
			return &response, nil
		}
	} else if err != nil {
		uc.logger.Warn("failed to get search results from cache", zap.Error(err))
	}

	places, err := uc.placeRepo.SearchByText(ctx, req.SearchWords, int64(req.Skip), int64(req.Limit))
	if err != nil {
		uc.logger.Error("Failed to search places", zap.Error(err))
		return nil, err
	}

	response := &dto.SearchPlacesResponse{
		Results: places,
		Total:   len(places),
	}

	// Кешируем результат
	if data, err := json.Marshal(response); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("failed to cache search results", zap.Error(err))
		}
	}

	return response, nil
}

// buildCacheKey строит ключ кеша из нормализованных параметров запроса
func (uc *SearchUseCase) buildCacheKey(req dto.SearchPlacesRequest) string {
	params := fmt.Sprintf("%s|%d|%d",
		strings.ToLower(strings.TrimSpace(req.SearchWords)),
		req.Skip,
		req.Limit,
	)
	hash := fmt.Sprintf("%x", md5.Sum([]byte(params)))
	return fmt.Sprintf("search:places:%s", hash)
}
