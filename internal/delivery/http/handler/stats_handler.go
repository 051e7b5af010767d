package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика коллекции мест
// @Description Возвращает агрегированную статистику: количество мест, размеры хранилища и индексов, географический охват данных
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	ctx := c.Context()

	h.logger.Debug("Handling get statistics request")

	stats, err := h.statsUC.GetStatistics(ctx)
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// RefreshStatistics godoc
// @Summary Принудительное обновление статистики
// @Description Пересчитывает статистику из базы, минуя кеш, и прогревает кеш заново
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats/refresh [post]
func (h *StatsHandler) RefreshStatistics(c *fiber.Ctx) error {
	ctx := c.Context()

	stats, err := h.statsUC.RefreshStatistics(ctx)
	if err != nil {
		h.logger.Error("Failed to refresh statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
