package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/pkg/validator"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// SearchHandler - обработчик для поисковых запросов
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	geoUC    *usecase.GeoUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, geoUC *usecase.GeoUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		geoUC:    geoUC,
		logger:   logger,
	}
}

// SearchPlaces godoc
// @Summary Полнотекстовый поиск мест
// @Description Выполняет полнотекстовый поиск по названиям и описаниям мест с пагинацией. Результаты отсортированы по названию.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchPlacesRequest true "Поисковый запрос"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchPlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places/search [post]
func (h *SearchHandler) SearchPlaces(c *fiber.Ctx) error {
	var req dto.SearchPlacesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	// Выполнение use case
	result, err := h.searchUC.SearchPlaces(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Skip:  req.Skip,
		Limit: req.Limit,
	})
}

// PlacesAround godoc
// @Summary Поиск мест рядом с точкой
// @Description Возвращает места в заданном радиусе от точки, отсортированные по расстоянию. Координаты передаются в порядке GeoJSON: [долгота, широта].
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.PlacesAroundRequest true "Координаты точки и радиус поиска в метрах"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacesAroundResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places/around [post]
func (h *SearchHandler) PlacesAround(c *fiber.Ctx) error {
	var req dto.PlacesAroundRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geoUC.PlacesAround(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
