package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/usecase"
	"go.uber.org/zap"
)

// PlaceHandler - обработчик для запросов отдельных мест
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// GetPlace godoc
// @Summary Получение места по ID
// @Description Возвращает место по его идентификатору MongoDB (24-символьный hex)
// @Tags Places
// @Accept json
// @Produce json
// @Param id path string true "ID места"
// @Success 200 {object} utils.SuccessResponse{data=domain.Place}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places/{id} [get]
func (h *PlaceHandler) GetPlace(c *fiber.Ctx) error {
	id := c.Params("id")

	place, err := h.placeUC.GetPlace(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, nil)
}
