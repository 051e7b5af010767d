package handler

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/usecase"
	"go.uber.org/zap"
)

// UploadHandler - обработчик загрузки KML файлов и архива выгрузок
type UploadHandler struct {
	uploadUC *usecase.UploadUseCase
	logger   *zap.Logger
}

// NewUploadHandler - создание нового UploadHandler
func NewUploadHandler(uploadUC *usecase.UploadUseCase, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUC: uploadUC,
		logger:   logger,
	}
}

// Upload godoc
// @Summary Загрузка KML файла с местами
// @Description Принимает KML файл (multipart-поле "file" либо сырое тело запроса), разбирает Placemark'и и сохраняет места в базу. Небольшие файлы вставляются синхронно (status OK), большие ставятся в очередь воркеру батчами (status QUEUED).
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param file formData file false "KML файл"
// @Param filename query string false "Имя файла при загрузке сырым телом" default(upload.kml)
// @Success 200 {object} utils.SuccessResponse{data=dto.UploadResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 413 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	filename, data, err := h.readUploadBody(c)
	if err != nil {
		h.logger.Warn("Failed to read upload body", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.uploadUC.Upload(c.Context(), filename, data)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// readUploadBody извлекает KML из multipart-поля "file" либо из сырого тела запроса
func (h *UploadHandler) readUploadBody(c *fiber.Ctx) (string, []byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		// Fallback: сырое тело, имя файла в query-параметре
		return c.Query("filename", "upload.kml"), c.Body(), nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}

	return fileHeader.Filename, data, nil
}

// ListUploads godoc
// @Summary Список загруженных KML файлов
// @Description Возвращает архив выгрузок из объектного хранилища: идентификатор, имя файла, размер и время загрузки.
// @Tags Upload
// @Accept json
// @Produce json
// @Param limit query int false "Максимальное количество записей" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.UploadListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/uploads [get]
func (h *UploadHandler) ListUploads(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	result, err := h.uploadUC.ListUploads(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// DownloadUpload godoc
// @Summary Скачивание исходного KML файла
// @Description Отдаёт сохранённый в архиве KML файл по идентификатору выгрузки.
// @Tags Upload
// @Accept json
// @Produce octet-stream
// @Param id path string true "Идентификатор выгрузки (UUID)"
// @Success 200 {file} binary "KML файл"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/uploads/{id}/file [get]
func (h *UploadHandler) DownloadUpload(c *fiber.Ctx) error {
	id := c.Params("id")

	archive, data, err := h.uploadUC.DownloadUpload(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set("Content-Type", "application/vnd.google-earth.kml+xml")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Filename))
	return c.Send(data)
}
