package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/delivery/http/handler"
	"github.com/places-microservice/internal/delivery/http/middleware"
	apperrors "github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// HealthCheck - именованная проверка зависимости для health эндпоинта
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	uploadHandler *handler.UploadHandler
	searchHandler *handler.SearchHandler
	placeHandler  *handler.PlaceHandler
	statsHandler  *handler.StatsHandler

	healthChecks []HealthCheck
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	uploadHandler *handler.UploadHandler,
	searchHandler *handler.SearchHandler,
	placeHandler *handler.PlaceHandler,
	statsHandler *handler.StatsHandler,
	healthChecks ...HealthCheck,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Places Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		// Запас поверх лимита на KML: multipart добавляет свои заголовки
		BodyLimit:    cfg.Upload.MaxFileSize + 1<<20,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		uploadHandler: uploadHandler,
		searchHandler: searchHandler,
		placeHandler:  placeHandler,
		statsHandler:  statsHandler,
		healthChecks:  healthChecks,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthHandler)

	// Places routes
	api.Post("/places/upload", s.uploadHandler.Upload)
	api.Post("/places/search", s.searchHandler.SearchPlaces)
	api.Post("/places/around", s.searchHandler.PlacesAround)
	api.Get("/places/:id", s.placeHandler.GetPlace)

	// Upload archive routes
	api.Get("/uploads", s.uploadHandler.ListUploads)
	api.Get("/uploads/:id/file", s.uploadHandler.DownloadUpload)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
	api.Post("/stats/refresh", s.statsHandler.RefreshStatistics)
}

// healthHandler - состояние сервиса и его зависимостей
func (s *Server) healthHandler(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	healthy := true
	checks := make(fiber.Map, len(s.healthChecks))
	for _, hc := range s.healthChecks {
		if err := hc.Check(ctx); err != nil {
			healthy = false
			checks[hc.Name] = err.Error()
			continue
		}
		checks[hc.Name] = "ok"
	}

	status := "healthy"
	code := fiber.StatusOK
	if !healthy {
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"time":   time.Now(),
		"checks": checks,
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Ошибки приложения несут свой статус и код
		if appErr, ok := err.(*apperrors.AppError); ok {
			return c.Status(appErr.StatusCode).JSON(utils.ErrorResponse{
				Error: appErr,
			})
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= 500 {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
