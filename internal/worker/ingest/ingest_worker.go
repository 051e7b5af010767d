package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	defaultRetries  = 3
)

// IngestWorker вставляет батчи мест из KML выгрузок, опубликованные API
type IngestWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	ingestUC     *usecase.IngestUseCase
	consumerName string
	maxRetries   int
}

// NewIngestWorker создает новый IngestWorker
func NewIngestWorker(
	streamRepo repository.StreamRepository,
	ingestUC *usecase.IngestUseCase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *IngestWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if maxRetries <= 0 {
		maxRetries = defaultRetries
	}

	return &IngestWorker{
		BaseWorker:   worker.NewBaseWorker("places-ingest", consumerGroup, logger),
		streamRepo:   streamRepo,
		ingestUC:     ingestUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *IngestWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting IngestWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPlacesIngest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Если ничего не обработали - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает пачку сообщений.
// Возвращает количество прочитанных сообщений.
func (w *IngestWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	// 1. Читаем до 20 сообщений
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamPlacesIngest,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing ingest batch",
		zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		// 2. Парсим событие
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessages(ctx, domain.StreamPlacesIngest, w.ConsumerGroup(), msg.ID)
			continue
		}

		// 3. Вставляем батч с повторами
		done := w.processEvent(ctx, event)
		if done == nil {
			// Shutdown посреди обработки: не подтверждаем,
			// сообщение останется pending и будет переобработано
			break
		}

		// 4. Публикуем результат в stream:places:done
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamPlacesDone, done); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("upload_id", done.UploadID.String()),
				zap.Int("batch", done.Batch),
				zap.Error(err))
			// Продолжаем с остальными
		}

		ackIDs = append(ackIDs, msg.ID)
	}

	// 5. ACK обработанных сообщений
	if len(ackIDs) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamPlacesIngest, w.ConsumerGroup(), ackIDs...); err != nil {
			logger.Error("Failed to ack messages", zap.Error(err))
			// Не критично - сообщения будут переобработаны
		}
	}

	return len(messages), nil
}

// processEvent вставляет батч с повторами. Возвращает nil, если обработку
// прервал shutdown. После исчерпания попыток возвращает событие с ошибкой,
// чтобы битый батч не висел в pending вечно.
func (w *IngestWorker) processEvent(ctx context.Context, event *domain.PlaceIngestEvent) *domain.PlaceIngestDoneEvent {
	var lastErr error

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(worker.Backoff(attempt - 1)):
			case <-ctx.Done():
				return nil
			case <-w.StopChan():
				return nil
			}
		}

		done, err := w.ingestUC.ProcessBatch(ctx, event)
		if err == nil {
			return done
		}
		if ctx.Err() != nil {
			return nil
		}

		lastErr = err
		w.Logger().Warn("Ingest batch failed",
			zap.String("upload_id", event.UploadID.String()),
			zap.Int("batch", event.Batch),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	return &domain.PlaceIngestDoneEvent{
		UploadID: event.UploadID,
		Batch:    event.Batch,
		Error:    lastErr.Error(),
	}
}

// parseMessage парсит сообщение из стрима в PlaceIngestEvent
func (w *IngestWorker) parseMessage(msg domain.StreamMessage) (*domain.PlaceIngestEvent, error) {
	var event domain.PlaceIngestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if len(event.Places) == 0 {
		return nil, fmt.Errorf("event has no places")
	}

	return &event, nil
}
