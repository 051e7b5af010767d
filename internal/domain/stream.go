package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamPlacesIngest = "stream:places:ingest"
	StreamPlacesDone   = "stream:places:done"
)

// PlaceIngestEvent - батч мест из KML выгрузки на асинхронную вставку
type PlaceIngestEvent struct {
	UploadID     uuid.UUID    `json:"upload_id"`
	Filename     string       `json:"filename"`
	Batch        int          `json:"batch"`
	TotalBatches int          `json:"total_batches"`
	Places       []PlaceInput `json:"places"`
}

// IsLast сообщает, последний ли это батч выгрузки
func (e *PlaceIngestEvent) IsLast() bool {
	return e.TotalBatches > 0 && e.Batch == e.TotalBatches
}

// PlaceIngestDoneEvent - результат обработки батча
type PlaceIngestDoneEvent struct {
	UploadID uuid.UUID `json:"upload_id"`
	Batch    int       `json:"batch"`
	Inserted int       `json:"inserted"`
	Error    string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
