package dto

import "github.com/places-microservice/internal/domain"

// Статусы обработки загруженного KML
const (
	StatusOK     = "OK"     // места записаны синхронно
	StatusQueued = "QUEUED" // места отправлены в поток на фоновую запись
)

// UploadResponse - ответ на загрузку KML файла
type UploadResponse struct {
	Status          string                `json:"status"`
	UploadID        string                `json:"upload_id"`
	TotalPlacemarks int                   `json:"total_placemarks"`
	Inserted        int                   `json:"inserted,omitempty"`
	Skipped         int                   `json:"skipped,omitempty"`
	Batches         int                   `json:"batches,omitempty"`
	Coverage        *domain.CoverageStats `json:"coverage,omitempty"`
}

// SearchPlacesResponse - ответ на полнотекстовый поиск мест
type SearchPlacesResponse struct {
	Results []*domain.Place `json:"results"`
	Total   int             `json:"total"`
}

// PlacesAroundResponse - ответ на геопоиск, места отсортированы по удалённости
type PlacesAroundResponse struct {
	Results []*domain.PlaceWithDistance `json:"results"`
	Total   int                         `json:"total"`
}

// UploadListResponse - список сохранённых в архиве выгрузок
type UploadListResponse struct {
	Uploads []*domain.UploadArchive `json:"uploads"`
	Total   int                     `json:"total"`
}
