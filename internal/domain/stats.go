package domain

import (
	"time"

	"github.com/places-microservice/internal/pkg/utils"
)

// Statistics представляет статистику коллекции мест и её индексов
type Statistics struct {
	TotalPlaces     int64          `json:"total_places"`
	DescribedPlaces int64          `json:"described_places"`
	StorageBytes    int64          `json:"storage_bytes"`
	AvgPlaceBytes   int64          `json:"avg_place_bytes"`
	IndexSizeBytes  int64          `json:"index_size_bytes"`
	Indexes         []IndexInfo    `json:"indexes"`
	Coverage        *CoverageStats `json:"coverage,omitempty"`
	LastUpdated     time.Time      `json:"last_updated"`
}

// IndexInfo описывает индекс коллекции
type IndexInfo struct {
	Name      string                 `json:"name"`
	Keys      map[string]interface{} `json:"keys"`
	SizeBytes int64                  `json:"size_bytes,omitempty"`
}

// CoverageStats статистика покрытия территории
type CoverageStats struct {
	BBoxMinLon float64 `json:"bbox_min_lon"`
	BBoxMinLat float64 `json:"bbox_min_lat"`
	BBoxMaxLon float64 `json:"bbox_max_lon"`
	BBoxMaxLat float64 `json:"bbox_max_lat"`
	CenterLon  float64 `json:"center_lon"`
	CenterLat  float64 `json:"center_lat"`
	DiagonalM  float64 `json:"diagonal_m"`
}

// ComputeCoverage строит статистику покрытия по ограничивающему
// прямоугольнику. Диагональ считается по большому кругу в метрах.
func ComputeCoverage(minLon, minLat, maxLon, maxLat float64) *CoverageStats {
	return &CoverageStats{
		BBoxMinLon: minLon,
		BBoxMinLat: minLat,
		BBoxMaxLon: maxLon,
		BBoxMaxLat: maxLat,
		CenterLon:  (minLon + maxLon) / 2,
		CenterLat:  (minLat + maxLat) / 2,
		DiagonalM:  utils.HaversineDistance(minLon, minLat, maxLon, maxLat),
	}
}
