package utils

import "math"

const earthRadiusM = 6371000.0

// HaversineDistance вычисляет расстояние между двумя точками в метрах.
// Координаты передаются в порядке GeoJSON: сначала долгота, потом широта.
func HaversineDistance(lon1, lat1, lon2, lat2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// ValidateCoordinates проверяет валидность пары [longitude, latitude]
func ValidateCoordinates(lon, lat float64) bool {
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// ValidateRadius проверяет валидность радиуса поиска (1 м - 100 км)
func ValidateRadius(radiusM float64) bool {
	return radiusM >= 1 && radiusM <= 100000
}
