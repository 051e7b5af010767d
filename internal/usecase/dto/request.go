package dto

// SearchPlacesRequest - запрос полнотекстового поиска мест
type SearchPlacesRequest struct {
	SearchWords string `json:"search_words" validate:"required,min=1"`
	Skip        int    `json:"skip" validate:"omitempty,min=0"`
	Limit       int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// PlacesAroundRequest - запрос мест в радиусе от точки.
// Координаты в порядке GeoJSON: [longitude, latitude], радиус в метрах.
type PlacesAroundRequest struct {
	Coordinates [2]float64 `json:"coordinates" validate:"required,lonlat"`
	Radius      float64    `json:"radius" validate:"omitempty,min=1,max=100000"`
	Limit       int        `json:"limit" validate:"omitempty,min=1,max=500"`
}
