package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const GeoTypePoint = "Point"

// GeoPoint - геометрия GeoJSON Point.
// Порядок координат: [longitude, latitude].
type GeoPoint struct {
	Type        string     `json:"type" bson:"type"`
	Coordinates [2]float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{
		Type:        GeoTypePoint,
		Coordinates: [2]float64{lon, lat},
	}
}

func (p GeoPoint) Longitude() float64 {
	return p.Coordinates[0]
}

func (p GeoPoint) Latitude() float64 {
	return p.Coordinates[1]
}

// Place представляет точку интереса из KML выгрузки
type Place struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" swaggertype:"string"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Geo         GeoPoint           `json:"geo" bson:"geo"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// NewPlace создаёт место с текущим временем создания
func NewPlace(name, description string, lon, lat float64) *Place {
	return &Place{
		Name:        name,
		Description: description,
		Geo:         NewGeoPoint(lon, lat),
		CreatedAt:   time.Now().UTC(),
	}
}

// PlaceWithDistance - место с расстоянием от точки поиска в метрах
type PlaceWithDistance struct {
	Place    `bson:",inline"`
	Distance float64 `json:"distance" bson:"distance"`
}

// PlaceInput - место в передаваемой форме, до присвоения ID.
// Используется в событиях загрузки.
type PlaceInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Coordinates [2]float64 `json:"coordinates"`
}

func (in PlaceInput) ToPlace() *Place {
	return NewPlace(in.Name, in.Description, in.Coordinates[0], in.Coordinates[1])
}
