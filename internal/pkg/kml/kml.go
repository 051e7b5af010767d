package kml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Placemark - точка интереса, извлечённая из KML документа.
// Координаты в порядке GeoJSON: долгота, широта.
type Placemark struct {
	Name        string
	Description string
	Longitude   float64
	Latitude    float64
}

// ParseResult содержит извлечённые точки и количество пропущенных
// placemark'ов без валидных координат.
type ParseResult struct {
	Placemarks []Placemark
	Skipped    int
}

type kmlRoot struct {
	XMLName  xml.Name    `xml:"kml"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Folders    []kmlFolder    `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlFolder struct {
	Name       string         `xml:"name"`
	Folders    []kmlFolder    `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name        string    `xml:"name"`
	Description string    `xml:"description"`
	Point       *kmlPoint `xml:"Point"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

// Parse разбирает KML документ и собирает все Placemark с геометрией Point.
// Обходятся placemark'и на уровне Document и во вложенных Folder любой
// глубины. Placemark без Point или с нечитаемыми координатами пропускается.
func Parse(data []byte) (*ParseResult, error) {
	var root kmlRoot
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse kml: %w", err)
	}

	result := &ParseResult{}
	collectPlacemarks(root.Document.Placemarks, result)
	for _, folder := range root.Document.Folders {
		walkFolder(folder, result)
	}

	return result, nil
}

func walkFolder(folder kmlFolder, result *ParseResult) {
	collectPlacemarks(folder.Placemarks, result)
	for _, nested := range folder.Folders {
		walkFolder(nested, result)
	}
}

func collectPlacemarks(marks []kmlPlacemark, result *ParseResult) {
	for _, mark := range marks {
		name := strings.TrimSpace(mark.Name)
		if name == "" || mark.Point == nil {
			result.Skipped++
			continue
		}

		lon, lat, err := parseCoordinates(mark.Point.Coordinates)
		if err != nil {
			result.Skipped++
			continue
		}

		result.Placemarks = append(result.Placemarks, Placemark{
			Name:        name,
			Description: strings.TrimSpace(mark.Description),
			Longitude:   lon,
			Latitude:    lat,
		})
	}
}

// parseCoordinates разбирает строку "lon,lat[,alt]". Высота, если есть,
// отбрасывается.
func parseCoordinates(raw string) (float64, float64, error) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("coordinates must contain longitude and latitude: %q", raw)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse longitude: %w", err)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse latitude: %w", err)
	}

	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("coordinates out of range: %q", raw)
	}

	return lon, lat, nil
}
