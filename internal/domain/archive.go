package domain

import "time"

// UploadArchive описывает сохранённый в объектном хранилище KML файл
type UploadArchive struct {
	UploadID   string    `json:"upload_id"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	Places     int       `json:"places"`
	UploadedAt time.Time `json:"uploaded_at"`
}
