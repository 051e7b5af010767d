package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrUploadNotFound = New(
		"UPLOAD_NOT_FOUND",
		"Upload archive not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidPlaceID = New(
		"INVALID_PLACE_ID",
		"Invalid place ID",
		http.StatusBadRequest,
	)

	ErrInvalidKML = New(
		"INVALID_KML",
		"KML document could not be parsed",
		http.StatusBadRequest,
	)

	ErrEmptyKML = New(
		"EMPTY_KML",
		"KML document contains no placemarks",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = New(
		"FILE_TOO_LARGE",
		"Uploaded file exceeds the size limit",
		http.StatusRequestEntityTooLarge,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"Object storage operation failed",
		http.StatusInternalServerError,
	)

	ErrStorageUnavailable = New(
		"STORAGE_UNAVAILABLE",
		"Object storage is not configured",
		http.StatusServiceUnavailable,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
