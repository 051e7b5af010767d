package minio

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/errors"
)

const (
	archivePrefix = "uploads/"
	archiveSuffix = ".kml"
	kmlMimeType   = "application/vnd.google-earth.kml+xml"
)

type archiveRepository struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

func NewArchiveRepository(m *Minio) repository.ArchiveRepository {
	return &archiveRepository{
		client: m.Client(),
		bucket: m.Bucket(),
		logger: m.logger,
	}
}

func objectKey(uploadID string) string {
	return archivePrefix + uploadID + archiveSuffix
}

func uploadIDFromKey(key string) string {
	id := strings.TrimPrefix(key, archivePrefix)
	return strings.TrimSuffix(id, archiveSuffix)
}

// metaValue достаёт значение пользовательских метаданных. StatObject и
// ListObjects возвращают ключи в разном виде, проверяем оба.
func metaValue(meta map[string]string, name string) string {
	if v, ok := meta[name]; ok {
		return v
	}
	return meta["X-Amz-Meta-"+name]
}

func (r *archiveRepository) Store(ctx context.Context, archive *domain.UploadArchive, data []byte) error {
	key := objectKey(archive.UploadID)

	_, err := r.client.PutObject(ctx, r.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: kmlMimeType,
		UserMetadata: map[string]string{
			"Filename": archive.Filename,
			"Places":   strconv.Itoa(archive.Places),
		},
	})
	if err != nil {
		r.logger.Error("Failed to store upload archive",
			zap.String("upload_id", archive.UploadID),
			zap.Error(err))
		return errors.ErrStorageError
	}

	r.logger.Debug("Upload archived",
		zap.String("upload_id", archive.UploadID),
		zap.Int("size_bytes", len(data)))
	return nil
}

func (r *archiveRepository) List(ctx context.Context, limit int) ([]*domain.UploadArchive, error) {
	archives := make([]*domain.UploadArchive, 0)

	for obj := range r.client.ListObjects(ctx, r.bucket, minio.ListObjectsOptions{
		Prefix:       archivePrefix,
		Recursive:    true,
		WithMetadata: true,
	}) {
		if obj.Err != nil {
			r.logger.Error("Failed to list upload archives", zap.Error(obj.Err))
			return nil, errors.ErrStorageError
		}

		places, _ := strconv.Atoi(metaValue(obj.UserMetadata, "Places"))
		archives = append(archives, &domain.UploadArchive{
			UploadID:   uploadIDFromKey(obj.Key),
			Filename:   metaValue(obj.UserMetadata, "Filename"),
			SizeBytes:  obj.Size,
			Places:     places,
			UploadedAt: obj.LastModified,
		})
	}

	// Свежие выгрузки первыми
	sort.Slice(archives, func(i, j int) bool {
		return archives[i].UploadedAt.After(archives[j].UploadedAt)
	})

	if limit > 0 && len(archives) > limit {
		archives = archives[:limit]
	}

	return archives, nil
}

func (r *archiveRepository) Download(ctx context.Context, uploadID string) (*domain.UploadArchive, []byte, error) {
	key := objectKey(uploadID)

	info, err := r.client.StatObject(ctx, r.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, nil, errors.ErrUploadNotFound
		}
		r.logger.Error("Failed to stat upload archive",
			zap.String("upload_id", uploadID),
			zap.Error(err))
		return nil, nil, errors.ErrStorageError
	}

	obj, err := r.client.GetObject(ctx, r.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		r.logger.Error("Failed to get upload archive",
			zap.String("upload_id", uploadID),
			zap.Error(err))
		return nil, nil, errors.ErrStorageError
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		r.logger.Error("Failed to read upload archive",
			zap.String("upload_id", uploadID),
			zap.Error(err))
		return nil, nil, errors.ErrStorageError
	}

	places, _ := strconv.Atoi(metaValue(info.UserMetadata, "Places"))
	archive := &domain.UploadArchive{
		UploadID:   uploadID,
		Filename:   metaValue(info.UserMetadata, "Filename"),
		SizeBytes:  info.Size,
		Places:     places,
		UploadedAt: info.LastModified,
	}

	return archive, data, nil
}
