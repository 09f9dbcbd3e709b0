package minio

import (
	"bytes"
	"context"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"

	"github.com/tejarat-tech/catalog-backend/internal/cfg"
	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

// MediaRepo реализует хранилище медиа классов поверх MinIO.
type MediaRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewMediaRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *MediaRepo {
	return &MediaRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает объект в MinIO и возвращает ключ объекта.
func (m *MediaRepo) Upload(ctx context.Context, object *domain.MediaObject) (string, error) {
	reader := bytes.NewReader(object.Bytes)

	info, err := m.mc.PutObject(ctx, m.cfg.BucketName, object.ObjectKey, reader, *object.Size, minio.PutObjectOptions{
		ContentType: *object.ContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (m *MediaRepo) Delete(ctx context.Context, key string) error {
	if err := m.mc.RemoveObject(ctx, m.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
