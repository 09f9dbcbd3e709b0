package usecase

import (
	"context"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
)

// Transactor выполняет fn в рамках одной транзакции хранилища.
// Встроенное хранилище отдает сквозную реализацию без транзакций.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type MediaInfra interface {
	UploadMedia(ctx context.Context, req *UploadMediaReq) (*UploadMediaRes, error)
	// CleanupMedia удаляет уже загруженные объекты после отката мутации.
	CleanupMedia(keys []string)
}

// MediaRepository — низкоуровневое объектное хранилище медиа.
type MediaRepository interface {
	Upload(ctx context.Context, object *domain.MediaObject) (string, error)
	Delete(ctx context.Context, key string) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
