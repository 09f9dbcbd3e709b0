package domain

// MediaObject описывает медиа-файл класса, который хранится в S3
type MediaObject struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	// Передайте значение -1 в Size, если размер потока неизвестен
	// (внимание: при передаче значения -1 будет выделен большой объем памяти).
	Size        *int64
	ContentType *string // Example: "image/jpeg"
}

func NewMediaObject(id string, bucket string, objectKey string, data []byte, size *int64, contentType *string) *MediaObject {
	return &MediaObject{
		ID:          id,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Bytes:       data,
		Size:        size,
		ContentType: contentType,
	}
}
