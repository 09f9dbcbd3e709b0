package usecase

import (
	"time"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
)

type CreateClassReq struct {
	StoreID      int64
	Name         string
	ParentID     *int64
	Price        *int64
	DisplayOrder int
}

type MoveClassReq struct {
	ClassID int64
	// NewParentID == nil делает класс корневым.
	NewParentID *int64
}

type ClassInfo struct {
	ID           int64
	StoreID      int64
	Name         string
	ParentID     *int64
	Price        *int64
	DisplayOrder int
	IsActive     bool
	IsLeaf       bool
	Depth        int
	MediaKeys    []string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewClassInfo(class *domain.ProductClass) *ClassInfo {
	return &ClassInfo{
		ID:           class.ID,
		StoreID:      class.StoreID,
		Name:         class.Name,
		ParentID:     class.ParentID,
		Price:        class.Price,
		DisplayOrder: class.DisplayOrder,
		IsActive:     class.IsActive,
		IsLeaf:       class.IsLeaf,
		Depth:        class.Depth,
		MediaKeys:    class.MediaKeys,
		CreatedAt:    class.CreatedAt,
		UpdatedAt:    class.UpdatedAt,
	}
}

type AddAttributeReq struct {
	ClassID         int64
	AttributeTypeID int64
	DefaultValue    string
	Required        bool
	Inheritable     bool
	Overridable     bool
	DisplayOrder    int
}

type UpdateAttributeReq struct {
	ClassID         int64
	AttributeTypeID int64
	DefaultValue    string
	Required        bool
	Inheritable     bool
	Overridable     bool
	DisplayOrder    int
}

type CreateAttributeTypeReq struct {
	Name        string
	DisplayName string
	Kind        domain.AttributeKind
	Choices     []string
	Rule        domain.ValidationRule
}

// BindingDecision — результат проверки допустимости привязки товара.
type BindingDecision struct {
	Allowed bool
	Reason  string
	// Profile заполнен только при Allowed == true.
	Profile *domain.ResolvedProfile
}

type MediaImage struct {
	Data     []byte
	MimeType string
	Size     int64
	Name     string
}

type AttachMediaReq struct {
	ClassID int64
	Images  []MediaImage
}

type AttachMediaRes struct {
	Keys []string
}

type UploadMediaReq struct {
	// Prefix — префикс ключей объектов, обычно "classes/<id>".
	Prefix string
	Images []MediaImage
}

type UploadMediaRes struct {
	Keys []string
}

type WriteRawMessageReq struct {
	ClassID int64
	Payload []byte
}

func NewWriteRawMessageReq(classID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{ClassID: classID, Payload: payload}
}

type OutboxEventType string

const (
	EventClassCreated     OutboxEventType = "class.created"
	EventClassMoved       OutboxEventType = "class.moved"
	EventClassDeleted     OutboxEventType = "class.deleted"
	EventPriceChanged     OutboxEventType = "class.price_changed"
	EventAttributeChanged OutboxEventType = "class.attribute_changed"
	EventMediaChanged     OutboxEventType = "class.media_changed"
	EventStatusChanged    OutboxEventType = "class.status_changed"
)

type OutboxStatus string

const (
	OutboxStatusPending    OutboxStatus = "pending"
	OutboxStatusProcessing OutboxStatus = "processing"
	OutboxStatusProcessed  OutboxStatus = "processed"
)

// OutboxEvent — запись таблицы outbox_events: событие мутации дерева,
// которое воркер публикует в Kafka после коммита транзакции.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ClassID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// ClassEventPayload — тело события мутации, сериализуется в JSON.
type ClassEventPayload struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	StoreID    int64     `json:"store_id"`
	ClassID    int64     `json:"class_id"`
	ParentID   *int64    `json:"parent_id,omitempty"`
	Name       string    `json:"name"`
	Price      *int64    `json:"price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
