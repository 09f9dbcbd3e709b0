package usecase

import (
	"context"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
)

// HierarchyUC — контракт движка иерархии классов товаров для внешних слоев.
type HierarchyUC interface {
	CreateClass(ctx context.Context, req *CreateClassReq) (*ClassInfo, error)
	MoveClass(ctx context.Context, req *MoveClassReq) error
	DeleteClass(ctx context.Context, classID int64) error
	SetPrice(ctx context.Context, classID int64, price *int64) error
	SetActive(ctx context.Context, classID int64, active bool) error

	AddAttribute(ctx context.Context, req *AddAttributeReq) (*domain.ClassAttribute, error)
	UpdateAttribute(ctx context.Context, req *UpdateAttributeReq) error
	RemoveAttribute(ctx context.Context, classID, attributeTypeID int64) error

	AttachMedia(ctx context.Context, req *AttachMediaReq) (*AttachMediaRes, error)

	Resolve(ctx context.Context, classID int64) (*domain.ResolvedProfile, error)

	CanBindProduct(ctx context.Context, classID int64) (*BindingDecision, error)
	BindProduct(ctx context.Context, classID int64, productID string) error
	UnbindProduct(ctx context.Context, productID string) error

	Children(ctx context.Context, classID int64) ([]ClassInfo, error)
	Ancestors(ctx context.Context, classID int64, includeSelf bool) ([]ClassInfo, error)
	Descendants(ctx context.Context, classID int64) ([]int64, error)
	IsLeaf(ctx context.Context, classID int64) (bool, error)
}

// AttributeTypeUC — контракт реестра типов атрибутов.
type AttributeTypeUC interface {
	CreateAttributeType(ctx context.Context, req *CreateAttributeTypeReq) (*domain.AttributeType, error)
	UpdateAttributeType(ctx context.Context, id int64, req *CreateAttributeTypeReq) (*domain.AttributeType, error)
	GetAttributeType(ctx context.Context, id int64) (*domain.AttributeType, error)
	ListAttributeTypes(ctx context.Context) ([]*domain.AttributeType, error)
	AddChoiceValue(ctx context.Context, typeID int64, value string) error
}
