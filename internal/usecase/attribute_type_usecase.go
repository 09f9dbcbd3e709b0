package usecase

import (
	"context"
	"strings"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

// AttributeTypeUseCase — реестр типов атрибутов. Тип, на который
// ссылается хотя бы один класс, менять нельзя, кроме расширения
// списка choice-значений.
type AttributeTypeUseCase struct {
	typeRepo AttributeTypeRepository
	txm      Transactor
	logger   logger.Logger
}

func NewAttributeTypeUseCase(typeRepo AttributeTypeRepository, txm Transactor, log logger.Logger) *AttributeTypeUseCase {
	return &AttributeTypeUseCase{
		typeRepo: typeRepo,
		txm:      txm,
		logger:   log,
	}
}

func (a *AttributeTypeUseCase) CreateAttributeType(ctx context.Context, req *CreateAttributeTypeReq) (*domain.AttributeType, error) {
	const op = "AttributeTypeUseCase.CreateAttributeType"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.ErrMissingFields
	}

	attrType, err := domain.NewAttributeType(req.Name, req.DisplayName, req.Kind, req.Choices, req.Rule)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	created, err := a.typeRepo.Create(ctx, attrType)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.logger.Infof("created attribute type %d (%s, kind %s)", created.ID, created.Name, created.Kind)
	return created, nil
}

// UpdateAttributeType переопределяет тип целиком. Тип, на который уже
// ссылаются классы, редактировать нельзя: значения по умолчанию в дереве
// перестали бы проходить валидацию.
func (a *AttributeTypeUseCase) UpdateAttributeType(ctx context.Context, id int64, req *CreateAttributeTypeReq) (*domain.AttributeType, error) {
	const op = "AttributeTypeUseCase.UpdateAttributeType"

	var updated *domain.AttributeType
	err := a.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := a.typeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		referenced, err := a.typeRepo.IsReferenced(ctx, id)
		if err != nil {
			return err
		}
		if referenced {
			return e.ErrAttributeTypeReferenced
		}

		next, err := domain.NewAttributeType(req.Name, req.DisplayName, req.Kind, req.Choices, req.Rule)
		if err != nil {
			return err
		}
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt

		if err := a.typeRepo.Update(ctx, next); err != nil {
			return err
		}

		updated = next
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

func (a *AttributeTypeUseCase) GetAttributeType(ctx context.Context, id int64) (*domain.AttributeType, error) {
	const op = "AttributeTypeUseCase.GetAttributeType"

	attrType, err := a.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return attrType, nil
}

func (a *AttributeTypeUseCase) ListAttributeTypes(ctx context.Context) ([]*domain.AttributeType, error) {
	const op = "AttributeTypeUseCase.ListAttributeTypes"

	types, err := a.typeRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return types, nil
}

// AddChoiceValue расширяет список значений choice-типа. Это единственная
// мутация, разрешенная для типа, уже привязанного к классам: существующие
// значения по умолчанию остаются валидными.
func (a *AttributeTypeUseCase) AddChoiceValue(ctx context.Context, typeID int64, value string) error {
	const op = "AttributeTypeUseCase.AddChoiceValue"

	err := a.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		attrType, err := a.typeRepo.GetByID(ctx, typeID)
		if err != nil {
			return err
		}

		if err := attrType.AddChoice(value); err != nil {
			return err
		}

		return a.typeRepo.Update(ctx, attrType)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
