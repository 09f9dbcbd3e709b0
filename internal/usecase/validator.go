package usecase

import (
	"context"
	"errors"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

// treeValidator проверяет структурные инварианты дерева перед мутацией.
// Вызывается внутри транзакции под блокировкой магазина, поэтому видит
// согласованное состояние.
type treeValidator struct {
	classRepo   ClassRepository
	attrRepo    ClassAttributeRepository
	bindingRepo BindingRepository
	maxDepth    int
}

func newTreeValidator(
	classRepo ClassRepository,
	attrRepo ClassAttributeRepository,
	bindingRepo BindingRepository,
	maxDepth int,
) *treeValidator {
	return &treeValidator{
		classRepo:   classRepo,
		attrRepo:    attrRepo,
		bindingRepo: bindingRepo,
		maxDepth:    maxDepth,
	}
}

// validateParent проверяет пригодность узла как родителя нового ребенка:
// узел существует, принадлежит тому же магазину, активен и не несет товаров.
func (v *treeValidator) validateParent(ctx context.Context, storeID int64, parentID int64) (*domain.ProductClass, error) {
	const op = "treeValidator.validateParent"

	parent, err := v.classRepo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.ErrInvalidParent
		}
		return nil, e.Wrap(op, err)
	}

	if parent.StoreID != storeID || !parent.IsActive {
		return nil, e.ErrInvalidParent
	}

	if parent.Depth+1 > v.maxDepth {
		return nil, e.ErrDepthExceeded
	}

	// Родителем может быть только класс без привязанных товаров:
	// появление ребенка сделало бы его нелистовым.
	bound, err := v.bindingRepo.HasBindings(ctx, parentID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if bound {
		return nil, e.ErrLeafViolation
	}

	return parent, nil
}

func (v *treeValidator) ValidateCreate(ctx context.Context, storeID int64, parentID *int64) (*domain.ProductClass, error) {
	if parentID == nil {
		return nil, nil
	}
	return v.validateParent(ctx, storeID, *parentID)
}

func (v *treeValidator) ValidateMove(ctx context.Context, class *domain.ProductClass, newParentID *int64) error {
	const op = "treeValidator.ValidateMove"

	if newParentID == nil {
		return nil
	}
	if *newParentID == class.ID {
		return e.ErrWouldCreateCycle
	}

	parent, err := v.validateParent(ctx, class.StoreID, *newParentID)
	if err != nil {
		return err
	}

	// Цикл возникает, когда новый родитель лежит в поддереве самого класса,
	// то есть класс встречается среди предков нового родителя.
	ancestors, err := v.classRepo.Ancestors(ctx, parent.ID, true)
	if err != nil {
		return e.Wrap(op, err)
	}
	for _, ancestor := range ancestors {
		if ancestor.ID == class.ID {
			return e.ErrWouldCreateCycle
		}
	}

	return nil
}

func (v *treeValidator) ValidateDelete(ctx context.Context, classID int64) error {
	const op = "treeValidator.ValidateDelete"

	hasChildren, err := v.classRepo.HasChildren(ctx, classID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if hasChildren {
		return e.ErrHasChildren
	}

	bound, err := v.bindingRepo.HasBindings(ctx, classID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if bound {
		return e.ErrHasBoundProducts
	}

	return nil
}

// ValidateAttributeDefinition запрещает переопределять на классе атрибут,
// который какой-либо предок объявил наследуемым и не переопределяемым.
func (v *treeValidator) ValidateAttributeDefinition(ctx context.Context, classID, attributeTypeID int64) error {
	const op = "treeValidator.ValidateAttributeDefinition"

	ancestors, err := v.classRepo.Ancestors(ctx, classID, false)
	if err != nil {
		return e.Wrap(op, err)
	}

	for _, ancestor := range ancestors {
		attr, err := v.attrRepo.Get(ctx, ancestor.ID, attributeTypeID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				continue
			}
			return e.Wrap(op, err)
		}
		if attr.Inheritable && !attr.Overridable {
			return e.ErrNonOverridableConflict
		}
	}

	return nil
}

// ValidateNoDescendantRedefinition запрещает объявлять атрибут наследуемым
// и не переопределяемым, если какой-то потомок уже определил тот же тип:
// существующее переопределение стало бы нелегальным.
func (v *treeValidator) ValidateNoDescendantRedefinition(ctx context.Context, classID, attributeTypeID int64) error {
	const op = "treeValidator.ValidateNoDescendantRedefinition"

	descendants, err := v.classRepo.Descendants(ctx, classID)
	if err != nil {
		return e.Wrap(op, err)
	}

	for _, id := range descendants {
		_, err := v.attrRepo.Get(ctx, id, attributeTypeID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				continue
			}
			return e.Wrap(op, err)
		}
		return e.ErrNonOverridableConflict
	}

	return nil
}
