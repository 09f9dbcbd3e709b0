package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

// HierarchyUseCase — движок иерархии: мутации дерева, разрешение
// профилей, кэш и шлюз привязки товаров. Мутации одного магазина
// сериализуются через storeLocks, чтение идет без блокировок.
type HierarchyUseCase struct {
	classRepo   ClassRepository
	attrRepo    ClassAttributeRepository
	typeRepo    AttributeTypeRepository
	bindingRepo BindingRepository
	outboxRepo  OutboxRepository
	cache       ProfileCache
	txm         Transactor
	mediaInfra  MediaInfra
	validator   *treeValidator
	resolver    *Resolver
	logger      logger.Logger
	locks       *storeLocks
}

// NewHierarchyUseCase собирает движок. outboxRepo и mediaInfra могут быть
// nil: во встроенном режиме событий и медиа-хранилища нет.
func NewHierarchyUseCase(
	classRepo ClassRepository,
	attrRepo ClassAttributeRepository,
	typeRepo AttributeTypeRepository,
	bindingRepo BindingRepository,
	outboxRepo OutboxRepository,
	cache ProfileCache,
	txm Transactor,
	mediaInfra MediaInfra,
	log logger.Logger,
	maxDepth int,
) *HierarchyUseCase {
	return &HierarchyUseCase{
		classRepo:   classRepo,
		attrRepo:    attrRepo,
		typeRepo:    typeRepo,
		bindingRepo: bindingRepo,
		outboxRepo:  outboxRepo,
		cache:       cache,
		txm:         txm,
		mediaInfra:  mediaInfra,
		validator:   newTreeValidator(classRepo, attrRepo, bindingRepo, maxDepth),
		resolver:    NewResolver(classRepo, attrRepo, typeRepo),
		logger:      log,
		locks:       newStoreLocks(),
	}
}

func (h *HierarchyUseCase) CreateClass(ctx context.Context, req *CreateClassReq) (*ClassInfo, error) {
	const op = "HierarchyUseCase.CreateClass"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.ErrClassNameRequired
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, e.ErrInvalidPrice
	}

	unlock := h.locks.Lock(req.StoreID)
	defer unlock()

	var created *domain.ProductClass
	err := h.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := h.validator.ValidateCreate(ctx, req.StoreID, req.ParentID); err != nil {
			return err
		}

		class := domain.NewProductClass(req.StoreID, req.Name, req.ParentID, req.Price, req.DisplayOrder)

		var err error
		created, err = h.classRepo.Create(ctx, class)
		if err != nil {
			return err
		}

		return h.appendEvent(ctx, EventClassCreated, created)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	h.logger.Infof("created class %d (store %d, parent %v)", created.ID, created.StoreID, req.ParentID)

	// Новый узел еще нигде не закэширован, профили существующих узлов
	// от его появления не меняются.
	return NewClassInfo(created), nil
}

func (h *HierarchyUseCase) MoveClass(ctx context.Context, req *MoveClassReq) error {
	const op = "HierarchyUseCase.MoveClass"

	class, err := h.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		return e.Wrap(op, err)
	}

	unlock := h.locks.Lock(class.StoreID)
	defer unlock()

	// Состав поддерева перемещение не меняет, множество на инвалидацию
	// можно снять до мутации.
	invalidate, err := h.subtreeIDs(ctx, req.ClassID)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = h.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		class, err := h.classRepo.GetByID(ctx, req.ClassID)
		if err != nil {
			return err
		}

		if err := h.validator.ValidateMove(ctx, class, req.NewParentID); err != nil {
			return err
		}

		if err := h.classRepo.SetParent(ctx, class.ID, req.NewParentID); err != nil {
			return err
		}

		class.ParentID = req.NewParentID
		return h.appendEvent(ctx, EventClassMoved, class)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return h.invalidateProfiles(ctx, op, invalidate)
}

func (h *HierarchyUseCase) DeleteClass(ctx context.Context, classID int64) error {
	const op = "HierarchyUseCase.DeleteClass"

	class, err := h.classRepo.GetByID(ctx, classID)
	if err != nil {
		return e.Wrap(op, err)
	}

	unlock := h.locks.Lock(class.StoreID)
	defer unlock()

	err = h.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		class, err := h.classRepo.GetByID(ctx, classID)
		if err != nil {
			return err
		}

		if err := h.validator.ValidateDelete(ctx, classID); err != nil {
			return err
		}

		if err := h.classRepo.Delete(ctx, classID); err != nil {
			return err
		}

		return h.appendEvent(ctx, EventClassDeleted, class)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	// Удалять можно только лист, потомков у него нет.
	return h.invalidateProfiles(ctx, op, []int64{classID})
}

func (h *HierarchyUseCase) SetPrice(ctx context.Context, classID int64, price *int64) error {
	const op = "HierarchyUseCase.SetPrice"

	if price != nil && *price < 0 {
		return e.ErrInvalidPrice
	}

	return h.mutateClass(ctx, op, classID, EventPriceChanged, func(class *domain.ProductClass) {
		class.Price = price
	})
}

func (h *HierarchyUseCase) SetActive(ctx context.Context, classID int64, active bool) error {
	const op = "HierarchyUseCase.SetActive"

	return h.mutateClass(ctx, op, classID, EventStatusChanged, func(class *domain.ProductClass) {
		class.IsActive = active
	})
}

// mutateClass — общий контур для мутаций полей одного узла: блокировка
// магазина, транзакция, событие, инвалидация поддерева.
func (h *HierarchyUseCase) mutateClass(
	ctx context.Context,
	op string,
	classID int64,
	eventType OutboxEventType,
	mutate func(class *domain.ProductClass),
) error {
	class, err := h.classRepo.GetByID(ctx, classID)
	if err != nil {
		return e.Wrap(op, err)
	}

	unlock := h.locks.Lock(class.StoreID)
	defer unlock()

	invalidate, err := h.subtreeIDs(ctx, classID)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = h.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		class, err := h.classRepo.GetByID(ctx, classID)
		if err != nil {
			return err
		}

		mutate(class)

		if err := h.classRepo.Update(ctx, class); err != nil {
			return err
		}

		return h.appendEvent(ctx, eventType, class)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return h.invalidateProfiles(ctx, op, invalidate)
}

func (h *HierarchyUseCase) AddAttribute(ctx context.Context, req *AddAttributeReq) (*domain.ClassAttribute, error) {
	const op = "HierarchyUseCase.AddAttribute"

	class, err := h.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	attrType, err := h.typeRepo.GetByID(ctx, req.AttributeTypeID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := attrType.ValidateValue(req.DefaultValue); err != nil {
		return nil, e.Wrap(op, err)
	}

	unlock := h.locks.Lock(class.StoreID)
	defer unlock()

	invalidate, err := h.subtreeIDs(ctx, req.ClassID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var added *domain.ClassAttribute
	err = h.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := h.validator.ValidateAttributeDefinition(ctx, req.ClassID, req.AttributeTypeID); err != nil {
			return err
		}
		if req.Inheritable && !req.Overridable {
			if err := h.validator.ValidateNoDescendantRedefinition(ctx, req.ClassID, req.AttributeTypeID); err != nil {
				return err
			}
		}

		attr := domain.NewClassAttribute(
			req.ClassID, req.AttributeTypeID,
			req.DefaultValue, req.Required, req.Inheritable, req.Overridable, req.DisplayOrder,
		)

		var err error
		added, err = h.attrRepo.Add(ctx, attr)
		if err != nil {
			return err
		}

		return h.appendEvent(ctx, EventAttributeChanged, class)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := h.invalidateProfiles(ctx, op, invalidate); err != nil {
		return nil, err
	}
	return added, nil
}

func (h *HierarchyUseCase) UpdateAttribute(ctx context.Context, req *UpdateAttributeReq) error {
	const op = "HierarchyUseCase.UpdateAttribute"

	class, err := h.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		return e.Wrap(op, err)
	}

	attrType, err := h.typeRepo.GetByID(ctx, req.AttributeTypeID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if err := attrType.ValidateValue(req.DefaultValue); err != nil {
		return e.Wrap(op, err)
	}

	unlock := h.locks.Lock(class.StoreID)
	defer unlock()

	invalidate, err := h.subtreeIDs(ctx, req.ClassID)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = h.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		attr, err := h.attrRepo.Get(ctx, req.ClassID, req.AttributeTypeID)
		if err != nil {
			return err
		}

		if req.Inheritable && !req.Overridable {
			if err := h.validator.ValidateNoDescendantRedefinition(ctx, req.ClassID, req.AttributeTypeID); err != nil {
				return err
			}
		}

		attr.DefaultValue = req.DefaultValue
		attr.Required = req.Required
		attr.Inheritable = req.Inheritable
		attr.Overridable = req.Overridable
		attr.DisplayOrder = req.DisplayOrder

		if err := h.attrRepo.Update(ctx, attr); err != nil {
			return err
		}

		return h.appendEvent(ctx, EventAttributeChanged, class)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return h.invalidateProfiles(ctx, op, invalidate)
}

func (h *HierarchyUseCase) RemoveAttribute(ctx context.Context, classID, attributeTypeID int64) error {
	const op = "HierarchyUseCase.RemoveAttribute"

	class, err := h.classRepo.GetByID(ctx, classID)
	if err != nil {
		return e.Wrap(op, err)
	}

	unlock := h.locks.Lock(class.StoreID)
	defer unlock()

	invalidate, err := h.subtreeIDs(ctx, classID)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = h.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := h.attrRepo.Remove(ctx, classID, attributeTypeID); err != nil {
			return err
		}
		return h.appendEvent(ctx, EventAttributeChanged, class)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return h.invalidateProfiles(ctx, op, invalidate)
}

func (h *HierarchyUseCase) AttachMedia(ctx context.Context, req *AttachMediaReq) (*AttachMediaRes, error) {
	const op = "HierarchyUseCase.AttachMedia"

	if h.mediaInfra == nil {
		return nil, e.Wrap(op, e.ErrInternalServerError)
	}

	class, err := h.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Загрузка в объектное хранилище идет до транзакции, при откате
	// объекты зачищаются.
	uploaded, err := h.mediaInfra.UploadMedia(ctx, &UploadMediaReq{
		Prefix: fmt.Sprintf("classes/%d", req.ClassID),
		Images: req.Images,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	unlock := h.locks.Lock(class.StoreID)
	defer unlock()

	invalidate, err := h.subtreeIDs(ctx, req.ClassID)
	if err != nil {
		h.mediaInfra.CleanupMedia(uploaded.Keys)
		return nil, e.Wrap(op, err)
	}

	err = h.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		class, err := h.classRepo.GetByID(ctx, req.ClassID)
		if err != nil {
			return err
		}

		class.MediaKeys = append(class.MediaKeys, uploaded.Keys...)

		if err := h.classRepo.Update(ctx, class); err != nil {
			return err
		}

		return h.appendEvent(ctx, EventMediaChanged, class)
	})
	if err != nil {
		h.mediaInfra.CleanupMedia(uploaded.Keys)
		return nil, e.Wrap(op, err)
	}

	if err := h.invalidateProfiles(ctx, op, invalidate); err != nil {
		return nil, err
	}
	return &AttachMediaRes{Keys: uploaded.Keys}, nil
}

// Resolve возвращает эффективный профиль класса, используя кэш.
// Ошибка чтения кэша не фатальна, профиль пересобирается из хранилища.
func (h *HierarchyUseCase) Resolve(ctx context.Context, classID int64) (*domain.ResolvedProfile, error) {
	const op = "HierarchyUseCase.Resolve"

	cached, err := h.cache.Get(ctx, classID)
	if err != nil {
		h.logger.Warnf("profile cache read failed for class %d: %v", classID, err)
	}
	if cached != nil {
		return cached, nil
	}

	profile, err := h.resolver.Resolve(ctx, classID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := h.cache.Set(ctx, profile); err != nil {
		h.logger.Warnf("profile cache write failed for class %d: %v", classID, err)
	}

	return profile, nil
}

func (h *HierarchyUseCase) CanBindProduct(ctx context.Context, classID int64) (*BindingDecision, error) {
	const op = "HierarchyUseCase.CanBindProduct"

	// Статус и листовость читаются из хранилища, кэш профилей для
	// решения о привязке не используется.
	class, err := h.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !class.IsActive {
		return &BindingDecision{Reason: "class is inactive"}, nil
	}
	if !class.IsLeaf {
		return &BindingDecision{Reason: "class has child classes"}, nil
	}

	profile, err := h.Resolve(ctx, classID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &BindingDecision{Allowed: true, Profile: profile}, nil
}

func (h *HierarchyUseCase) BindProduct(ctx context.Context, classID int64, productID string) error {
	const op = "HierarchyUseCase.BindProduct"

	class, err := h.classRepo.GetByID(ctx, classID)
	if err != nil {
		return e.Wrap(op, err)
	}

	unlock := h.locks.Lock(class.StoreID)
	defer unlock()

	err = h.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		class, err := h.classRepo.GetByID(ctx, classID)
		if err != nil {
			return err
		}
		if !class.IsActive {
			return e.ErrClassInactive
		}
		if !class.IsLeaf {
			return e.ErrClassNotLeaf
		}

		return h.bindingRepo.Bind(ctx, domain.NewProductBinding(productID, classID))
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (h *HierarchyUseCase) UnbindProduct(ctx context.Context, productID string) error {
	const op = "HierarchyUseCase.UnbindProduct"

	// Отвязка только ослабляет ограничения дерева, блокировка магазина
	// не требуется.
	if _, err := h.bindingRepo.Unbind(ctx, productID); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (h *HierarchyUseCase) Children(ctx context.Context, classID int64) ([]ClassInfo, error) {
	const op = "HierarchyUseCase.Children"

	if _, err := h.classRepo.GetByID(ctx, classID); err != nil {
		return nil, e.Wrap(op, err)
	}

	children, err := h.classRepo.Children(ctx, classID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	infos := make([]ClassInfo, 0, len(children))
	for _, child := range children {
		infos = append(infos, *NewClassInfo(child))
	}
	return infos, nil
}

func (h *HierarchyUseCase) Ancestors(ctx context.Context, classID int64, includeSelf bool) ([]ClassInfo, error) {
	const op = "HierarchyUseCase.Ancestors"

	chain, err := h.classRepo.Ancestors(ctx, classID, includeSelf)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	infos := make([]ClassInfo, 0, len(chain))
	for _, node := range chain {
		infos = append(infos, *NewClassInfo(node))
	}
	return infos, nil
}

func (h *HierarchyUseCase) Descendants(ctx context.Context, classID int64) ([]int64, error) {
	const op = "HierarchyUseCase.Descendants"

	if _, err := h.classRepo.GetByID(ctx, classID); err != nil {
		return nil, e.Wrap(op, err)
	}

	ids, err := h.classRepo.Descendants(ctx, classID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return ids, nil
}

func (h *HierarchyUseCase) IsLeaf(ctx context.Context, classID int64) (bool, error) {
	const op = "HierarchyUseCase.IsLeaf"

	class, err := h.classRepo.GetByID(ctx, classID)
	if err != nil {
		return false, e.Wrap(op, err)
	}
	return class.IsLeaf, nil
}

// subtreeIDs возвращает узел вместе со всеми потомками.
func (h *HierarchyUseCase) subtreeIDs(ctx context.Context, classID int64) ([]int64, error) {
	descendants, err := h.classRepo.Descendants(ctx, classID)
	if err != nil {
		return nil, err
	}
	return append([]int64{classID}, descendants...), nil
}

// invalidateProfiles чистит кэш после коммита. Неудачная инвалидация
// возвращается вызывающему как ошибка: мутация уже применена, но отдавать
// успех при потенциально протухшем кэше нельзя.
func (h *HierarchyUseCase) invalidateProfiles(ctx context.Context, op string, classIDs []int64) error {
	if err := h.cache.Delete(ctx, classIDs); err != nil {
		h.logger.Errorf(err, "profile cache invalidation failed for %d classes", len(classIDs))
		return e.Wrap(op, err)
	}
	return nil
}

func (h *HierarchyUseCase) appendEvent(ctx context.Context, eventType OutboxEventType, class *domain.ProductClass) error {
	if h.outboxRepo == nil {
		return nil
	}

	payload := ClassEventPayload{
		EventID:    uuid.NewString(),
		EventType:  string(eventType),
		StoreID:    class.StoreID,
		ClassID:    class.ID,
		ParentID:   class.ParentID,
		Name:       class.Name,
		Price:      class.Price,
		OccurredAt: time.Now().UTC(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = h.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   payload.EventID,
		EventType: eventType,
		ClassID:   class.ID,
		Payload:   raw,
		Status:    OutboxStatusPending,
	})
	return err
}
