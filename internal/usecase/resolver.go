package usecase

import (
	"context"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

// Resolver вычисляет эффективный профиль класса по цепочке предков.
type Resolver struct {
	classRepo ClassRepository
	attrRepo  ClassAttributeRepository
	typeRepo  AttributeTypeRepository
}

func NewResolver(
	classRepo ClassRepository,
	attrRepo ClassAttributeRepository,
	typeRepo AttributeTypeRepository,
) *Resolver {
	return &Resolver{
		classRepo: classRepo,
		attrRepo:  attrRepo,
		typeRepo:  typeRepo,
	}
}

// Resolve собирает профиль заново, без обращения к кэшу.
//
// Цена: первая явно заданная при подъеме от узла к корню; если ни один
// предок цену не задал, эффективная цена равна нулю, а PriceClassID
// остается пустым. Атрибуты и медиа сворачиваются от корня к узлу,
// определение ближе к узлу побеждает.
func (r *Resolver) Resolve(ctx context.Context, classID int64) (*domain.ResolvedProfile, error) {
	const op = "Resolver.Resolve"

	chain, err := r.classRepo.Ancestors(ctx, classID, true)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	profile := &domain.ResolvedProfile{
		ClassID:    classID,
		Attributes: make(map[int64]domain.ResolvedAttribute),
	}

	for _, node := range chain {
		if node.Price != nil {
			profile.Price = *node.Price
			id := node.ID
			profile.PriceClassID = &id
			break
		}
	}

	types := make(map[int64]*domain.AttributeType)
	seenMedia := make(map[string]struct{})

	// chain упорядочен от узла к корню, сворачиваем в обратном порядке.
	for i := len(chain) - 1; i >= 0; i-- {
		node := chain[i]

		attrs, err := r.attrRepo.ListByClass(ctx, node.ID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		for _, attr := range attrs {
			// Ненаследуемые определения видны только на своем классе.
			if node.ID != classID && !attr.Inheritable {
				continue
			}

			attrType, ok := types[attr.AttributeTypeID]
			if !ok {
				attrType, err = r.typeRepo.GetByID(ctx, attr.AttributeTypeID)
				if err != nil {
					return nil, e.Wrap(op, err)
				}
				types[attr.AttributeTypeID] = attrType
			}

			profile.Attributes[attr.AttributeTypeID] = domain.ResolvedAttribute{
				AttributeTypeID: attr.AttributeTypeID,
				DefinedBy:       node.ID,
				Name:            attrType.Name,
				Kind:            attrType.Kind,
				DefaultValue:    attr.DefaultValue,
				Required:        attr.Required,
				Overridable:     attr.Overridable,
				DisplayOrder:    attr.DisplayOrder,
			}
		}

		for _, key := range node.MediaKeys {
			if _, ok := seenMedia[key]; ok {
				continue
			}
			seenMedia[key] = struct{}{}
			profile.MediaKeys = append(profile.MediaKeys, key)
		}
	}

	return profile, nil
}
