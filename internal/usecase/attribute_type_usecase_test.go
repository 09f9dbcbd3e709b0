package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/internal/repository/memtree"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

func newTypeUC(store *memtree.Store) *AttributeTypeUseCase {
	return NewAttributeTypeUseCase(store.AttributeTypes(), memtree.NewTransactor(), logger.NewSlogLogger())
}

func TestCreateAttributeType(t *testing.T) {
	uc := newTypeUC(memtree.NewStore())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *CreateAttributeTypeReq
		wantErr error
	}{
		{
			name: "text type",
			req:  &CreateAttributeTypeReq{Name: "brand", DisplayName: "Бренд", Kind: domain.KindText},
		},
		{
			name: "choice type with values",
			req: &CreateAttributeTypeReq{
				Name: "color", DisplayName: "Цвет", Kind: domain.KindChoice,
				Choices: []string{"red", "blue"},
			},
		},
		{
			name:    "empty name",
			req:     &CreateAttributeTypeReq{Name: "   ", Kind: domain.KindText},
			wantErr: e.ErrMissingFields,
		},
		{
			name:    "unknown kind",
			req:     &CreateAttributeTypeReq{Name: "weird", Kind: "float128"},
			wantErr: e.ErrUnknownAttributeKind,
		},
		{
			name:    "choice without values",
			req:     &CreateAttributeTypeReq{Name: "size", Kind: domain.KindChoice},
			wantErr: e.ErrChoiceValuesRequired,
		},
		{
			name:    "duplicate name",
			req:     &CreateAttributeTypeReq{Name: "brand", Kind: domain.KindText},
			wantErr: e.ErrAttributeTypeNameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := uc.CreateAttributeType(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, created.ID)
			assert.Equal(t, tt.req.Name, created.Name)
		})
	}
}

func TestGetAndListAttributeTypes(t *testing.T) {
	uc := newTypeUC(memtree.NewStore())
	ctx := context.Background()

	first, err := uc.CreateAttributeType(ctx, &CreateAttributeTypeReq{Name: "brand", Kind: domain.KindText})
	require.NoError(t, err)
	second, err := uc.CreateAttributeType(ctx, &CreateAttributeTypeReq{Name: "weight", Kind: domain.KindNumber})
	require.NoError(t, err)

	got, err := uc.GetAttributeType(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "brand", got.Name)

	_, err = uc.GetAttributeType(ctx, 999)
	assert.ErrorIs(t, err, e.ErrNotFound)

	list, err := uc.ListAttributeTypes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestUpdateAttributeType(t *testing.T) {
	store := memtree.NewStore()
	uc := newTypeUC(store)
	ctx := context.Background()

	created, err := uc.CreateAttributeType(ctx, &CreateAttributeTypeReq{Name: "brand", Kind: domain.KindText})
	require.NoError(t, err)

	updated, err := uc.UpdateAttributeType(ctx, created.ID, &CreateAttributeTypeReq{
		Name: "brand", DisplayName: "Производитель", Kind: domain.KindText,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Производитель", updated.DisplayName)

	// Тип, на который ссылается хотя бы один класс, заморожен.
	class, err := store.Classes().Create(ctx, domain.NewProductClass(1, "electronics", nil, nil, 0))
	require.NoError(t, err)
	_, err = store.ClassAttributes().Add(ctx, domain.NewClassAttribute(class.ID, created.ID, "", false, true, true, 0))
	require.NoError(t, err)

	_, err = uc.UpdateAttributeType(ctx, created.ID, &CreateAttributeTypeReq{
		Name: "brand", Kind: domain.KindNumber,
	})
	assert.ErrorIs(t, err, e.ErrAttributeTypeReferenced)
}

func TestAddChoiceValue(t *testing.T) {
	uc := newTypeUC(memtree.NewStore())
	ctx := context.Background()

	color, err := uc.CreateAttributeType(ctx, &CreateAttributeTypeReq{
		Name: "color", Kind: domain.KindChoice, Choices: []string{"red"},
	})
	require.NoError(t, err)

	require.NoError(t, uc.AddChoiceValue(ctx, color.ID, "blue"))

	got, err := uc.GetAttributeType(ctx, color.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, got.Choices)

	err = uc.AddChoiceValue(ctx, color.ID, "blue")
	assert.ErrorIs(t, err, e.ErrDuplicateChoiceValue)

	text, err := uc.CreateAttributeType(ctx, &CreateAttributeTypeReq{Name: "brand", Kind: domain.KindText})
	require.NoError(t, err)

	err = uc.AddChoiceValue(ctx, text.ID, "red")
	assert.ErrorIs(t, err, e.ErrUnknownAttributeKind)
}
