package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/internal/repository/memcache"
	"github.com/tejarat-tech/catalog-backend/internal/repository/memtree"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

const testStoreID = int64(7)

type testEngine struct {
	uc    *HierarchyUseCase
	store *memtree.Store
	cache *memcache.Cache
}

func newTestEngine(maxDepth int) *testEngine {
	store := memtree.NewStore()
	cache := memcache.New(time.Minute)

	uc := NewHierarchyUseCase(
		store.Classes(),
		store.ClassAttributes(),
		store.AttributeTypes(),
		store.Bindings(),
		nil,
		cache,
		memtree.NewTransactor(),
		nil,
		logger.NewSlogLogger(),
		maxDepth,
	)

	return &testEngine{uc: uc, store: store, cache: cache}
}

func (te *testEngine) mustCreate(t *testing.T, name string, parentID, price *int64) *ClassInfo {
	t.Helper()
	created, err := te.uc.CreateClass(context.Background(), &CreateClassReq{
		StoreID:  testStoreID,
		Name:     name,
		ParentID: parentID,
		Price:    price,
	})
	require.NoError(t, err)
	return created
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateClass_Validation(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	_, err := te.uc.CreateClass(ctx, &CreateClassReq{StoreID: testStoreID, Name: "  "})
	assert.ErrorIs(t, err, e.ErrClassNameRequired)

	_, err = te.uc.CreateClass(ctx, &CreateClassReq{
		StoreID: testStoreID, Name: "electronics", Price: int64Ptr(-1),
	})
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = te.uc.CreateClass(ctx, &CreateClassReq{
		StoreID: testStoreID, Name: "orphan", ParentID: int64Ptr(999),
	})
	assert.ErrorIs(t, err, e.ErrInvalidParent)
}

func TestCreateClass_TreeShape(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "electronics", nil, int64Ptr(500_000))
	assert.Equal(t, 1, root.Depth)
	assert.True(t, root.IsLeaf)
	assert.Nil(t, root.ParentID)

	child := te.mustCreate(t, "phones", int64Ptr(root.ID), nil)
	assert.Equal(t, 2, child.Depth)
	assert.True(t, child.IsLeaf)

	rootIsLeaf, err := te.uc.IsLeaf(ctx, root.ID)
	require.NoError(t, err)
	assert.False(t, rootIsLeaf)
}

func TestCreateClass_ParentRules(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "electronics", nil, nil)

	t.Run("inactive parent", func(t *testing.T) {
		inactive := te.mustCreate(t, "archive", nil, nil)
		require.NoError(t, te.uc.SetActive(ctx, inactive.ID, false))

		_, err := te.uc.CreateClass(ctx, &CreateClassReq{
			StoreID: testStoreID, Name: "child", ParentID: int64Ptr(inactive.ID),
		})
		assert.ErrorIs(t, err, e.ErrInvalidParent)
	})

	t.Run("parent from another store", func(t *testing.T) {
		_, err := te.uc.CreateClass(ctx, &CreateClassReq{
			StoreID: testStoreID + 1, Name: "foreign", ParentID: int64Ptr(root.ID),
		})
		assert.ErrorIs(t, err, e.ErrInvalidParent)
	})

	t.Run("parent with bound products", func(t *testing.T) {
		leaf := te.mustCreate(t, "cables", int64Ptr(root.ID), nil)
		require.NoError(t, te.uc.BindProduct(ctx, leaf.ID, "a4f2b6de-41a0-4c10-9f7d-2b1f6f4c9a01"))

		_, err := te.uc.CreateClass(ctx, &CreateClassReq{
			StoreID: testStoreID, Name: "hdmi", ParentID: int64Ptr(leaf.ID),
		})
		assert.ErrorIs(t, err, e.ErrLeafViolation)
	})
}

func TestCreateClass_DepthLimit(t *testing.T) {
	te := newTestEngine(2)
	ctx := context.Background()

	root := te.mustCreate(t, "root", nil, nil)
	child := te.mustCreate(t, "child", int64Ptr(root.ID), nil)

	_, err := te.uc.CreateClass(ctx, &CreateClassReq{
		StoreID: testStoreID, Name: "too deep", ParentID: int64Ptr(child.ID),
	})
	assert.ErrorIs(t, err, e.ErrDepthExceeded)
}

func TestMoveClass(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "electronics", nil, nil)
	phones := te.mustCreate(t, "phones", int64Ptr(root.ID), nil)
	accessories := te.mustCreate(t, "accessories", int64Ptr(phones.ID), nil)
	cases_ := te.mustCreate(t, "cases", int64Ptr(accessories.ID), nil)

	t.Run("move under self", func(t *testing.T) {
		err := te.uc.MoveClass(ctx, &MoveClassReq{ClassID: phones.ID, NewParentID: int64Ptr(phones.ID)})
		assert.ErrorIs(t, err, e.ErrWouldCreateCycle)
	})

	t.Run("move under own descendant", func(t *testing.T) {
		err := te.uc.MoveClass(ctx, &MoveClassReq{ClassID: phones.ID, NewParentID: int64Ptr(cases_.ID)})
		assert.ErrorIs(t, err, e.ErrWouldCreateCycle)
	})

	t.Run("move to unknown parent", func(t *testing.T) {
		err := te.uc.MoveClass(ctx, &MoveClassReq{ClassID: phones.ID, NewParentID: int64Ptr(999)})
		assert.ErrorIs(t, err, e.ErrInvalidParent)
	})

	t.Run("reparent updates subtree depth", func(t *testing.T) {
		require.NoError(t, te.uc.MoveClass(ctx, &MoveClassReq{
			ClassID: accessories.ID, NewParentID: int64Ptr(root.ID),
		}))

		moved, err := te.store.Classes().GetByID(ctx, accessories.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, moved.Depth)

		nested, err := te.store.Classes().GetByID(ctx, cases_.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, nested.Depth)

		phonesIsLeaf, err := te.uc.IsLeaf(ctx, phones.ID)
		require.NoError(t, err)
		assert.True(t, phonesIsLeaf)
	})

	t.Run("move to root", func(t *testing.T) {
		require.NoError(t, te.uc.MoveClass(ctx, &MoveClassReq{ClassID: accessories.ID}))

		moved, err := te.store.Classes().GetByID(ctx, accessories.ID)
		require.NoError(t, err)
		assert.Nil(t, moved.ParentID)
		assert.Equal(t, 1, moved.Depth)
	})
}

func TestDeleteClass(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "electronics", nil, nil)
	phones := te.mustCreate(t, "phones", int64Ptr(root.ID), nil)

	t.Run("refuses class with children", func(t *testing.T) {
		err := te.uc.DeleteClass(ctx, root.ID)
		assert.ErrorIs(t, err, e.ErrHasChildren)
	})

	t.Run("refuses class with bound products", func(t *testing.T) {
		require.NoError(t, te.uc.BindProduct(ctx, phones.ID, "3f6be0dc-6f09-4a40-b7a2-5c2d66d7ab9e"))

		err := te.uc.DeleteClass(ctx, phones.ID)
		assert.ErrorIs(t, err, e.ErrHasBoundProducts)

		require.NoError(t, te.uc.UnbindProduct(ctx, "3f6be0dc-6f09-4a40-b7a2-5c2d66d7ab9e"))
	})

	t.Run("deletes leaf and restores parent leaf flag", func(t *testing.T) {
		require.NoError(t, te.uc.DeleteClass(ctx, phones.ID))

		_, err := te.store.Classes().GetByID(ctx, phones.ID)
		assert.ErrorIs(t, err, e.ErrNotFound)

		rootIsLeaf, err := te.uc.IsLeaf(ctx, root.ID)
		require.NoError(t, err)
		assert.True(t, rootIsLeaf)
	})

	t.Run("unknown class", func(t *testing.T) {
		err := te.uc.DeleteClass(ctx, 999)
		assert.ErrorIs(t, err, e.ErrNotFound)
	})
}

func TestResolve_PriceInheritance(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	electronics := te.mustCreate(t, "electronics", nil, int64Ptr(500_000))
	phones := te.mustCreate(t, "phones", int64Ptr(electronics.ID), nil)
	caseX := te.mustCreate(t, "case-x", int64Ptr(phones.ID), nil)

	profile, err := te.uc.Resolve(ctx, caseX.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500_000), profile.Price)
	require.NotNil(t, profile.PriceClassID)
	assert.Equal(t, electronics.ID, *profile.PriceClassID)

	// Ближний предок с явной ценой побеждает дальнего.
	require.NoError(t, te.uc.SetPrice(ctx, phones.ID, int64Ptr(300_000)))

	profile, err = te.uc.Resolve(ctx, caseX.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300_000), profile.Price)
	require.NotNil(t, profile.PriceClassID)
	assert.Equal(t, phones.ID, *profile.PriceClassID)

	// Сброс цены возвращает наследование от корня.
	require.NoError(t, te.uc.SetPrice(ctx, phones.ID, nil))

	profile, err = te.uc.Resolve(ctx, caseX.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500_000), profile.Price)
	require.NotNil(t, profile.PriceClassID)
	assert.Equal(t, electronics.ID, *profile.PriceClassID)
}

func TestResolve_PriceFallback(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "unpriced", nil, nil)
	child := te.mustCreate(t, "child", int64Ptr(root.ID), nil)

	profile, err := te.uc.Resolve(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), profile.Price)
	assert.Nil(t, profile.PriceClassID)
}

func TestResolve_UnknownClass(t *testing.T) {
	te := newTestEngine(50)

	_, err := te.uc.Resolve(context.Background(), 42)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestSetPrice_Validation(t *testing.T) {
	te := newTestEngine(50)

	root := te.mustCreate(t, "electronics", nil, nil)
	err := te.uc.SetPrice(context.Background(), root.ID, int64Ptr(-100))
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestAttributes_InheritanceAndOverride(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	typeUC := NewAttributeTypeUseCase(te.store.AttributeTypes(), memtree.NewTransactor(), logger.NewSlogLogger())

	brand, err := typeUC.CreateAttributeType(ctx, &CreateAttributeTypeReq{
		Name: "brand", DisplayName: "Бренд", Kind: domain.KindText,
	})
	require.NoError(t, err)

	internal, err := typeUC.CreateAttributeType(ctx, &CreateAttributeTypeReq{
		Name: "internal_code", DisplayName: "Внутренний код", Kind: domain.KindText,
	})
	require.NoError(t, err)

	root := te.mustCreate(t, "electronics", nil, nil)
	child := te.mustCreate(t, "phones", int64Ptr(root.ID), nil)

	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: root.ID, AttributeTypeID: brand.ID,
		DefaultValue: "Acme", Inheritable: true, Overridable: true,
	})
	require.NoError(t, err)

	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: root.ID, AttributeTypeID: internal.ID,
		DefaultValue: "root-only", Inheritable: false, Overridable: true,
	})
	require.NoError(t, err)

	t.Run("child inherits inheritable attribute", func(t *testing.T) {
		profile, err := te.uc.Resolve(ctx, child.ID)
		require.NoError(t, err)

		attr, ok := profile.Attributes[brand.ID]
		require.True(t, ok)
		assert.Equal(t, root.ID, attr.DefinedBy)
		assert.Equal(t, "Acme", attr.DefaultValue)
		assert.Equal(t, "brand", attr.Name)

		_, ok = profile.Attributes[internal.ID]
		assert.False(t, ok, "non-inheritable attribute must not reach descendants")
	})

	t.Run("non-inheritable attribute visible on own class", func(t *testing.T) {
		profile, err := te.uc.Resolve(ctx, root.ID)
		require.NoError(t, err)

		_, ok := profile.Attributes[internal.ID]
		assert.True(t, ok)
	})

	t.Run("closer definition wins", func(t *testing.T) {
		_, err := te.uc.AddAttribute(ctx, &AddAttributeReq{
			ClassID: child.ID, AttributeTypeID: brand.ID,
			DefaultValue: "SubAcme", Inheritable: true, Overridable: true,
		})
		require.NoError(t, err)

		profile, err := te.uc.Resolve(ctx, child.ID)
		require.NoError(t, err)

		attr := profile.Attributes[brand.ID]
		assert.Equal(t, child.ID, attr.DefinedBy)
		assert.Equal(t, "SubAcme", attr.DefaultValue)
	})

	t.Run("duplicate definition rejected", func(t *testing.T) {
		_, err := te.uc.AddAttribute(ctx, &AddAttributeReq{
			ClassID: child.ID, AttributeTypeID: brand.ID, DefaultValue: "again",
		})
		assert.ErrorIs(t, err, e.ErrDuplicateAttribute)
	})
}

func TestAddAttribute_NonOverridableConflict(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	typeUC := NewAttributeTypeUseCase(te.store.AttributeTypes(), memtree.NewTransactor(), logger.NewSlogLogger())
	origin, err := typeUC.CreateAttributeType(ctx, &CreateAttributeTypeReq{
		Name: "origin", DisplayName: "Страна", Kind: domain.KindText,
	})
	require.NoError(t, err)

	root := te.mustCreate(t, "food", nil, nil)
	mid := te.mustCreate(t, "dairy", int64Ptr(root.ID), nil)
	leaf := te.mustCreate(t, "milk", int64Ptr(mid.ID), nil)

	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: root.ID, AttributeTypeID: origin.ID,
		DefaultValue: "IR", Inheritable: true, Overridable: false,
	})
	require.NoError(t, err)

	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: leaf.ID, AttributeTypeID: origin.ID, DefaultValue: "TR",
	})
	assert.ErrorIs(t, err, e.ErrNonOverridableConflict)
}

func TestUpdateAttribute_NonOverridableFlagFlip(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	typeUC := NewAttributeTypeUseCase(te.store.AttributeTypes(), memtree.NewTransactor(), logger.NewSlogLogger())
	color, err := typeUC.CreateAttributeType(ctx, &CreateAttributeTypeReq{
		Name: "color", DisplayName: "Цвет", Kind: domain.KindText,
	})
	require.NoError(t, err)

	root := te.mustCreate(t, "clothes", nil, nil)
	child := te.mustCreate(t, "shirts", int64Ptr(root.ID), nil)

	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: root.ID, AttributeTypeID: color.ID,
		DefaultValue: "red", Inheritable: true, Overridable: true,
	})
	require.NoError(t, err)

	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: child.ID, AttributeTypeID: color.ID, DefaultValue: "blue",
	})
	require.NoError(t, err)

	// Пока потомок определяет тот же тип, запрет переопределения включить нельзя.
	err = te.uc.UpdateAttribute(ctx, &UpdateAttributeReq{
		ClassID: root.ID, AttributeTypeID: color.ID,
		DefaultValue: "red", Inheritable: true, Overridable: false,
	})
	assert.ErrorIs(t, err, e.ErrNonOverridableConflict)

	profile, err := te.uc.Resolve(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, "blue", profile.Attributes[color.ID].DefaultValue)
	assert.Equal(t, child.ID, profile.Attributes[color.ID].DefinedBy)

	// После снятия определения потомка флаг меняется свободно.
	require.NoError(t, te.uc.RemoveAttribute(ctx, child.ID, color.ID))
	err = te.uc.UpdateAttribute(ctx, &UpdateAttributeReq{
		ClassID: root.ID, AttributeTypeID: color.ID,
		DefaultValue: "red", Inheritable: true, Overridable: false,
	})
	require.NoError(t, err)
}

func TestAddAttribute_DescendantAlreadyDefines(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	typeUC := NewAttributeTypeUseCase(te.store.AttributeTypes(), memtree.NewTransactor(), logger.NewSlogLogger())
	material, err := typeUC.CreateAttributeType(ctx, &CreateAttributeTypeReq{
		Name: "material", DisplayName: "Материал", Kind: domain.KindText,
	})
	require.NoError(t, err)

	root := te.mustCreate(t, "furniture", nil, nil)
	mid := te.mustCreate(t, "tables", int64Ptr(root.ID), nil)
	leaf := te.mustCreate(t, "desks", int64Ptr(mid.ID), nil)

	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: leaf.ID, AttributeTypeID: material.ID, DefaultValue: "oak",
	})
	require.NoError(t, err)

	// Предок не может объявить тот же тип наследуемым без переопределения:
	// определение потомка стало бы нелегальным.
	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: root.ID, AttributeTypeID: material.ID,
		DefaultValue: "pine", Inheritable: true, Overridable: false,
	})
	assert.ErrorIs(t, err, e.ErrNonOverridableConflict)

	// С разрешенным переопределением конфликта нет.
	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: root.ID, AttributeTypeID: material.ID,
		DefaultValue: "pine", Inheritable: true, Overridable: true,
	})
	require.NoError(t, err)
}

func TestAddAttribute_DefaultValueValidated(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	typeUC := NewAttributeTypeUseCase(te.store.AttributeTypes(), memtree.NewTransactor(), logger.NewSlogLogger())
	weight, err := typeUC.CreateAttributeType(ctx, &CreateAttributeTypeReq{
		Name: "weight", DisplayName: "Вес", Kind: domain.KindNumber,
	})
	require.NoError(t, err)

	root := te.mustCreate(t, "food", nil, nil)

	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: root.ID, AttributeTypeID: weight.ID, DefaultValue: "not a number",
	})
	assert.ErrorIs(t, err, e.ErrInvalidAttributeValue)
}

func TestUpdateAndRemoveAttribute(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	typeUC := NewAttributeTypeUseCase(te.store.AttributeTypes(), memtree.NewTransactor(), logger.NewSlogLogger())
	brand, err := typeUC.CreateAttributeType(ctx, &CreateAttributeTypeReq{
		Name: "brand", DisplayName: "Бренд", Kind: domain.KindText,
	})
	require.NoError(t, err)

	root := te.mustCreate(t, "electronics", nil, nil)
	child := te.mustCreate(t, "phones", int64Ptr(root.ID), nil)

	_, err = te.uc.AddAttribute(ctx, &AddAttributeReq{
		ClassID: root.ID, AttributeTypeID: brand.ID,
		DefaultValue: "Acme", Inheritable: true, Overridable: true,
	})
	require.NoError(t, err)

	require.NoError(t, te.uc.UpdateAttribute(ctx, &UpdateAttributeReq{
		ClassID: root.ID, AttributeTypeID: brand.ID,
		DefaultValue: "NewAcme", Inheritable: true, Overridable: true,
	}))

	profile, err := te.uc.Resolve(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, "NewAcme", profile.Attributes[brand.ID].DefaultValue)

	require.NoError(t, te.uc.RemoveAttribute(ctx, root.ID, brand.ID))

	profile, err = te.uc.Resolve(ctx, child.ID)
	require.NoError(t, err)
	_, ok := profile.Attributes[brand.ID]
	assert.False(t, ok)

	err = te.uc.RemoveAttribute(ctx, root.ID, brand.ID)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestResolve_MediaMergedWithoutDuplicates(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "electronics", nil, nil)
	child := te.mustCreate(t, "phones", int64Ptr(root.ID), nil)

	rootClass, err := te.store.Classes().GetByID(ctx, root.ID)
	require.NoError(t, err)
	rootClass.MediaKeys = []string{"classes/1/banner.png", "classes/1/shared.png"}
	require.NoError(t, te.store.Classes().Update(ctx, rootClass))

	childClass, err := te.store.Classes().GetByID(ctx, child.ID)
	require.NoError(t, err)
	childClass.MediaKeys = []string{"classes/1/shared.png", "classes/2/own.png"}
	require.NoError(t, te.store.Classes().Update(ctx, childClass))

	profile, err := te.uc.Resolve(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"classes/1/banner.png", "classes/1/shared.png", "classes/2/own.png"},
		profile.MediaKeys,
	)
}

func TestResolve_CacheLifecycle(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "electronics", nil, int64Ptr(500_000))
	child := te.mustCreate(t, "phones", int64Ptr(root.ID), nil)

	_, err := te.uc.Resolve(ctx, root.ID)
	require.NoError(t, err)
	_, err = te.uc.Resolve(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, te.cache.Len())

	// Мутация корня инвалидирует профиль всего поддерева.
	require.NoError(t, te.uc.SetPrice(ctx, root.ID, int64Ptr(600_000)))
	assert.Equal(t, 0, te.cache.Len())

	profile, err := te.uc.Resolve(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(600_000), profile.Price)
}

func TestBindingGate(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "electronics", nil, int64Ptr(500_000))
	leaf := te.mustCreate(t, "phones", int64Ptr(root.ID), nil)

	t.Run("non-leaf rejected", func(t *testing.T) {
		decision, err := te.uc.CanBindProduct(ctx, root.ID)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.NotEmpty(t, decision.Reason)
		assert.Nil(t, decision.Profile)

		err = te.uc.BindProduct(ctx, root.ID, "1b9b02da-57ad-4c6e-b4e5-69a3ba3cf1f4")
		assert.ErrorIs(t, err, e.ErrClassNotLeaf)
	})

	t.Run("inactive rejected", func(t *testing.T) {
		require.NoError(t, te.uc.SetActive(ctx, leaf.ID, false))

		decision, err := te.uc.CanBindProduct(ctx, leaf.ID)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)

		err = te.uc.BindProduct(ctx, leaf.ID, "1b9b02da-57ad-4c6e-b4e5-69a3ba3cf1f4")
		assert.ErrorIs(t, err, e.ErrClassInactive)

		require.NoError(t, te.uc.SetActive(ctx, leaf.ID, true))
	})

	t.Run("active leaf allowed with profile", func(t *testing.T) {
		decision, err := te.uc.CanBindProduct(ctx, leaf.ID)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		require.NotNil(t, decision.Profile)
		assert.Equal(t, int64(500_000), decision.Profile.Price)
	})

	t.Run("bind and rebind", func(t *testing.T) {
		const productID = "b1da1f3e-88b4-47d2-b1f3-32a71cf8e21c"

		require.NoError(t, te.uc.BindProduct(ctx, leaf.ID, productID))

		err := te.uc.BindProduct(ctx, leaf.ID, productID)
		assert.ErrorIs(t, err, e.ErrProductAlreadyBound)

		require.NoError(t, te.uc.UnbindProduct(ctx, productID))
		require.NoError(t, te.uc.BindProduct(ctx, leaf.ID, productID))
	})

	t.Run("unbind unknown product", func(t *testing.T) {
		err := te.uc.UnbindProduct(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, e.ErrNotFound)
	})
}

func TestChildren_Ordering(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "electronics", nil, nil)

	second, err := te.uc.CreateClass(ctx, &CreateClassReq{
		StoreID: testStoreID, Name: "second", ParentID: int64Ptr(root.ID), DisplayOrder: 2,
	})
	require.NoError(t, err)
	first, err := te.uc.CreateClass(ctx, &CreateClassReq{
		StoreID: testStoreID, Name: "first", ParentID: int64Ptr(root.ID), DisplayOrder: 1,
	})
	require.NoError(t, err)
	tied, err := te.uc.CreateClass(ctx, &CreateClassReq{
		StoreID: testStoreID, Name: "tied", ParentID: int64Ptr(root.ID), DisplayOrder: 2,
	})
	require.NoError(t, err)

	children, err := te.uc.Children(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, first.ID, children[0].ID)
	// При равном display_order порядок определяет ID.
	assert.Equal(t, second.ID, children[1].ID)
	assert.Equal(t, tied.ID, children[2].ID)

	_, err = te.uc.Children(ctx, 999)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestAncestorsAndDescendants(t *testing.T) {
	te := newTestEngine(50)
	ctx := context.Background()

	root := te.mustCreate(t, "electronics", nil, nil)
	phones := te.mustCreate(t, "phones", int64Ptr(root.ID), nil)
	caseX := te.mustCreate(t, "case-x", int64Ptr(phones.ID), nil)

	chain, err := te.uc.Ancestors(ctx, caseX.ID, true)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, caseX.ID, chain[0].ID)
	assert.Equal(t, phones.ID, chain[1].ID)
	assert.Equal(t, root.ID, chain[2].ID)

	chain, err = te.uc.Ancestors(ctx, caseX.ID, false)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, phones.ID, chain[0].ID)

	ids, err := te.uc.Descendants(ctx, root.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{phones.ID, caseX.ID}, ids)

	ids, err = te.uc.Descendants(ctx, caseX.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
