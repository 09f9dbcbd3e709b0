package memtree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

func ptr(v int64) *int64 { return &v }

func mustCreateClass(t *testing.T, s *Store, name string, parentID *int64) *domain.ProductClass {
	t.Helper()
	created, err := s.Classes().Create(context.Background(), domain.NewProductClass(1, name, parentID, nil, 0))
	require.NoError(t, err)
	return created
}

func TestClassRepo_DerivedFields(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	root := mustCreateClass(t, s, "root", nil)
	assert.Equal(t, 1, root.Depth)
	assert.True(t, root.IsLeaf)

	child := mustCreateClass(t, s, "child", ptr(root.ID))
	assert.Equal(t, 2, child.Depth)

	got, err := s.Classes().GetByID(ctx, root.ID)
	require.NoError(t, err)
	assert.False(t, got.IsLeaf)

	require.NoError(t, s.Classes().Delete(ctx, child.ID))

	got, err = s.Classes().GetByID(ctx, root.ID)
	require.NoError(t, err)
	assert.True(t, got.IsLeaf)
}

func TestClassRepo_SetParentRecomputesSubtreeDepth(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	rootA := mustCreateClass(t, s, "a", nil)
	rootB := mustCreateClass(t, s, "b", nil)
	mid := mustCreateClass(t, s, "mid", ptr(rootA.ID))
	leaf := mustCreateClass(t, s, "leaf", ptr(mid.ID))

	require.NoError(t, s.Classes().SetParent(ctx, mid.ID, ptr(rootB.ID)))

	got, err := s.Classes().GetByID(ctx, mid.ID)
	require.NoError(t, err)
	assert.Equal(t, rootB.ID, *got.ParentID)
	assert.Equal(t, 2, got.Depth)

	got, err = s.Classes().GetByID(ctx, leaf.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Depth)

	// Старый родитель снова лист, новый перестал им быть.
	got, err = s.Classes().GetByID(ctx, rootA.ID)
	require.NoError(t, err)
	assert.True(t, got.IsLeaf)

	got, err = s.Classes().GetByID(ctx, rootB.ID)
	require.NoError(t, err)
	assert.False(t, got.IsLeaf)

	// В корень.
	require.NoError(t, s.Classes().SetParent(ctx, mid.ID, nil))
	got, err = s.Classes().GetByID(ctx, mid.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
	assert.Equal(t, 1, got.Depth)
}

func TestClassRepo_DeleteGuards(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	root := mustCreateClass(t, s, "root", nil)
	mustCreateClass(t, s, "child", ptr(root.ID))

	err := s.Classes().Delete(ctx, root.ID)
	assert.ErrorIs(t, err, e.ErrHasChildren)

	err = s.Classes().Delete(ctx, 999)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestClassRepo_ReadsReturnCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	root := mustCreateClass(t, s, "root", nil)

	got, err := s.Classes().GetByID(ctx, root.ID)
	require.NoError(t, err)
	got.Name = "mutated"
	got.MediaKeys = append(got.MediaKeys, "sneaky.png")

	fresh, err := s.Classes().GetByID(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, "root", fresh.Name)
	assert.Empty(t, fresh.MediaKeys)
}

func TestClassRepo_ChildrenSorted(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	root := mustCreateClass(t, s, "root", nil)

	second, err := s.Classes().Create(ctx, domain.NewProductClass(1, "second", ptr(root.ID), nil, 5))
	require.NoError(t, err)
	first, err := s.Classes().Create(ctx, domain.NewProductClass(1, "first", ptr(root.ID), nil, 1))
	require.NoError(t, err)

	children, err := s.Classes().Children(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, first.ID, children[0].ID)
	assert.Equal(t, second.ID, children[1].ID)
}

func TestClassRepo_AncestorsAndDescendants(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	root := mustCreateClass(t, s, "root", nil)
	mid := mustCreateClass(t, s, "mid", ptr(root.ID))
	leaf := mustCreateClass(t, s, "leaf", ptr(mid.ID))
	sibling := mustCreateClass(t, s, "sibling", ptr(root.ID))

	chain, err := s.Classes().Ancestors(ctx, leaf.ID, true)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, []int64{leaf.ID, mid.ID, root.ID}, []int64{chain[0].ID, chain[1].ID, chain[2].ID})

	chain, err = s.Classes().Ancestors(ctx, root.ID, false)
	require.NoError(t, err)
	assert.Empty(t, chain)

	ids, err := s.Classes().Descendants(ctx, root.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{mid.ID, leaf.ID, sibling.ID}, ids)

	hasChildren, err := s.Classes().HasChildren(ctx, leaf.ID)
	require.NoError(t, err)
	assert.False(t, hasChildren)
}

func TestAttributeTypeRepo_NameUniqueness(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	brand, err := s.AttributeTypes().Create(ctx, &domain.AttributeType{Name: "brand", Kind: domain.KindText})
	require.NoError(t, err)

	_, err = s.AttributeTypes().Create(ctx, &domain.AttributeType{Name: "brand", Kind: domain.KindText})
	assert.ErrorIs(t, err, e.ErrAttributeTypeNameTaken)

	other, err := s.AttributeTypes().Create(ctx, &domain.AttributeType{Name: "weight", Kind: domain.KindNumber})
	require.NoError(t, err)

	// Переименование в занятое имя отклоняется, в свободное освобождает старое.
	other.Name = "brand"
	assert.ErrorIs(t, s.AttributeTypes().Update(ctx, other), e.ErrAttributeTypeNameTaken)

	brand.Name = "manufacturer"
	require.NoError(t, s.AttributeTypes().Update(ctx, brand))

	reborn, err := s.AttributeTypes().Create(ctx, &domain.AttributeType{Name: "brand", Kind: domain.KindText})
	require.NoError(t, err)
	assert.NotZero(t, reborn.ID)
}

func TestClassAttributeRepo(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	class := mustCreateClass(t, s, "root", nil)
	brand, err := s.AttributeTypes().Create(ctx, &domain.AttributeType{Name: "brand", Kind: domain.KindText})
	require.NoError(t, err)

	_, err = s.ClassAttributes().Add(ctx, domain.NewClassAttribute(999, brand.ID, "", false, true, true, 0))
	assert.ErrorIs(t, err, e.ErrNotFound)

	_, err = s.ClassAttributes().Add(ctx, domain.NewClassAttribute(class.ID, 999, "", false, true, true, 0))
	assert.ErrorIs(t, err, e.ErrNotFound)

	added, err := s.ClassAttributes().Add(ctx, domain.NewClassAttribute(class.ID, brand.ID, "Acme", true, true, true, 0))
	require.NoError(t, err)
	assert.NotZero(t, added.ID)

	_, err = s.ClassAttributes().Add(ctx, domain.NewClassAttribute(class.ID, brand.ID, "again", false, true, true, 0))
	assert.ErrorIs(t, err, e.ErrDuplicateAttribute)

	referenced, err := s.AttributeTypes().IsReferenced(ctx, brand.ID)
	require.NoError(t, err)
	assert.True(t, referenced)

	require.NoError(t, s.ClassAttributes().Remove(ctx, class.ID, brand.ID))

	referenced, err = s.AttributeTypes().IsReferenced(ctx, brand.ID)
	require.NoError(t, err)
	assert.False(t, referenced)
}

func TestBindingRepo(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	class := mustCreateClass(t, s, "root", nil)

	const productID = "0d4c4c4e-6d5a-4b86-9f6a-0a8df1a3a111"

	require.NoError(t, s.Bindings().Bind(ctx, domain.NewProductBinding(productID, class.ID)))

	err := s.Bindings().Bind(ctx, domain.NewProductBinding(productID, class.ID))
	assert.ErrorIs(t, err, e.ErrProductAlreadyBound)

	count, err := s.Bindings().CountBindings(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	classID, err := s.Bindings().Unbind(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, class.ID, classID)

	has, err := s.Bindings().HasBindings(ctx, class.ID)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = s.Bindings().Unbind(ctx, productID)
	assert.ErrorIs(t, err, e.ErrNotFound)
}
