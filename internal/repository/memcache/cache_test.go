package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
)

func profile(classID int64) *domain.ResolvedProfile {
	return &domain.ResolvedProfile{
		ClassID:    classID,
		Price:      500_000,
		Attributes: map[int64]domain.ResolvedAttribute{},
	}
}

func TestCache_SetGetDelete(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, profile(1)))
	require.NoError(t, c.Set(ctx, profile(2)))
	assert.Equal(t, 2, c.Len())

	got, err = c.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(500_000), got.Price)

	require.NoError(t, c.Delete(ctx, []int64{1, 3}))
	assert.Equal(t, 1, c.Len())

	got, err = c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_TTL(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	current := time.Now()
	c.now = func() time.Time { return current }

	require.NoError(t, c.Set(ctx, profile(1)))

	current = current.Add(30 * time.Second)
	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, got)

	// Протухшая запись удаляется лениво при чтении.
	current = current.Add(31 * time.Second)
	got, err = c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, c.Len())
}

func TestCache_ReadsReturnCopies(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	stored := profile(1)
	stored.Attributes[7] = domain.ResolvedAttribute{AttributeTypeID: 7, DefaultValue: "red"}
	stored.MediaKeys = []string{"banner"}
	require.NoError(t, c.Set(ctx, stored))

	// Мутация оригинала после Set не видна кэшу.
	stored.Attributes[7] = domain.ResolvedAttribute{AttributeTypeID: 7, DefaultValue: "hacked"}
	stored.MediaKeys[0] = "hacked"

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "red", got.Attributes[7].DefaultValue)
	assert.Equal(t, []string{"banner"}, got.MediaKeys)

	// Мутация выданной копии не портит последующие чтения.
	got.Attributes[7] = domain.ResolvedAttribute{AttributeTypeID: 7, DefaultValue: "hacked"}
	got.MediaKeys[0] = "hacked"

	again, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "red", again.Attributes[7].DefaultValue)
	assert.Equal(t, []string{"banner"}, again.MediaKeys)
}
