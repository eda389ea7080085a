package history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/rephrase-master/internal/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	item := NewItem("ありがとう", "感謝いたします", styles.Keigo)

	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, styles.Keigo, item.Style)
}

func TestMemoryStore_AddAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := store.Add(ctx, Item{
			Original:  "text",
			Rephrased: "rephrased",
			Style:     styles.Poet,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	items, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, base.Add(2*time.Minute), items[0].CreatedAt)
	assert.Equal(t, base, items[2].CreatedAt)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryStore_AddAssignsIDAndTime(t *testing.T) {
	store := NewMemoryStore()

	item, err := store.Add(context.Background(), Item{Original: "a", Rephrased: "b", Style: styles.Gyaru})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	item, err := store.Add(ctx, NewItem("a", "b", styles.Meigen))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, item.ID))

	err = store.Delete(ctx, item.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, item.ID, notFound.ID)
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Add(ctx, NewItem("a", "b", styles.Meigen))
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	items, err := store.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}
