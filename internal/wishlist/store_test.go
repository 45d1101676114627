package wishlist

import (
	"context"
	"testing"

	"priyasi-storefront/internal/catalog"
	"priyasi-storefront/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string) catalog.Product {
	return catalog.Product{ID: id, Handle: "h-" + id, Title: "T " + id}
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	s := NewStore(backend, "shopper-1")
	s.Load(ctx)

	t.Run("Add is idempotent", func(t *testing.T) {
		require.NoError(t, s.AddItem(ctx, product("p1")))
		require.NoError(t, s.AddItem(ctx, product("p1")))

		assert.Len(t, s.Items(), 1)
		assert.True(t, s.IsInWishlist("p1"))
	})

	t.Run("Insertion order", func(t *testing.T) {
		require.NoError(t, s.AddItem(ctx, product("p2")))
		require.NoError(t, s.AddItem(ctx, product("p3")))

		items := s.Items()
		require.Len(t, items, 3)
		assert.Equal(t, []string{"p1", "p2", "p3"}, []string{items[0].ID, items[1].ID, items[2].ID})
	})

	t.Run("Rejects product without id", func(t *testing.T) {
		assert.ErrorIs(t, s.AddItem(ctx, catalog.Product{}), ErrInvalidProduct)
	})

	t.Run("Remove", func(t *testing.T) {
		s.RemoveItem(ctx, "p2")
		s.RemoveItem(ctx, "unknown")

		assert.False(t, s.IsInWishlist("p2"))
		assert.Len(t, s.Items(), 2)
	})

	t.Run("Persisted", func(t *testing.T) {
		again := NewStore(backend, "shopper-1")
		again.Load(ctx)

		assert.Equal(t, s.Items(), again.Items())
	})

	t.Run("Clear", func(t *testing.T) {
		s.ClearWishlist(ctx)

		assert.Empty(t, s.Items())
		assert.False(t, s.IsInWishlist("p1"))
	})
}
