package wishlist

import (
	"context"
	"slices"
	"sync"

	"priyasi-storefront/internal/storage"
)

// Store is one shopper's wishlist: products keyed by id, kept in insertion order.
type Store struct {
	slot *storage.Slot[state]

	mu    sync.RWMutex
	items []Item
}

func NewStore(backend storage.Backend, shopperID string) *Store {
	return &Store{
		slot:  storage.NewSlot[state](backend, storage.Key(storage.NamespaceWishlist, shopperID)),
		items: []Item{},
	}
}

func (s *Store) Degraded() bool { return s.slot.Degraded() }

func (s *Store) Load(ctx context.Context) {
	st := s.slot.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = st.Items
	if s.items == nil {
		s.items = []Item{}
	}
}

func (s *Store) Save(ctx context.Context) {
	s.mu.RLock()
	st := state{Items: slices.Clone(s.items)}
	s.mu.RUnlock()

	s.slot.Save(ctx, st)
}

func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// AddItem saves p unless a product with the same id is already present.
func (s *Store) AddItem(ctx context.Context, p Item) error {
	if p.ID == "" {
		return ErrInvalidProduct
	}

	s.mu.Lock()
	if s.indexOf(p.ID) >= 0 {
		s.mu.Unlock()
		return nil
	}
	s.items = append(s.items, p)
	s.mu.Unlock()

	s.Save(ctx)
	return nil
}

// RemoveItem drops the product with id. Unknown ids are ignored.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.mu.Unlock()

	s.Save(ctx)
}

func (s *Store) IsInWishlist(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

func (s *Store) ClearWishlist(ctx context.Context) {
	s.mu.Lock()
	s.items = []Item{}
	s.mu.Unlock()

	s.Save(ctx)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(it Item) bool { return it.ID == id })
}
