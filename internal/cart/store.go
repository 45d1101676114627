package cart

import (
	"context"
	"slices"
	"sync"

	"priyasi-storefront/internal/logger"
	"priyasi-storefront/internal/storage"

	"go.uber.org/zap"
)

// Store is one shopper's cart. Every mutation is persisted through the slot
// before it returns.
type Store struct {
	slot *storage.Slot[state]

	mu    sync.RWMutex
	items []LineItem
}

// NewStore returns an empty cart persisted under the shopper's cart key. Call
// Load to pick up earlier state.
func NewStore(backend storage.Backend, shopperID string) *Store {
	return &Store{
		slot:  storage.NewSlot[state](backend, storage.Key(storage.NamespaceCart, shopperID)),
		items: []LineItem{},
	}
}

// Degraded reports whether persistence failed and the cart lives in memory only.
func (s *Store) Degraded() bool { return s.slot.Degraded() }

// Load replaces the in-memory lines with the persisted ones.
func (s *Store) Load(ctx context.Context) {
	st := s.slot.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = st.Items
	if s.items == nil {
		s.items = []LineItem{}
	}
}

func (s *Store) Save(ctx context.Context) {
	s.mu.RLock()
	st := state{Items: slices.Clone(s.items)}
	s.mu.RUnlock()

	s.slot.Save(ctx, st)
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// TotalQuantity is the sum of all line quantities.
func (s *Store) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, li := range s.items {
		total += li.Quantity
	}
	return total
}

// AddItem appends item, or increments the quantity of the existing line with the
// same product and variant. The existing snapshot is kept in that case.
func (s *Store) AddItem(ctx context.Context, item LineItem) error {
	if item.ProductID == "" || item.VariantID == "" {
		return ErrInvalidLineItem
	}
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	if i := s.indexOf(item.ProductID, item.VariantID); i >= 0 {
		s.items[i].Quantity += item.Quantity
	} else {
		s.items = append(s.items, item)
	}
	s.mu.Unlock()

	logger.FromCtx(ctx).Debug("cart line added",
		zap.String("product_id", item.ProductID),
		zap.String("variant_id", item.VariantID),
		zap.Int("quantity", item.Quantity),
	)
	s.Save(ctx)
	return nil
}

func (s *Store) RemoveItem(ctx context.Context, productID, variantID string) error {
	s.mu.Lock()
	i := s.indexOf(productID, variantID)
	if i < 0 {
		s.mu.Unlock()
		return ErrLineItemNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.mu.Unlock()

	s.Save(ctx)
	return nil
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less removes
// the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID, variantID string, qty int) error {
	if qty <= 0 {
		return s.RemoveItem(ctx, productID, variantID)
	}

	s.mu.Lock()
	i := s.indexOf(productID, variantID)
	if i < 0 {
		s.mu.Unlock()
		return ErrLineItemNotFound
	}
	s.items[i].Quantity = qty
	s.mu.Unlock()

	s.Save(ctx)
	return nil
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = []LineItem{}
	s.mu.Unlock()

	s.Save(ctx)
}

// indexOf must be called with mu held.
func (s *Store) indexOf(productID, variantID string) int {
	return slices.IndexFunc(s.items, func(li LineItem) bool {
		return li.sameLine(productID, variantID)
	})
}
