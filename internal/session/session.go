package session

import (
	"context"
	"sync"

	"priyasi-storefront/internal/cart"
	"priyasi-storefront/internal/recent"
	"priyasi-storefront/internal/storage"
	"priyasi-storefront/internal/wishlist"
)

// Session holds one shopper's three stores. They persist independently, so an
// action spanning two stores is not atomic.
//
// An open session holds the shopper's lock until Close, so overlapping requests
// of the same shopper load and save one after the other.
type Session struct {
	ShopperID string
	Cart      *cart.Store
	Wishlist  *wishlist.Store
	Recent    *recent.Store

	release func()
	once    sync.Once
}

// Degraded reports whether any store has fallen back to memory-only mode.
func (s *Session) Degraded() bool {
	return s.Cart.Degraded() || s.Wishlist.Degraded() || s.Recent.Degraded()
}

// Close releases the shopper's lock. It is safe to call more than once.
func (s *Session) Close() {
	s.once.Do(s.release)
}

type Factory struct {
	backend storage.Backend
	locks   *shopperLocks
}

func NewFactory(backend storage.Backend) *Factory {
	return &Factory{backend: backend, locks: newShopperLocks()}
}

// Open waits for the shopper's lock, then builds and loads the stores of
// shopperID. Callers must Close the session.
func (f *Factory) Open(ctx context.Context, shopperID string) *Session {
	s := &Session{
		ShopperID: shopperID,
		release:   f.locks.lock(shopperID),
		Cart:      cart.NewStore(f.backend, shopperID),
		Wishlist:  wishlist.NewStore(f.backend, shopperID),
		Recent:    recent.NewStore(f.backend, shopperID),
	}
	s.Cart.Load(ctx)
	s.Wishlist.Load(ctx)
	s.Recent.Load(ctx)
	return s
}
