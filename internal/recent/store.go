package recent

import (
	"context"
	"slices"
	"strings"
	"sync"

	"priyasi-storefront/internal/storage"
)

// MaxEntries caps the history length.
const MaxEntries = 8

type state struct {
	ProductHandles []string `json:"productHandles"`
}

// Store is one shopper's recently viewed product handles, newest first.
type Store struct {
	slot *storage.Slot[state]

	mu      sync.RWMutex
	handles []string
}

func NewStore(backend storage.Backend, shopperID string) *Store {
	return &Store{
		slot:    storage.NewSlot[state](backend, storage.Key(storage.NamespaceRecentlyViewed, shopperID)),
		handles: []string{},
	}
}

func (s *Store) Degraded() bool { return s.slot.Degraded() }

// Load reads the persisted history. A stored list longer than MaxEntries is cut.
func (s *Store) Load(ctx context.Context) {
	st := s.slot.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.handles = []string{}
	for _, h := range st.ProductHandles {
		if h != "" && !slices.Contains(s.handles, h) && len(s.handles) < MaxEntries {
			s.handles = append(s.handles, h)
		}
	}
}

func (s *Store) Save(ctx context.Context) {
	s.mu.RLock()
	st := state{ProductHandles: slices.Clone(s.handles)}
	s.mu.RUnlock()

	s.slot.Save(ctx, st)
}

func (s *Store) Handles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.handles)
}

// AddProduct moves handle to the front, dropping the oldest entry past MaxEntries.
// Blank handles are ignored.
func (s *Store) AddProduct(ctx context.Context, handle string) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return
	}

	s.mu.Lock()
	if i := slices.Index(s.handles, handle); i >= 0 {
		s.handles = slices.Delete(s.handles, i, i+1)
	}
	s.handles = slices.Insert(s.handles, 0, handle)
	if len(s.handles) > MaxEntries {
		s.handles = s.handles[:MaxEntries]
	}
	s.mu.Unlock()

	s.Save(ctx)
}

func (s *Store) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	s.handles = []string{}
	s.mu.Unlock()

	s.Save(ctx)
}
