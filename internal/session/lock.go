package session

import "sync"

// shopperLocks hands out one mutex per shopper id. Entries are dropped once no
// request holds or waits for them.
type shopperLocks struct {
	mu    sync.Mutex
	locks map[string]*shopperLock
}

type shopperLock struct {
	mu   sync.Mutex
	refs int
}

func newShopperLocks() *shopperLocks {
	return &shopperLocks{locks: make(map[string]*shopperLock)}
}

// lock blocks until id is free and returns the matching unlock.
func (l *shopperLocks) lock(id string) func() {
	l.mu.Lock()
	sl, ok := l.locks[id]
	if !ok {
		sl = &shopperLock{}
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()

	return func() {
		sl.mu.Unlock()

		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *shopperLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
