package mytex

import "sync"

// RWMytex couples a value of type T with a reader/writer lock. It
// offers everything Mytex does, plus shared (read-only) acquisition:
// arbitrarily many shared holds may coexist, never concurrently with
// an exclusive hold.
//
// The zero value guards the zero value of T with a lazily installed
// sync.RWMutex. An RWMytex must not be copied after first use.
type RWMytex[T any] struct {
	once sync.Once
	mu   SharedLockable
	val  T
}

// NewRW returns an RWMytex guarding val with a sync.RWMutex.
func NewRW[T any](val T) *RWMytex[T] {
	return &RWMytex[T]{mu: &sync.RWMutex{}, val: val}
}

// NewRWWith returns an RWMytex guarding val with the supplied
// shared-capable primitive, e.g. a lockfile.Mutex for cross-process
// read/write coordination. The primitive must be unheld; mu must not
// be nil. The RWMytex owns mu from here on.
func NewRWWith[T any](mu SharedLockable, val T) *RWMytex[T] {
	if mu == nil {
		panic("mytex: NewRWWith with nil primitive")
	}
	return &RWMytex[T]{mu: mu, val: val}
}

func (m *RWMytex[T]) init() {
	m.once.Do(func() {
		if m.mu == nil {
			m.mu = &sync.RWMutex{}
		}
	})
}

// Lock acquires the lock exclusively, blocking while any exclusive or
// shared hold exists, and returns a Guard with mutable access.
func (m *RWMytex[T]) Lock() *Guard[T] {
	m.init()
	m.mu.Lock()
	return &Guard[T]{val: &m.val, unlock: m.mu.Unlock}
}

// TryLock attempts exclusive acquisition without blocking. It returns
// an empty OptGuard if any hold, exclusive or shared, currently
// exists — including one taken by the calling goroutine.
func (m *RWMytex[T]) TryLock() OptGuard[T] {
	m.init()
	if !m.mu.TryLock() {
		return OptGuard[T]{}
	}
	return OptGuard[T]{g: &Guard[T]{val: &m.val, unlock: m.mu.Unlock}}
}

// RLock acquires the lock in shared mode, blocking while an exclusive
// hold exists, and returns an RGuard with read-only access. Multiple
// shared holds may coexist.
func (m *RWMytex[T]) RLock() *RGuard[T] {
	m.init()
	m.mu.RLock()
	return &RGuard[T]{val: &m.val, unlock: m.mu.RUnlock}
}

// TryRLock attempts shared acquisition without blocking, returning an
// engaged read-only OptRGuard on success and an empty one if an
// exclusive hold exists.
//
// Whether TryRLock can fail while only other shared holds are live is
// determined entirely by the underlying primitive and is unspecified
// here. In particular, sync.RWMutex may refuse a new reader while a
// writer is blocked waiting.
func (m *RWMytex[T]) TryRLock() OptRGuard[T] {
	m.init()
	if !m.mu.TryRLock() {
		return OptRGuard[T]{}
	}
	return OptRGuard[T]{g: &RGuard[T]{val: &m.val, unlock: m.mu.RUnlock}}
}
