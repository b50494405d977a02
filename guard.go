package mytex

// Guard is a live exclusive hold on a Mytex or RWMytex, coupled with
// mutable access to the guarded value. A Guard is only ever
// constructed around a successful acquisition; its existence is the
// proof that the lock is held, so the accessors perform no checks.
//
// A Guard releases its hold exactly once, via Unlock. Unlocking a
// Guard twice panics, mirroring sync.Mutex. Handing a Guard to
// another goroutine hands the hold with it; the sender must not touch
// the value afterward.
//
// A Guard is not itself safe for concurrent use — it represents one
// hold by one holder.
type Guard[T any] struct {
	val    *T
	unlock func()
}

// Ref returns a direct reference to the guarded value, valid for the
// guard's lifetime. Retaining the reference beyond Unlock is the
// caller's misuse to avoid; no check guards against it.
func (g *Guard[T]) Ref() *T { return g.val }

// Get returns the guarded value.
func (g *Guard[T]) Get() T { return *g.val }

// Set replaces the guarded value.
func (g *Guard[T]) Set(v T) { *g.val = v }

// Unlock releases the hold. It panics if the guard has already been
// unlocked.
func (g *Guard[T]) Unlock() {
	if g.unlock == nil {
		panic("mytex: unlock of unlocked guard")
	}
	unlock := g.unlock
	g.unlock = nil
	unlock()
}

// RGuard is a live shared hold, coupled with read-only access to the
// guarded value. Its method set deliberately omits any *T accessor:
// that omission is what keeps mutation out of reach of shared
// holders. Note that for reference-typed T (slices, maps, pointers)
// Get returns a shallow copy, and not mutating what it points at is
// the caller's responsibility, exactly as under sync.RWMutex.RLock.
type RGuard[T any] struct {
	val    *T
	unlock func()
}

// Get returns the guarded value.
func (g *RGuard[T]) Get() T { return *g.val }

// Unlock releases the shared hold. It panics if the guard has already
// been unlocked.
func (g *RGuard[T]) Unlock() {
	if g.unlock == nil {
		panic("mytex: unlock of unlocked guard")
	}
	unlock := g.unlock
	g.unlock = nil
	unlock()
}
