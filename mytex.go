// Package mytex provides a mutex that owns the value it guards.
//
// The conventional Go arrangement is a struct with a sync.Mutex field
// and, next to it, the fields the mutex protects. That arrangement is
// discipline, not enforcement: nothing stops code from reading or
// writing those fields without holding the mutex, and nothing stops
// code from keeping a reference to them after unlocking. Package mytex
// inverts the arrangement. The protected value lives inside a
// Mytex, and the only sanctioned way to reach it is through a guard
// obtained from one of the acquisition methods. Forgetting to lock is
// no longer expressible in ordinary use, because there is no field to
// forget to lock.
//
// The entrypoints are New and NewRW, which wrap a value in a Mytex or
// RWMytex backed by a default primitive (sync.Mutex and sync.RWMutex
// respectively). NewWith and NewRWWith accept an injected primitive
// instead: anything satisfying Lockable or SharedLockable, such as
// fifomu.Mutex for FIFO fairness, semamu.Mutex for context-aware
// acquisition, lockfile.Mutex for a named cross-process file lock, or
// lockredis.Mutex for a distributed lock. The Mytex itself adds no
// locking logic and no overhead beyond the primitive it wraps.
//
// A typical use:
//
//	m := mytex.New(5)
//	g := m.Lock()
//	defer g.Unlock()
//	*g.Ref() = 6
//
// The deferred Unlock releases the primitive on every exit path. A
// value written through one guard is visible to the next successful
// acquisition, exactly as with a bare sync.Mutex.
package mytex

import "sync"

// Mytex couples a value of type T with the exclusive lock that guards
// it. The value is never reachable except through a Guard obtained
// from Lock, or an engaged OptGuard obtained from TryLock.
//
// The zero value of Mytex is ready to use: it guards the zero value of
// T with a lazily installed sync.Mutex. A Mytex must not be copied
// after first use. Destroying (dropping) a Mytex while a guard on it
// is still live is a usage error, same as unlocking a mutex you don't
// hold; it is not a checked condition.
type Mytex[T any] struct {
	once sync.Once
	mu   Lockable
	val  T
}

// New returns a Mytex guarding val with a sync.Mutex.
func New[T any](val T) *Mytex[T] {
	return &Mytex[T]{mu: &sync.Mutex{}, val: val}
}

// NewWith returns a Mytex guarding val with the supplied primitive.
// Use it when the primitive cannot be default-constructed, e.g. a
// named cross-process lock, or when a particular fairness policy is
// wanted. The primitive must be unheld; mu must not be nil.
//
// The Mytex owns mu from here on: locking mu directly while the Mytex
// is in use bypasses the guard discipline and is a usage error.
func NewWith[T any](mu Lockable, val T) *Mytex[T] {
	if mu == nil {
		panic("mytex: NewWith with nil primitive")
	}
	return &Mytex[T]{mu: mu, val: val}
}

// init installs the default primitive, so that the zero value of
// Mytex is usable like sync.Mutex.
func (m *Mytex[T]) init() {
	m.once.Do(func() {
		if m.mu == nil {
			m.mu = &sync.Mutex{}
		}
	})
}

// Lock acquires the lock exclusively, blocking until the primitive
// grants it, and returns a Guard with mutable access to the value.
// Release it with Guard.Unlock, typically deferred.
func (m *Mytex[T]) Lock() *Guard[T] {
	m.init()
	m.mu.Lock()
	return &Guard[T]{val: &m.val, unlock: m.mu.Unlock}
}

// TryLock attempts to acquire the lock exclusively without blocking.
// On success it returns an engaged OptGuard with mutable access; if
// any hold currently exists it immediately returns an empty OptGuard
// and no error is raised.
func (m *Mytex[T]) TryLock() OptGuard[T] {
	m.init()
	if !m.mu.TryLock() {
		return OptGuard[T]{}
	}
	return OptGuard[T]{g: &Guard[T]{val: &m.val, unlock: m.mu.Unlock}}
}
