// Package semamu provides a mutex built on a weighted semaphore
// (golang.org/x/sync/semaphore). It satisfies mytex.Lockable, so it
// can back a Mytex via mytex.NewWith.
//
// Its reason to exist over sync.Mutex is LockContext: a blocking
// acquisition that can be abandoned when a context is done. The mytex
// core deliberately has no cancellation of its own — a blocked Lock
// is released only by another holder unlocking — but a caller who
// wants a cancellable path can hold a *semamu.Mutex and race
// LockContext against mytex acquisition on their own terms.
package semamu

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/neilotoole/mytex"
)

var _ mytex.Lockable = (*Mutex)(nil)

// Mutex is a mutual exclusion lock backed by a weighted semaphore of
// capacity 1. It must be created with New; the zero value is not
// usable.
//
// A locked Mutex is not associated with a particular goroutine: one
// goroutine may lock it and another unlock it.
type Mutex struct {
	sema *semaphore.Weighted
}

// New returns a new unlocked Mutex.
func New() *Mutex {
	return &Mutex{sema: semaphore.NewWeighted(1)}
}

// Lock locks m, blocking until the lock is available.
func (m *Mutex) Lock() {
	// Acquire can only fail via ctx, and Background never is done.
	_ = m.sema.Acquire(context.Background(), 1)
}

// LockContext locks m, blocking until the lock is available or ctx is
// done. On failure it returns ctx's error and leaves m unchanged.
func (m *Mutex) LockContext(ctx context.Context) error {
	return m.sema.Acquire(ctx, 1)
}

// TryLock tries to lock m without blocking and reports whether it
// succeeded.
func (m *Mutex) TryLock() bool {
	return m.sema.TryAcquire(1)
}

// Unlock unlocks m. It panics if m is not locked on entry.
func (m *Mutex) Unlock() {
	m.sema.Release(1)
}
