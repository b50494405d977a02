package mytex

import "sync"

// Lockable is the capability a lock primitive must provide to back a
// Mytex: blocking exclusive acquisition, non-blocking exclusive
// acquisition, and release. It is exactly the method set of sync.Mutex,
// so any drop-in mutex replacement works unmodified. This package never
// implements a mutex algorithm of its own; it only couples a primitive
// to the value the primitive protects.
//
// A Lockable is assumed to behave like sync.Mutex: Lock blocks until
// the lock is held, TryLock never blocks, and Unlock of an unheld lock
// is a run-time error in the primitive's own terms.
type Lockable interface {
	Lock()
	TryLock() bool
	Unlock()
}

// SharedLockable is the capability a lock primitive must provide to
// back an RWMytex: everything in Lockable, plus shared (read) mode.
// It is exactly the method set of sync.RWMutex.
type SharedLockable interface {
	Lockable
	RLock()
	TryRLock() bool
	RUnlock()
}

var (
	_ Lockable       = (*sync.Mutex)(nil)
	_ SharedLockable = (*sync.RWMutex)(nil)
)
