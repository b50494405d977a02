// Package lockfile adapts a file lock (github.com/gofrs/flock) to the
// mytex.SharedLockable capability, giving a Mytex or RWMytex a named
// cross-process lock primitive: every process that opens the same
// path contends for the same lock, in exclusive or shared mode.
//
// A file lock cannot be default-constructed — it needs a path — which
// is exactly the case mytex.NewWith and mytex.NewRWWith exist for:
//
//	m := mytex.NewRWWith(lockfile.New("/var/lock/app.lock"), state)
//
// The capability method set carries no error returns, so filesystem
// failure while locking or unlocking is treated as what it is for a
// lock primitive: unrecoverable. Those paths panic with a wrapped
// *PathError rather than silently proceeding unheld.
package lockfile

import (
	"fmt"

	"github.com/gofrs/flock"

	"github.com/neilotoole/mytex"
)

var _ mytex.SharedLockable = (*Mutex)(nil)

// Mutex is a cross-process file lock on a path. Fairness between
// contending processes is whatever the host OS provides; no ordering
// is promised.
//
// Note that file locks are advisory, and that on most platforms a
// single process re-acquiring via the same Mutex does not conflict
// with itself; use separate Mutex instances (or processes) per
// logical holder.
type Mutex struct {
	fl *flock.Flock
}

// New returns a Mutex on path. The lock file is created on first
// acquisition if it does not exist, and is not removed on release.
func New(path string) *Mutex {
	return &Mutex{fl: flock.New(path)}
}

// Path returns the lock file's path.
func (m *Mutex) Path() string { return m.fl.Path() }

// Lock acquires the file lock exclusively, blocking until available.
func (m *Mutex) Lock() {
	if err := m.fl.Lock(); err != nil {
		panic(fmt.Errorf("lockfile: lock %s: %w", m.fl.Path(), err))
	}
}

// TryLock attempts exclusive acquisition without blocking.
func (m *Mutex) TryLock() bool {
	ok, err := m.fl.TryLock()
	if err != nil {
		panic(fmt.Errorf("lockfile: try lock %s: %w", m.fl.Path(), err))
	}
	return ok
}

// Unlock releases the file lock.
func (m *Mutex) Unlock() {
	if err := m.fl.Unlock(); err != nil {
		panic(fmt.Errorf("lockfile: unlock %s: %w", m.fl.Path(), err))
	}
}

// RLock acquires the file lock in shared mode, blocking until no
// exclusive hold exists.
func (m *Mutex) RLock() {
	if err := m.fl.RLock(); err != nil {
		panic(fmt.Errorf("lockfile: read lock %s: %w", m.fl.Path(), err))
	}
}

// TryRLock attempts shared acquisition without blocking.
func (m *Mutex) TryRLock() bool {
	ok, err := m.fl.TryRLock()
	if err != nil {
		panic(fmt.Errorf("lockfile: try read lock %s: %w", m.fl.Path(), err))
	}
	return ok
}

// RUnlock releases a shared hold. flock has a single release for both
// modes, so this delegates to the same underlying unlock.
func (m *Mutex) RUnlock() {
	if err := m.fl.Unlock(); err != nil {
		panic(fmt.Errorf("lockfile: read unlock %s: %w", m.fl.Path(), err))
	}
}
