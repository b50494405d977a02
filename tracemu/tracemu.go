// Package tracemu provides lock primitives that log every lock
// transition. Mutex wraps any mytex.Lockable, RWMutex any
// mytex.SharedLockable; both log a before/after pair per operation
// via log/slog at debug level, which makes lock-ordering and
// contention problems visible in test output without instrumenting
// the code under test.
//
// The wrappers live outside the mytex core so that ordinary use pays
// nothing for them: wrap a primitive and hand it to mytex.NewWith
// only when tracing is wanted.
package tracemu

import (
	"log/slog"

	"github.com/neilotoole/sq/libsq/core/lg"

	"github.com/neilotoole/mytex"
)

var (
	_ mytex.Lockable       = (*Mutex)(nil)
	_ mytex.SharedLockable = (*RWMutex)(nil)
)

// Mutex wraps a mytex.Lockable, logging each transition. The name
// appears on every record, so multiple traced locks can share one
// logger.
type Mutex struct {
	mu   mytex.Lockable
	log  *slog.Logger
	name string
}

// New returns a Mutex wrapping mu. If log is nil, records are
// discarded.
func New(mu mytex.Lockable, name string, log *slog.Logger) *Mutex {
	if log == nil {
		log = lg.Discard()
	}
	return &Mutex{mu: mu, log: log, name: name}
}

func (m *Mutex) Lock() {
	m.log.Debug("lock: before", "mu", m.name)
	m.mu.Lock()
	m.log.Debug("lock: after", "mu", m.name)
}

func (m *Mutex) TryLock() bool {
	ok := m.mu.TryLock()
	m.log.Debug("try lock", "mu", m.name, "ok", ok)
	return ok
}

func (m *Mutex) Unlock() {
	m.log.Debug("unlock: before", "mu", m.name)
	m.mu.Unlock()
	m.log.Debug("unlock: after", "mu", m.name)
}

// RWMutex wraps a mytex.SharedLockable, logging each transition in
// both exclusive and shared mode.
type RWMutex struct {
	mu   mytex.SharedLockable
	log  *slog.Logger
	name string
}

// NewRW returns an RWMutex wrapping mu. If log is nil, records are
// discarded.
func NewRW(mu mytex.SharedLockable, name string, log *slog.Logger) *RWMutex {
	if log == nil {
		log = lg.Discard()
	}
	return &RWMutex{mu: mu, log: log, name: name}
}

func (m *RWMutex) Lock() {
	m.log.Debug("write lock: before", "mu", m.name)
	m.mu.Lock()
	m.log.Debug("write lock: after", "mu", m.name)
}

func (m *RWMutex) TryLock() bool {
	ok := m.mu.TryLock()
	m.log.Debug("try write lock", "mu", m.name, "ok", ok)
	return ok
}

func (m *RWMutex) Unlock() {
	m.log.Debug("write unlock: before", "mu", m.name)
	m.mu.Unlock()
	m.log.Debug("write unlock: after", "mu", m.name)
}

func (m *RWMutex) RLock() {
	m.log.Debug("read lock: before", "mu", m.name)
	m.mu.RLock()
	m.log.Debug("read lock: after", "mu", m.name)
}

func (m *RWMutex) TryRLock() bool {
	ok := m.mu.TryRLock()
	m.log.Debug("try read lock", "mu", m.name, "ok", ok)
	return ok
}

func (m *RWMutex) RUnlock() {
	m.log.Debug("read unlock: before", "mu", m.name)
	m.mu.RUnlock()
	m.log.Debug("read unlock: after", "mu", m.name)
}
