// Package lockredis adapts a Redis-backed distributed lock to the
// mytex.Lockable capability. Each Mutex guards one key: acquisition
// is SET NX with a per-hold random token, release is a check-and-del
// script that only deletes the key if the token still matches, so a
// hold that expired and was taken over by another client is never
// released by the stale holder.
//
// Like lockfile, this primitive cannot be default-constructed (it
// needs a client and a key), so it is injected via mytex.NewWith:
//
//	mu := lockredis.New(client, "jobs:leader", 30*time.Second)
//	m := mytex.NewWith(mu, state)
//
// Blocking acquisition polls at a fixed interval; ordering between
// contending clients is therefore arbitrary. Transport failure is
// unrecoverable for a lock primitive and panics with a wrapped error.
// Shared mode is not supported.
package lockredis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/neilotoole/mytex"
)

var _ mytex.Lockable = (*Mutex)(nil)

// retryInterval is the poll interval of blocking Lock.
const retryInterval = 25 * time.Millisecond

var ctx = context.Background()

// delScript deletes the key only while it still holds our token.
var delScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
else
    return 0
end
`)

// Mutex is a distributed mutual exclusion lock on a single Redis key.
// It must be created with New; the zero value is not usable.
type Mutex struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration

	mu    sync.Mutex
	token string
}

// New returns a Mutex on key using client. A non-zero ttl bounds how
// long a hold can outlive a crashed holder; zero means the key never
// expires. The ttl is an availability/safety trade-off of the
// primitive, not of the mytex core: if a hold's work outlasts the
// ttl, mutual exclusion is no longer guaranteed.
func New(client redis.UniversalClient, key string, ttl time.Duration) *Mutex {
	return &Mutex{client: client, key: key, ttl: ttl}
}

// Key returns the guarded key.
func (m *Mutex) Key() string { return m.key }

// Lock acquires the lock, polling until the key becomes free.
func (m *Mutex) Lock() {
	for {
		if m.TryLock() {
			return
		}
		time.Sleep(retryInterval)
	}
}

// TryLock attempts to acquire the lock without blocking and reports
// whether it succeeded.
func (m *Mutex) TryLock() bool {
	token := uuid.NewString()
	ok, err := m.client.SetNX(ctx, m.key, token, m.ttl).Result()
	if err != nil {
		panic(fmt.Errorf("lockredis: try lock %s: %w", m.key, err))
	}
	if !ok {
		return false
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return true
}

// Unlock releases the lock. It panics if m is not locked on entry, or
// if the hold had already expired and the key is owned by another
// client's token.
func (m *Mutex) Unlock() {
	m.mu.Lock()
	token := m.token
	m.token = ""
	m.mu.Unlock()

	if token == "" {
		panic("lockredis: unlock of unlocked mutex")
	}

	deleted, err := delScript.Run(ctx, m.client, []string{m.key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		panic(fmt.Errorf("lockredis: unlock %s: %w", m.key, err))
	}
	if n, ok := deleted.(int64); ok && n == 0 {
		panic(fmt.Errorf("lockredis: unlock %s: hold expired or was taken over", m.key))
	}
}
