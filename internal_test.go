package mytex

// File internal_test.go contains white-box tests of the lazy-init and
// release mechanics.

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLazyInitInstallsDefaultOnce(t *testing.T) {
	var m Mytex[int]
	m.init()
	require.NotNil(t, m.mu)
	first := m.mu
	m.init()
	require.Same(t, first, m.mu)

	var rw RWMytex[int]
	rw.init()
	require.NotNil(t, rw.mu)
	_, ok := rw.mu.(*sync.RWMutex)
	require.True(t, ok, "default RW primitive should be sync.RWMutex")
}

func TestInitKeepsInjectedPrimitive(t *testing.T) {
	mu := &sync.Mutex{}
	m := NewWith[int](mu, 5)
	m.init()
	require.Same(t, mu, m.mu)

	rwmu := &sync.RWMutex{}
	rw := NewRWWith[int](rwmu, 5)
	rw.init()
	require.Same(t, rwmu, rw.mu)
}

func TestGuardReleaseClearsHandle(t *testing.T) {
	m := New(1)
	g := m.Lock()
	require.NotNil(t, g.unlock)
	g.Unlock()
	require.Nil(t, g.unlock)

	// The value reference itself is deliberately left intact: access
	// after release is the documented unchecked misuse path, not a
	// checked one.
	require.NotNil(t, g.val)
}

func TestOptGuardZeroValueIsEmpty(t *testing.T) {
	var og OptGuard[int]
	require.Nil(t, og.g)
	require.False(t, og.HasValue())

	var org OptRGuard[int]
	require.Nil(t, org.g)
	require.False(t, org.HasValue())
}
