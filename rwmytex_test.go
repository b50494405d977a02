package mytex_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/neilotoole/mytex"
)

func TestRWZeroValue(t *testing.T) {
	var m mytex.RWMytex[int]
	g := m.RLock()
	require.Equal(t, 0, g.Get())
	g.Unlock()

	gw := m.Lock()
	defer gw.Unlock()
	gw.Set(7)
	require.Equal(t, 7, gw.Get())
}

func TestSharedHoldsCoexist(t *testing.T) {
	// Spec scenario: two goroutines hold shared guards concurrently;
	// an exclusive attempt during that window is empty; once both
	// shared guards are dropped, the exclusive attempt succeeds.
	m := mytex.NewRW(500)

	var holding, release, released sync.WaitGroup
	holding.Add(2)
	release.Add(1)
	released.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			g := m.RLock()
			assert.Equal(t, 500, g.Get())
			holding.Done()
			release.Wait()
			g.Unlock()
			released.Done()
		}()
	}
	holding.Wait()

	// Both shared holds are live. A third shared attempt succeeds...
	g3 := m.TryRLock()
	require.True(t, g3.HasValue())
	require.Equal(t, 500, g3.Get())
	g3.Unlock()

	// ...but no exclusive hold can be taken, from any goroutine.
	empty := make(chan struct{}, 1)
	go func() {
		if !m.TryLock().HasValue() {
			empty <- struct{}{}
		}
	}()
	requireTakeWithin(t, empty, waitTimeout)
	require.False(t, m.TryLock().HasValue())

	release.Done()
	released.Wait()

	g := m.TryLock()
	defer g.Unlock()
	require.True(t, g.HasValue())
	require.Equal(t, 500, g.Get())
}

func TestTryRLockDuringExclusive(t *testing.T) {
	m := mytex.NewRW("held")
	g := m.Lock()

	rg := m.TryRLock()
	require.False(t, rg.HasValue())

	_, err := rg.Value()
	require.ErrorIs(t, err, mytex.ErrNoValue)
	require.NotPanics(t, func() { rg.Unlock() })

	g.Unlock()

	rg = m.TryRLock()
	defer rg.Unlock()
	require.True(t, rg.HasValue())
	require.Equal(t, "held", rg.Get())
}

func TestManySharedHolders(t *testing.T) {
	const numG = 100

	m := mytex.NewRW(42)
	start := make(chan struct{})

	var holding sync.WaitGroup
	holding.Add(numG)

	g := &errgroup.Group{}
	for i := 0; i < numG; i++ {
		g.Go(func() error {
			guard := m.RLock()
			defer guard.Unlock()
			holding.Done()
			assert.Equal(t, 42, guard.Get())
			<-start
			return nil
		})
	}

	// All readers hold concurrently; exclusive access is unavailable.
	holding.Wait()
	require.False(t, m.TryLock().HasValue())

	close(start)
	require.NoError(t, g.Wait())

	guard := m.Lock()
	defer guard.Unlock()
	require.Equal(t, 42, guard.Get())
}

func TestRWTryLockOwnGoroutine(t *testing.T) {
	// TryLock is empty whenever any hold exists, including one taken
	// by the calling goroutine. There is no re-entrancy.
	m := mytex.NewRW(1)

	rg := m.RLock()
	require.False(t, m.TryLock().HasValue())
	rg.Unlock()

	g := m.Lock()
	require.False(t, m.TryLock().HasValue())
	require.False(t, m.TryRLock().HasValue())
	g.Unlock()
}

func TestRWNewRWWith(t *testing.T) {
	mu := &sync.RWMutex{}
	m := mytex.NewRWWith(mu, []string{"a"})

	rg := m.RLock()
	require.Equal(t, []string{"a"}, rg.Get())

	// The injected primitive is the one backing the RWMytex.
	require.False(t, mu.TryLock())
	rg.Unlock()

	g := m.Lock()
	defer g.Unlock()
	*g.Ref() = append(*g.Ref(), "b")
	require.Len(t, g.Get(), 2)
}

func TestRGuardUnlockTwicePanics(t *testing.T) {
	m := mytex.NewRW(1)
	g := m.RLock()
	g.Unlock()
	require.Panics(t, func() { g.Unlock() })

	og := m.TryRLock()
	require.True(t, og.HasValue())
	og.Unlock()
	require.Panics(t, func() { og.Unlock() })
}
