package mytex_test

// File helper_test.go contains test helper functionality.

import (
	mrand "math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// waitTimeout bounds how long tests wait for a blocked acquisition
// to proceed; generous because CI machines stall.
const waitTimeout = 5 * time.Second

// requireNoTake fails if a value is taken from c.
func requireNoTake[C any](tb testing.TB, c <-chan C, msgAndArgs ...any) {
	tb.Helper()
	select {
	case <-c:
		require.Fail(tb, "unexpected take from channel", msgAndArgs...)
	default:
	}
}

// requireTake fails if a value is not taken from c.
func requireTake[C any](tb testing.TB, c <-chan C, msgAndArgs ...any) {
	tb.Helper()
	select {
	case <-c:
	default:
		require.Fail(tb, "unexpected failure to take from channel", msgAndArgs...)
	}
}

// requireTakeWithin fails unless a value is taken from c within d.
func requireTakeWithin[C any](tb testing.TB, c <-chan C, d time.Duration, msgAndArgs ...any) {
	tb.Helper()
	select {
	case <-c:
	case <-time.After(d):
		require.Fail(tb, "timed out waiting to take from channel", msgAndArgs...)
	}
}

func sleepJitter() {
	const jitterFactor = 30
	d := time.Millisecond * time.Duration(mrand.Intn(jitterFactor))
	time.Sleep(d)
}
