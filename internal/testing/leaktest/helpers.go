// Package leaktest detects goroutines left running by code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long a check waits for goroutines to exit
const settleTimeout = 2 * time.Second

// Goroutines records the current goroutine count and returns a check that fails t
// when more than tolerance extra goroutines are still alive once settleTimeout passes.
//
//	defer leaktest.Goroutines(t, 0)()
func Goroutines(t testing.TB, tolerance int) func() {
	t.Helper()
	before := settle(runtime.NumGoroutine(), 10*time.Millisecond)

	return func() {
		t.Helper()
		after := settle(before+tolerance, settleTimeout)
		if leaked := after - before; leaked > tolerance {
			t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d", before, after, leaked, tolerance)
		}
	}
}

// WaitForGoroutines waits until at most target goroutines are running.
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()
	if n := settle(target, timeout); n > target {
		t.Errorf("timeout waiting for goroutines: current=%d target=%d", n, target)
	}
}

// settle polls until the goroutine count drops to target or timeout elapses,
// returning the last count seen.
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(10 * time.Millisecond)
	}
}
