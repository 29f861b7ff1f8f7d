package first

import (
	"bytes"
	"fmt"
	"runtime"
	"runtime/pprof"
	"time"
)

type (
	// countingSeq is an immediate producer that records how many elements
	// were requested from it.
	countingSeq[T any] struct {
		values   []T
		requests int
	}
)

func (x *countingSeq[T]) Seq(yield func(T) bool) {
	for _, v := range x.values {
		x.requests++
		if !yield(v) {
			return
		}
	}
}

func (x *countingSeq[T]) Seq2(yield func(int, T) bool) {
	for i, v := range x.values {
		x.requests++
		if !yield(i, v) {
			return
		}
	}
}

// waitNumGoroutines polls runtime.NumGoroutine, running the GC between polls,
// until fn returns true or maxWait elapses, returning the last count.
func waitNumGoroutines(maxWait time.Duration, fn func(n int) bool) (n int) {
	const minWait = time.Millisecond * 10
	if maxWait < minWait {
		maxWait = minWait
	}
	// poll at (approximately) minWait intervals
	count := int(maxWait / minWait)
	maxWait /= time.Duration(count)
	n = runtime.NumGoroutine()
	for i := 0; i < count && !fn(n); i++ {
		time.Sleep(maxWait)
		runtime.GC()
		n = runtime.NumGoroutine()
	}
	return
}

// checkNumGoroutines should be called at the start of the test, like:
//
//	t.Cleanup(checkNumGoroutines(t))
func checkNumGoroutines(t interface {
	Helper()
	Errorf(format string, values ...any)
}) func() {
	before := runtime.NumGoroutine()
	return func() {
		if t != nil {
			t.Helper()
		}
		// goroutines may take a moment to exit, after the test returns
		after := waitNumGoroutines(time.Second, func(n int) bool { return n <= before })
		if after > before {
			var b bytes.Buffer
			_ = pprof.Lookup("goroutine").WriteTo(&b, 1)
			if t == nil {
				panic(fmt.Errorf("%s\n\nstarted with %d goroutines finished with %d", b.Bytes(), before, after))
			}
			t.Helper()
			t.Errorf("%s\n\nstarted with %d goroutines finished with %d", b.Bytes(), before, after)
		}
	}
}
