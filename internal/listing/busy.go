package listing

import (
	"sync"
	"sync/atomic"
)

// Busy is a reference-counted loading flag. It reads as loading while at
// least one request is in flight, so overlapping requests do not flicker.
type Busy struct {
	n atomic.Int64
}

// Acquire marks one request in flight. The returned release func is safe to
// call more than once; only the first call counts.
func (b *Busy) Acquire() (release func()) {
	b.n.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { b.n.Add(-1) })
	}
}

// Loading reports whether any request is in flight.
func (b *Busy) Loading() bool { return b.n.Load() > 0 }

// InFlight returns the number of requests in flight.
func (b *Busy) InFlight() int64 { return b.n.Load() }
