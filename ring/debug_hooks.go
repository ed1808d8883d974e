//go:build ringdebug

package ring

import "sync/atomic"

// Stats holds counters since construction or the last DebugReset.
type Stats struct {
	Puts       uint32 // successful Put()s
	Drops      uint32 // Put()s rejected because the buffer was full
	Gets       uint32 // successful Get()s
	Underflows uint32 // Get()s on an empty buffer
	MaxUsed    uint32 // high-water mark of occupancy
}

// Hooks run with the critical section held, so plain read-modify-write of
// MaxUsed is safe; the atomics are for DebugStats readers.

func (b *Buffer[T]) dbgPut(ok bool) {
	if !ok {
		atomic.AddUint32(&b.stats.Drops, 1)
		return
	}
	atomic.AddUint32(&b.stats.Puts, 1)
	if used := uint32(b.used()); used > atomic.LoadUint32(&b.stats.MaxUsed) {
		atomic.StoreUint32(&b.stats.MaxUsed, used)
	}
}

func (b *Buffer[T]) dbgGet(ok bool) {
	if ok {
		atomic.AddUint32(&b.stats.Gets, 1)
	} else {
		atomic.AddUint32(&b.stats.Underflows, 1)
	}
}

// DebugReset zeroes the counters.
func (b *Buffer[T]) DebugReset() {
	atomic.StoreUint32(&b.stats.Puts, 0)
	atomic.StoreUint32(&b.stats.Drops, 0)
	atomic.StoreUint32(&b.stats.Gets, 0)
	atomic.StoreUint32(&b.stats.Underflows, 0)
	atomic.StoreUint32(&b.stats.MaxUsed, 0)
}

// DebugStats returns a copy of the counters.
func (b *Buffer[T]) DebugStats() Stats {
	return Stats{
		Puts:       atomic.LoadUint32(&b.stats.Puts),
		Drops:      atomic.LoadUint32(&b.stats.Drops),
		Gets:       atomic.LoadUint32(&b.stats.Gets),
		Underflows: atomic.LoadUint32(&b.stats.Underflows),
		MaxUsed:    atomic.LoadUint32(&b.stats.MaxUsed),
	}
}
