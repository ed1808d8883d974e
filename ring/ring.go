// ring/ring.go

// Package ring provides a fixed-capacity circular queue for passing values
// from an interrupt handler to normal execution context.
//
// A Buffer admits one producer (Put, typically called from an ISR) and one
// consumer (Get/Read, typically called from the main loop). Both sides run
// their check-and-update sequence inside an irq critical section, so neither
// can observe a torn head/tail pair. Nothing is allocated after construction.
package ring

import "github.com/pthorn/cortexm-lib/irq"

// Buffer is a single-producer/single-consumer ring of T.
//
// head == tail is ambiguous between empty and full, so an explicit empty flag
// disambiguates and every one of the N slots is usable.
type Buffer[T any] struct {
	data  []T
	head  uint32 // next slot to write
	tail  uint32 // next slot to read
	empty bool
	stats Stats
}

// New returns an empty buffer holding up to capacity elements.
// It panics if capacity < 1.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("ring: capacity must be >= 1")
	}
	b := &Buffer[T]{}
	b.Init(make([]T, capacity))
	return b
}

// NewWithStorage returns an empty buffer backed by storage, which is zeroed
// and must not be used elsewhere while the buffer is alive.
func NewWithStorage[T any](storage []T) *Buffer[T] {
	b := &Buffer[T]{}
	b.Init(storage)
	return b
}

// Init (re)initialises b over storage. It lets a Buffer live in a static
// variable together with a static backing array:
//
//	var (
//		rxStore [64]byte
//		rx      ring.Buffer[byte]
//	)
//
//	func init() { rx.Init(rxStore[:]) }
func (b *Buffer[T]) Init(storage []T) {
	if len(storage) < 1 {
		panic("ring: capacity must be >= 1")
	}
	clear(storage)
	b.data = storage
	b.head, b.tail = 0, 0
	b.empty = true
}

// Size returns the fixed capacity of the buffer.
func (b *Buffer[T]) Size() int {
	return len(b.data)
}

// Used returns how many elements are currently stored.
func (b *Buffer[T]) Used() int {
	defer irq.Disable().Restore()
	return b.used()
}

// Free returns how many more elements Put would accept.
func (b *Buffer[T]) Free() int {
	return b.Size() - b.Used()
}

// Empty reports whether there is nothing to read.
func (b *Buffer[T]) Empty() bool {
	defer irq.Disable().Restore()
	return b.empty
}

// Full reports whether Put would fail.
func (b *Buffer[T]) Full() bool {
	defer irq.Disable().Restore()
	return b.full()
}

// Put stores v in the buffer. If the buffer is already full it returns false
// and leaves the buffer unchanged; the caller decides whether to drop, retry
// or push back upstream.
func (b *Buffer[T]) Put(v T) bool {
	defer irq.Disable().Restore()

	if b.full() {
		b.dbgPut(false)
		return false
	}
	b.data[b.head] = v
	b.empty = false
	b.head = b.next(b.head)
	b.dbgPut(true)
	return true
}

// Get removes and returns the oldest element. If the buffer is empty it
// returns the zero value and false.
func (b *Buffer[T]) Get() (T, bool) {
	defer irq.Disable().Restore()

	var zero T
	if b.empty {
		b.dbgGet(false)
		return zero, false
	}
	v := b.data[b.tail]
	b.data[b.tail] = zero // drop the buffer's reference to the element
	b.tail = b.next(b.tail)
	if b.head == b.tail {
		b.empty = true
	}
	b.dbgGet(true)
	return v, true
}

// Read moves the oldest element into *dst. If the buffer is empty it returns
// false and *dst is left untouched.
func (b *Buffer[T]) Read(dst *T) bool {
	v, ok := b.Get()
	if ok {
		*dst = v
	}
	return ok
}

// Clear discards every stored element and resets the indices.
func (b *Buffer[T]) Clear() {
	defer irq.Disable().Restore()

	clear(b.data)
	b.head, b.tail = 0, 0
	b.empty = true
}

// Callers must hold the critical section for the helpers below.

func (b *Buffer[T]) full() bool {
	return b.head == b.tail && !b.empty
}

func (b *Buffer[T]) used() int {
	if b.empty {
		return 0
	}
	n := int(b.head) - int(b.tail)
	if n <= 0 {
		n += len(b.data)
	}
	return n
}

func (b *Buffer[T]) next(i uint32) uint32 {
	i++
	if i == uint32(len(b.data)) {
		return 0
	}
	return i
}
