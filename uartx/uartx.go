// uartx/uartx.go

// Package uartx provides the receive side of an interrupt-driven UART: the
// interrupt handler pushes bytes with Receive, and application code reads them
// with non-blocking (Read, ReadByte, TryReadByte) or context-aware blocking
// calls (ReadBlocking, ReadFullBlocking, ReadByteBlocking).
//
// Bytes are queued in a fixed-size ring.Buffer, so the handler never
// allocates. When the queue is full new bytes are dropped and counted.
package uartx

import (
	"sync/atomic"

	"github.com/pthorn/cortexm-lib/result"
	"github.com/pthorn/cortexm-lib/ring"
)

// DefaultBufferSize is the receive capacity of UART0 and UART1.
const DefaultBufferSize = 128

// UART is an interrupt-fed receive queue with a coalesced readiness signal.
type UART struct {
	Buffer *ring.Buffer[byte]

	notify  chan struct{} // wake-up hint for blocking reads
	closed  chan struct{} // close signal
	dropped atomic.Uint32 // bytes lost to a full buffer
	stats   Stats
}

// Public instances, one per hardware UART.
var (
	UART0 = NewUART(DefaultBufferSize)
	UART1 = NewUART(DefaultBufferSize)
)

// NewUART returns a UART whose receive queue holds capacity bytes.
func NewUART(capacity int) *UART {
	return &UART{
		Buffer: ring.New[byte](capacity),
		notify: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

// Receive queues one byte. It is intended to be called by the UART interrupt
// handler for each byte drained from the hardware FIFO. It returns false if the
// byte was dropped because the queue is full.
func (u *UART) Receive(b byte) bool {
	if !u.Buffer.Put(b) {
		u.dropped.Add(1)
		return false
	}
	select {
	case u.notify <- struct{}{}:
		u.dbgNotify(true)
	default:
		u.dbgNotify(false)
	}
	return true
}

// Readable returns a coalesced notification for RX readiness. Callers must
// re-check Buffered after waking.
func (u *UART) Readable() <-chan struct{} { return u.notify }

// TryReadByte takes one byte from the queue, or reports ErrBufferEmpty.
func (u *UART) TryReadByte() result.Result[byte, RxError] {
	b, ok := u.Buffer.Get()
	if !ok {
		return result.Fail[byte](ErrBufferEmpty)
	}
	return result.Of[byte, RxError](b)
}

// ReadByte reads a single byte. If there is no data available it returns
// ErrBufferEmpty.
func (u *UART) ReadByte() (byte, error) {
	r := u.TryReadByte()
	if !r.OK() {
		return 0, r.Err()
	}
	return r.Value(), nil
}

// TryRead copies up to len(p) queued bytes into p and returns how many were
// copied. It never blocks.
func (u *UART) TryRead(p []byte) int {
	n := 0
	for n < len(p) && u.Buffer.Read(&p[n]) {
		n++
	}
	return n
}

// Read implements io.Reader without blocking: an empty queue yields 0, nil.
func (u *UART) Read(p []byte) (int, error) {
	return u.TryRead(p), nil
}

// Buffered returns the number of bytes waiting to be read.
func (u *UART) Buffered() int { return u.Buffer.Used() }

// Dropped returns how many received bytes were lost to a full queue.
func (u *UART) Dropped() uint32 { return u.dropped.Load() }
