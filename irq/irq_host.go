// irq/irq_host.go

//go:build !atmega && !esp && !nrf && !sam && !sifive && !stm32 && !k210 && !nxp && !rp2040 && !rp2350

package irq

import (
	"sync"
	"sync/atomic"
)

// Host shim: there is no interrupt controller, so masking is a no-op. A
// package mutex stands in for it so that tests driving a "producer ISR" from
// a goroutine still see the check-and-update sequences as atomic.
//
// Guards do not nest on the host.

var (
	mu     sync.Mutex
	masked atomic.Bool
	depth  atomic.Int32
)

// Guard marks a held critical section.
type Guard struct{}

// Disable enters the critical section.
func Disable() Guard {
	mu.Lock()
	depth.Add(1)
	masked.Store(true)
	return Guard{}
}

// Restore leaves the critical section.
func (Guard) Restore() {
	masked.Store(false)
	depth.Add(-1)
	mu.Unlock()
}

// Masked reports whether a guard is currently held. Host only; used by tests.
func Masked() bool { return masked.Load() }

// Held returns the number of guards acquired and not yet restored. Host only.
func Held() int { return int(depth.Load()) }
