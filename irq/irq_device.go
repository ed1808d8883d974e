// irq/irq_device.go

//go:build atmega || esp || nrf || sam || sifive || stm32 || k210 || nxp || rp2040 || rp2350

package irq

import "runtime/interrupt"

// Guard holds the interrupt state captured when the critical section began.
type Guard struct {
	state interrupt.State
}

// Disable masks interrupts and returns a guard that remembers the prior state.
func Disable() Guard {
	return Guard{state: interrupt.Disable()}
}

// Restore puts the interrupt mask back to the state captured by Disable.
// Nested guards therefore only re-enable dispatch when the outermost one ends.
func (g Guard) Restore() {
	interrupt.Restore(g.state)
}
