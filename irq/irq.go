// irq/irq.go

// Package irq provides the critical-section guard used by the other packages
// in this module. A guard masks interrupt dispatch on the current core for a
// short, bounded span and restores the previous state when released.
//
// The usual shape is
//
//	defer irq.Disable().Restore()
//
// which pairs the acquisition with exactly one release on every exit path.
// On targets without an interrupt controller (host builds used for unit
// tests) masking is stubbed; see irq_host.go.
package irq

// Do runs fn with interrupts masked, for callers that prefer a closure to
// the deferred Disable/Restore pair. fn must be short and must not block.
func Do(fn func()) {
	g := Disable()
	defer g.Restore()
	fn()
}
