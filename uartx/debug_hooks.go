//go:build uartxdebug

package uartx

import "sync/atomic"

// Stats holds counters since the last reset.
type Stats struct {
	NotifySent    uint32 // notify channel sends that succeeded
	NotifyDropped uint32 // notify channel sends that were coalesced away

	ReadWaits     uint32 // times a blocking read had to wait
	SpuriousWakes uint32 // notify received but no data available
	Timeouts      uint32 // context ends in blocking reads
}

func (u *UART) dbgNotify(sent bool) {
	if sent {
		atomic.AddUint32(&u.stats.NotifySent, 1)
	} else {
		atomic.AddUint32(&u.stats.NotifyDropped, 1)
	}
}

func (u *UART) dbgReadWait() {
	atomic.AddUint32(&u.stats.ReadWaits, 1)
}
func (u *UART) dbgSpuriousWake() {
	atomic.AddUint32(&u.stats.SpuriousWakes, 1)
}
func (u *UART) dbgTimeout() {
	atomic.AddUint32(&u.stats.Timeouts, 1)
}

func (u *UART) DebugReset() {
	atomic.StoreUint32(&u.stats.NotifySent, 0)
	atomic.StoreUint32(&u.stats.NotifyDropped, 0)
	atomic.StoreUint32(&u.stats.ReadWaits, 0)
	atomic.StoreUint32(&u.stats.SpuriousWakes, 0)
	atomic.StoreUint32(&u.stats.Timeouts, 0)
}

func (u *UART) DebugStats() Stats {
	// Return a copy; 32-bit atomic reads are fine on Cortex-M0+
	return Stats{
		NotifySent:    atomic.LoadUint32(&u.stats.NotifySent),
		NotifyDropped: atomic.LoadUint32(&u.stats.NotifyDropped),

		ReadWaits:     atomic.LoadUint32(&u.stats.ReadWaits),
		SpuriousWakes: atomic.LoadUint32(&u.stats.SpuriousWakes),
		Timeouts:      atomic.LoadUint32(&u.stats.Timeouts),
	}
}
