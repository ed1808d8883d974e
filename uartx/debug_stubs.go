//go:build !uartxdebug

package uartx

type Stats struct{}

func (u *UART) dbgNotify(bool)   {}
func (u *UART) dbgReadWait()     {}
func (u *UART) dbgSpuriousWake() {}
func (u *UART) dbgTimeout()      {}

func (u *UART) DebugReset()       {}
func (u *UART) DebugStats() Stats { return Stats{} }
