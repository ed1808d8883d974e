package uartx

// RxError is a receive failure code. It implements error so it can be
// returned from the io-style methods as well as held in a result.Result.
type RxError uint8

const (
	ErrBufferEmpty RxError = iota + 1 // nothing queued
	ErrClosed                         // UART closed while waiting
)

func (e RxError) Error() string {
	switch e {
	case ErrBufferEmpty:
		return "UART buffer empty"
	case ErrClosed:
		return "UART closed"
	default:
		return "UART error"
	}
}
