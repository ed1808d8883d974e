// uartx/uartx_blocking.go

package uartx

import (
	"context"
	"time"
)

// WaitReadable blocks until data is available, the UART is closed, or ctx is
// done.
func (u *UART) WaitReadable(ctx context.Context) error {
	for {
		if u.Buffered() > 0 {
			return nil
		}
		u.dbgReadWait()
		select {
		case <-u.notify:
			// re-check; if empty, it was a spurious wake (coalesced notify)
			if u.Buffered() == 0 {
				u.dbgSpuriousWake()
			}
		case <-u.closed:
			return ErrClosed
		case <-ctx.Done():
			u.dbgTimeout()
			return ctx.Err()
		}
	}
}

// ReadBlocking blocks until at least one byte is available, then reads up to
// len(p).
func (u *UART) ReadBlocking(ctx context.Context, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if n := u.TryRead(p); n > 0 {
			return n, nil
		}
		if err := u.WaitReadable(ctx); err != nil {
			return 0, err
		}
	}
}

// ReadFullBlocking reads exactly len(p) bytes unless ctx ends or the UART is
// closed first, in which case it returns the bytes read so far and the error.
func (u *UART) ReadFullBlocking(ctx context.Context, p []byte) (int, error) {
	read := 0
	for read < len(p) {
		if n := u.TryRead(p[read:]); n > 0 {
			read += n
			continue
		}
		if err := u.WaitReadable(ctx); err != nil {
			return read, err
		}
	}
	return read, nil
}

// ReadByteBlocking blocks for a single byte.
func (u *UART) ReadByteBlocking(ctx context.Context) (byte, error) {
	for {
		if r := u.TryReadByte(); r.OK() {
			return r.Value(), nil
		}
		if err := u.WaitReadable(ctx); err != nil {
			return 0, err
		}
	}
}

// ReadWithTimeout is ReadBlocking with a deadline d from now.
func (u *UART) ReadWithTimeout(p []byte, d time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return u.ReadBlocking(ctx, p)
}

// Close wakes every blocked reader with ErrClosed. Queued bytes stay readable
// through the non-blocking calls.
func (u *UART) Close() error {
	select {
	case <-u.closed:
	default:
		close(u.closed)
	}
	return nil
}
