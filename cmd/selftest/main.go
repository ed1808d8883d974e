//go:build rp2040 || rp2350

// Command selftest exercises irq, ring, result and uartx on real hardware.
// A GPIO pin interrupt plays the producer, so both ends of the ring run in
// their intended contexts. Wire GP2 → GP3 before flashing.
package main

import (
	"context"
	"time"

	"machine"

	"github.com/pthorn/cortexm-lib/irq"
	"github.com/pthorn/cortexm-lib/result"
	"github.com/pthorn/cortexm-lib/ring"
	"github.com/pthorn/cortexm-lib/uartx"
)

var (
	outPin = machine.GPIO2
	inPin  = machine.GPIO3

	edgeCap = 8
	settle  = 50 * time.Microsecond
)

type edge struct {
	seq  uint16
	high bool
}

type errCode uint8

const (
	errNone errCode = iota
	errNoEdge
)

var (
	edges = ring.New[edge](edgeCap)
	seq   uint16

	// toUART routes edges to uartx.UART0 instead of the edge ring.
	toUART bool
)

func onEdge(p machine.Pin) {
	seq++
	if toUART {
		uartx.UART0.Receive(byte(seq))
		return
	}
	edges.Put(edge{seq: seq, high: p.Get()})
}

func toggle(n int) {
	for i := 0; i < n; i++ {
		outPin.Set(!outPin.Get())
		time.Sleep(settle)
	}
}

func nextEdge() result.Result[edge, errCode] {
	var e edge
	if !edges.Read(&e) {
		return result.Fail[edge](errNoEdge)
	}
	return result.Of[edge, errCode](e)
}

func reset() {
	edges.Clear()
	for uartx.UART0.Buffered() > 0 {
		_, _ = uartx.UART0.ReadByte()
	}
	toUART = false
}

func ledBlink(times int, on time.Duration) {
	for i := 0; i < times; i++ {
		machine.LED.High()
		time.Sleep(on)
		machine.LED.Low()
		time.Sleep(on)
	}
}

func main() {
	// Give the monitor time to attach.
	time.Sleep(3 * time.Second)

	println("cortexm-lib self-test starting")

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	outPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	inPin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	outPin.Low()

	if err := inPin.SetInterrupt(machine.PinRising|machine.PinFalling, onEdge); err != nil {
		println("SetInterrupt failed")
		for {
			ledBlink(1, 500*time.Millisecond)
		}
	}

	pass, fail := 0, 0
	defer func() {
		println("")
		println("Summary")
		println("  passed =", pass)
		println("  failed =", fail)
		if fail == 0 {
			ledBlink(3, 120*time.Millisecond)
		} else {
			for {
				ledBlink(1, 600*time.Millisecond)
				time.Sleep(800 * time.Millisecond)
			}
		}
	}()

	run := func(name string, f func() string) {
		reset()
		println("")
		println("[Test]", name)
		if msg := f(); msg == "" {
			println("  PASS")
			pass++
		} else {
			println("  FAIL:", msg)
			fail++
		}
	}

	run("ring: ISR edges arrive in order", func() string {
		toggle(4)
		var last uint16
		for i := 0; i < 4; i++ {
			r := nextEdge()
			if !r.OK() {
				return "missing edge"
			}
			e := r.Value()
			if i > 0 && e.seq != last+1 {
				return "out of order"
			}
			if e.high != (i%2 == 0) {
				return "wrong level"
			}
			last = e.seq
		}
		if nextEdge().Err() != errNoEdge {
			return "extra edge"
		}
		return ""
	})

	run("ring: ISR writes drop once full", func() string {
		toggle(edgeCap + 3)
		if !edges.Full() {
			return "not full"
		}
		n := 0
		for nextEdge().OK() {
			n++
		}
		if n != edgeCap {
			return "wrong count"
		}
		return ""
	})

	run("ring: wrap-around under ISR load", func() string {
		got := 0
		for round := 0; round < 3*edgeCap; round++ {
			toggle(2)
			for nextEdge().OK() {
				got++
			}
		}
		if got != 6*edgeCap || !edges.Empty() {
			return "lost edges"
		}
		return ""
	})

	run("irq: guard blocks the ISR", func() string {
		g := irq.Disable()
		outPin.Set(!outPin.Get())
		// No sleeping while masked; spin on the pin register instead.
		for i := 0; i < 200; i++ {
			_ = inPin.Get()
		}
		held := edges.Used()
		g.Restore()
		time.Sleep(settle)
		if held != 0 {
			return "ISR ran while masked"
		}
		if edges.Used() != 1 {
			return "pending edge not delivered"
		}
		return ""
	})

	run("uartx: blocking read fed by ISR", func() string {
		toUART = true
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		go toggle(5)
		var buf [5]byte
		n, err := uartx.UART0.ReadFullBlocking(ctx, buf[:])
		if err != nil || n != len(buf) {
			return "short read"
		}
		for i := 1; i < n; i++ {
			if buf[i] != buf[i-1]+1 {
				return "out of order"
			}
		}
		return ""
	})

	run("result: equality", func() string {
		a := result.Of[int, errCode](1)
		if !result.Equal(a, a.Clone()) {
			return "clone differs"
		}
		if result.Equal(a, result.Fail[int](errNone)) {
			return "value equals error"
		}
		return ""
	})
}
