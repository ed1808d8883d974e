package ring

import (
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthorn/cortexm-lib/irq"
)

func TestNew_RejectsZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { NewWithStorage[int](nil) })
}

func TestPut_FailsOnceFull(t *testing.T) {
	for n := 1; n <= 9; n++ {
		b := New[int](n)
		for i := 0; i < n; i++ {
			require.True(t, b.Put(i), "capacity %d: put %d", n, i)
		}
		assert.True(t, b.Full())
		assert.Equal(t, n, b.Used())

		head, tail := b.head, b.tail
		assert.False(t, b.Put(99), "capacity %d: put past full", n)
		assert.Equal(t, head, b.head)
		assert.Equal(t, tail, b.tail)
		assert.Equal(t, n, b.Used())

		for i := 0; i < n; i++ {
			v, ok := b.Get()
			require.True(t, ok)
			assert.Equal(t, i, v)
		}
		assert.True(t, b.Empty())
	}
}

func TestRead_EmptyLeavesDestination(t *testing.T) {
	b := New[int](4)

	dst := 42
	assert.False(t, b.Read(&dst))
	assert.Equal(t, 42, dst)
	assert.Equal(t, uint32(0), b.head)
	assert.Equal(t, uint32(0), b.tail)
	assert.True(t, b.empty)

	v, ok := b.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestRoundTrip(t *testing.T) {
	type frame struct {
		id      uint16
		payload [4]byte
	}
	b := New[frame](2)
	in := frame{id: 7, payload: [4]byte{1, 2, 3, 4}}

	require.True(t, b.Put(in))

	var out frame
	require.True(t, b.Read(&out))
	assert.Equal(t, in, out)
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Used())
}

func TestCapacityThreeScenario(t *testing.T) {
	b := New[int](3)

	assert.True(t, b.Put(1))
	assert.True(t, b.Put(2))
	assert.True(t, b.Put(3))
	assert.False(t, b.Put(4))

	expectGet(t, b, 1)
	expectGet(t, b, 2)

	assert.True(t, b.Put(4))

	expectGet(t, b, 3)
	expectGet(t, b, 4)

	_, ok := b.Get()
	assert.False(t, ok)
}

func TestWrapAround_StaysConsistent(t *testing.T) {
	const n = 5
	b := New[int](n)
	next, want := 0, 0

	// Uneven batches push the indices around the ring several times.
	for _, batch := range []int{3, 5, 1, 4, 2, 5, 5, 3} {
		for i := 0; i < batch && !b.Full(); i++ {
			require.True(t, b.Put(next))
			next++
		}
		assert.Equal(t, next-want, b.Used())
		assert.Equal(t, n-(next-want), b.Free())
		assert.Equal(t, next-want == n, b.Full())

		for i := 0; i < batch-1; i++ {
			var v int
			if !b.Read(&v) {
				break
			}
			assert.Equal(t, want, v)
			want++
		}
		assert.Equal(t, next == want, b.Empty())
		assert.Less(t, b.head, uint32(n))
		assert.Less(t, b.tail, uint32(n))
	}
	assert.GreaterOrEqual(t, next, 2*n)
}

// TestFIFO_MatchesModel drives random put/get sequences and checks them
// against an unbounded queue clipped to the ring's capacity.
func TestFIFO_MatchesModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for n := 1; n <= 8; n++ {
		b := New[int](n)
		model := queue.New()

		for step := 0; step < 2000; step++ {
			if rng.IntN(2) == 0 {
				v := rng.Int()
				ok := b.Put(v)
				require.Equal(t, model.Length() < n, ok, "capacity %d step %d", n, step)
				if ok {
					model.Add(v)
				}
			} else {
				v, ok := b.Get()
				require.Equal(t, model.Length() > 0, ok, "capacity %d step %d", n, step)
				if ok {
					require.Equal(t, model.Remove().(int), v)
				}
			}
			require.Equal(t, model.Length(), b.Used())
		}
	}
}

func TestGet_ReleasesSlot(t *testing.T) {
	b := New[*int](2)
	x := 5

	require.True(t, b.Put(&x))
	slot := b.tail
	p, ok := b.Get()
	require.True(t, ok)
	assert.Same(t, &x, p)
	assert.Nil(t, b.data[slot])
}

func TestNewWithStorage_UsesCallerArray(t *testing.T) {
	store := [4]int{9, 9, 9, 9}
	b := NewWithStorage(store[:])

	assert.Equal(t, [4]int{}, store)
	assert.Equal(t, 4, b.Size())

	require.True(t, b.Put(1))
	assert.Equal(t, 1, store[0])
}

func TestInit_StaticBuffer(t *testing.T) {
	var (
		store [2]byte
		b     Buffer[byte]
	)
	b.Init(store[:])

	assert.True(t, b.Put('a'))
	assert.True(t, b.Put('b'))
	assert.False(t, b.Put('c'))
	expectGet(t, &b, 'a')
}

func TestClear(t *testing.T) {
	b := New[string](3)
	b.Put("a")
	b.Put("b")
	b.Get()

	b.Clear()

	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Used())
	assert.Equal(t, []string{"", "", ""}, b.data)
	assert.True(t, b.Put("c"))
	expectGet(t, b, "c")
}

func TestConcurrentProducerConsumer(t *testing.T) {
	const total = 20000
	b := New[int](16)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; {
			if b.Put(i) {
				i++
			} else {
				runtime.Gosched() // full; let the consumer drain
			}
		}
	}()

	for want := 0; want < total; {
		if v, ok := b.Get(); ok {
			require.Equal(t, want, v)
			want++
		} else {
			runtime.Gosched()
		}
	}
	<-done

	assert.True(t, b.Empty())
	assert.Equal(t, 0, irq.Held())
}

func expectGet[T any](t *testing.T, b *Buffer[T], want T) {
	t.Helper()
	v, ok := b.Get()
	require.True(t, ok)
	assert.Equal(t, want, v)
}
