//go:build !ringdebug

package ring

type Stats struct{}

func (b *Buffer[T]) dbgPut(bool) {}
func (b *Buffer[T]) dbgGet(bool) {}

func (b *Buffer[T]) DebugReset()       {}
func (b *Buffer[T]) DebugStats() Stats { return Stats{} }
