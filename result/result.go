// result/result.go

// Package result provides Result, a container holding either a success value
// or an error code, never both.
//
// It is meant for code that reports failure through small enumerated codes
// instead of error values, for example ISR-adjacent driver code where a
// failure reason fits in a byte. Errors are never propagated implicitly:
// callers test OK before reading the value, and reading the side that is not
// active is a caller bug (it returns whatever zero value is stored).
package result

import "fmt"

// Releaser is implemented by payloads that must give something back when a
// Result stops holding them, such as a pooled buffer or a reference count.
// Reset, Assign, MoveFrom, SetValue and SetErr call Release on the outgoing
// success payload.
type Releaser interface {
	Release()
}

// Cloner is implemented by payloads whose copy is more than a value copy.
// Clone and Assign use it to replicate a success payload.
type Cloner[T any] interface {
	Clone() T
}

// Result holds either a success payload of type T or an error code of type E.
//
// Go has no untagged unions, so both members have a field; the inactive one is
// always kept at its zero value and is never released or cloned. The zero
// Result is a failure holding the zero code.
type Result[T any, E comparable] struct {
	val  T
	code E
	ok   bool
}

// Of returns a success result holding v.
func Of[T any, E comparable](v T) Result[T, E] {
	return Result[T, E]{val: v, ok: true}
}

// Make returns a success result whose value is built by build directly in the
// result's storage.
func Make[T any, E comparable](build func(*T)) Result[T, E] {
	var r Result[T, E]
	r.Emplace(build)
	return r
}

// Fail returns a failure result holding code.
func Fail[T any, E comparable](code E) Result[T, E] {
	return Result[T, E]{code: code}
}

// Ref returns a success result that records where *p lives. The result does
// not copy or own the referent; Value returns p itself.
func Ref[T any, E comparable](p *T) Result[*T, E] {
	return Result[*T, E]{val: p, ok: true}
}

// FromError adapts a (value, error) return to a Result.
func FromError[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Of[T, error](v)
}

// OK reports whether r holds a success value.
func (r Result[T, E]) OK() bool { return r.ok }

// Value returns the success payload. r must be OK.
func (r Result[T, E]) Value() T { return r.val }

// Ptr returns a pointer to the success payload inside r. r must be OK.
func (r *Result[T, E]) Ptr() *T { return &r.val }

// Err returns the error code. r must not be OK.
func (r Result[T, E]) Err() E { return r.code }

// Get returns the success payload and whether there is one.
func (r Result[T, E]) Get() (T, bool) { return r.val, r.ok }

// ValueOr returns the success payload, or def if r holds an error.
func (r Result[T, E]) ValueOr(def T) T {
	if r.ok {
		return r.val
	}
	return def
}

// Clone returns an independent copy of r. A success payload implementing
// Cloner[T] is copied with Clone; anything else is copied by value.
func (r Result[T, E]) Clone() Result[T, E] {
	if !r.ok {
		return Result[T, E]{code: r.code}
	}
	if c, ok := any(r.val).(Cloner[T]); ok {
		return Result[T, E]{val: c.Clone(), ok: true}
	}
	return r
}

// Reset ends the lifetime of the active member: a success payload is
// released, then r becomes the zero Result.
func (r *Result[T, E]) Reset() {
	if r.ok {
		if rel, ok := any(r.val).(Releaser); ok {
			rel.Release()
		}
	}
	*r = Result[T, E]{}
}

// Assign makes r a copy of src, releasing what r held before. Assigning a
// Result to itself does nothing.
func (r *Result[T, E]) Assign(src *Result[T, E]) {
	if r == src {
		return
	}
	c := src.Clone()
	r.Reset()
	*r = c
}

// MoveFrom transfers src's content into r without cloning it, releasing what
// r held before. src is left as the zero Result and its payload is not
// released, since r now owns it.
func (r *Result[T, E]) MoveFrom(src *Result[T, E]) {
	if r == src {
		return
	}
	r.Reset()
	*r = *src
	*src = Result[T, E]{}
}

// SetValue replaces r's content with the success value v.
func (r *Result[T, E]) SetValue(v T) {
	r.Reset()
	r.val = v
	r.ok = true
}

// Emplace replaces r's content with a success value built in place by build.
func (r *Result[T, E]) Emplace(build func(*T)) {
	r.Reset()
	build(&r.val)
	r.ok = true
}

// SetErr replaces r's content with the error code.
func (r *Result[T, E]) SetErr(code E) {
	r.Reset()
	r.code = code
}

// String formats r as Ok(value) or Err(code).
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.val)
	}
	return fmt.Sprintf("Err(%v)", r.code)
}

// Equal reports whether a and b are both successes with equal payloads or both
// failures with equal codes.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares payloads with eq.
func EqualFunc[T any, E comparable](a, b Result[T, E], eq func(T, T) bool) bool {
	switch {
	case a.ok && b.ok:
		return eq(a.val, b.val)
	case !a.ok && !b.ok:
		return a.code == b.code
	default:
		return false
	}
}
