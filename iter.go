package rawslice

import (
	"iter"
	"unsafe"
)

// Iter is a read-only cursor over a contiguous run of elements. It yields
// references into the underlying memory, never copies of it.
//
// The zero value is a valid, exhausted iterator that aliases no memory.
// Stepping it in either direction is a no-op.
type Iter[T any] struct {
	// rem is the remaining [start, end) window. The slice header carries
	// the start pointer and the length; the end bound is derived. Forward
	// consumption shrinks the window from the front, backward consumption
	// from the back, so both directions converge on the same empty window.
	rem []T
}

// FromSlice creates an iterator over every element of s.
//
// Panics if T is a zero-sized type. A zero-sized element has no stride, so
// the pointer-distance arithmetic this package is built on cannot describe
// it.
func FromSlice[T any](s []T) Iter[T] {
	mustSized[T]()
	return Iter[T]{rem: s}
}

// FromRange creates an iterator over the half-open range [start, end).
//
// The caller must guarantee that start and end are derived from the same
// allocation, that start <= end measured in whole elements, and that every
// address in between stays validly readable as T for the iterator's whole
// lifetime. None of that is checked here; violating it is undefined
// behavior.
//
// Panics if T is a zero-sized type.
func FromRange[T any](start, end unsafe.Pointer) Iter[T] {
	size := mustSized[T]()
	n := (uintptr(end) - uintptr(start)) / size
	return Iter[T]{rem: unsafe.Slice((*T)(start), n)}
}

// mustSized returns T's stride, panicking for zero-sized types.
func mustSized[T any]() uintptr {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		panic("rawslice: zero-sized element type")
	}
	return size
}

// Len returns the exact number of elements left to yield. O(1).
func (it *Iter[T]) Len() int {
	return len(it.rem)
}

// Next returns the next forward element and advances past it, or nil if
// the iterator is exhausted.
func (it *Iter[T]) Next() *T {
	if len(it.rem) == 0 {
		return nil
	}
	p := &it.rem[0]
	it.rem = it.rem[1:]
	return p
}

// NextBack returns the last remaining element and retreats the end bound
// before it, or nil if the iterator is exhausted.
//
// Next and NextBack interleave safely: together they visit each element
// exactly once.
func (it *Iter[T]) NextBack() *T {
	n := len(it.rem)
	if n == 0 {
		return nil
	}
	p := &it.rem[n-1]
	it.rem = it.rem[:n-1]
	return p
}

// Peek returns the next forward element without advancing, or nil if the
// iterator is exhausted.
func (it *Iter[T]) Peek() *T {
	if len(it.rem) == 0 {
		return nil
	}
	return &it.rem[0]
}

// At returns the i-th remaining element without advancing.
// Panics if i is out of range.
func (it *Iter[T]) At(i int) *T {
	if i < 0 || i >= len(it.rem) {
		panic("rawslice: index out of range")
	}
	return &it.rem[i]
}

// Slice returns the remaining elements as a slice. Zero-copy: the result
// aliases the iterator's window, and FromSlice of it reproduces the
// iterator exactly.
func (it *Iter[T]) Slice() []T {
	return it.rem
}

// Start returns the address of the next forward element, or nil when the
// iterator was built over nothing.
func (it *Iter[T]) Start() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(it.rem))
}

// End returns the address one past the last remaining element.
//
// The returned pointer is a bound, not an element; dereferencing it is
// undefined behavior.
func (it *Iter[T]) End() unsafe.Pointer {
	var zero T
	return unsafe.Add(it.Start(), uintptr(len(it.rem))*unsafe.Sizeof(zero))
}

// Values returns a range-over-func sequence that consumes the iterator
// forward. Breaking out of the range leaves the iterator at the first
// unvisited element.
func (it *Iter[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := it.Next(); e != nil; e = it.Next() {
			if !yield(*e) {
				return
			}
		}
	}
}
