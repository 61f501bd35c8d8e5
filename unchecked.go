package rawslice

import "unsafe"

// This file is the unchecked fast path.
//
// # USE AT YOUR OWN RISK
//
// The accessors below skip the exhaustion and bounds checks their
// counterparts in iter.go perform. They exist for the fold engine, whose
// loop guards have already proven the accesses in bounds, and for callers
// who carry an equivalent proof of their own. Calling them without that
// proof is undefined behavior: they will read or form pointers outside the
// iterator's window.
//
// Prefer Next, NextBack and At. Reach for these only on hot paths where a
// profile shows the redundant check and the surrounding code makes the
// bound obvious.

// NextUnchecked returns the next forward element and advances past it.
// The iterator must not be exhausted.
func (it *Iter[T]) NextUnchecked() *T {
	return it.nextUnchecked()
}

// NextBackUnchecked returns the last remaining element and retreats the
// end bound before it. The iterator must not be exhausted.
func (it *Iter[T]) NextBackUnchecked() *T {
	return it.nextBackUnchecked()
}

// AtUnchecked returns the i-th remaining element without advancing.
// The caller must guarantee 0 <= i < Len().
func (it *Iter[T]) AtUnchecked(i int) *T {
	var zero T
	return (*T)(unsafe.Add(it.Start(), uintptr(i)*unsafe.Sizeof(zero)))
}

func (it *Iter[T]) nextUnchecked() *T {
	p := unsafe.SliceData(it.rem)
	next := (*T)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p)))
	it.rem = unsafe.Slice(next, len(it.rem)-1)
	return p
}

func (it *Iter[T]) nextBackUnchecked() *T {
	var zero T
	n := len(it.rem) - 1
	p := (*T)(unsafe.Add(it.Start(), uintptr(n)*unsafe.Sizeof(zero)))
	it.rem = it.rem[:n]
	return p
}
