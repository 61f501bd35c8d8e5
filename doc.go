// Package rawslice implements a bidirectional, read-only iterator over
// contiguous memory, built around the (start, end) bounds that a slice
// header already carries.
//
// The package covers two gaps in the standard library:
//
//   - Construction from raw bounds. FromRange builds an iterator from a
//     (start, end) pointer pair, which no slices-package helper offers.
//   - Short-circuiting scans. All, Any, Find, Position and RPosition are
//     derived from a single fold-with-early-exit primitive. The Unrolled
//     view drives that primitive four elements per loop iteration, which
//     gives the instruction scheduler more independent work per branch
//     while keeping the exact early-exit point of the one-at-a-time loop.
//
// An Iter never owns memory. It is a borrowed window that must not outlive
// the slice or allocation it was created from. Copying an Iter copies the
// cursor, not the data, so a copy is a cheap snapshot of the remaining
// window.
//
// Every operation is a plain synchronous pointer walk. An Iter may be
// handed to another goroutine and used there, provided the underlying
// memory is not written to concurrently and genuinely outlives the use.
// Nothing in this package locks or retries.
package rawslice
