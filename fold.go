package rawslice

// The five scan operations are all the same traversal: a fold that may
// stop early. Each operation only chooses an accumulator and a rule for
// when to stop, then hands both to foldWhile or rfoldWhile. Keeping the
// loop in exactly one place per direction is what lets the unrolled
// variants in unroll.go stay correct without duplicating any operation
// logic.

// Scanner is the scan surface shared by Iter, which steps one element per
// loop iteration, and Unrolled, which steps four. Both produce identical
// results for identical input; they differ only in stepping granularity.
type Scanner[T any] interface {
	Len() int
	All(pred func(T) bool) bool
	Any(pred func(T) bool) bool
	Find(pred func(T) bool) *T
	Position(pred func(T) bool) int
	RPosition(pred func(T) bool) int
}

var (
	_ Scanner[int] = (*Iter[int])(nil)
	_ Scanner[int] = (*Unrolled[int])(nil)
)

// All reports whether pred holds for every remaining element, stopping at
// the first element for which it does not. Vacuously true when exhausted.
func (it *Iter[T]) All(pred func(T) bool) bool {
	return scanAll(it, foldWhile[T, bool], pred)
}

// Any reports whether pred holds for at least one remaining element,
// stopping at the first element for which it does.
func (it *Iter[T]) Any(pred func(T) bool) bool {
	return !it.All(func(v T) bool { return !pred(v) })
}

// Find returns the first remaining element for which pred holds, or nil
// if there is none. The returned pointer aliases the underlying memory.
func (it *Iter[T]) Find(pred func(T) bool) *T {
	return scanFind(it, foldWhile[T, *T], pred)
}

// Position returns the 0-based index, counted from the current forward
// position, of the first remaining element for which pred holds, or -1 if
// there is none. The convention matches slices.IndexFunc.
func (it *Iter[T]) Position(pred func(T) bool) int {
	return scanPosition(it, foldWhile[T, int], pred)
}

// RPosition scans backward and returns the index of the last remaining
// element for which pred holds, or -1 if there is none. The index is in
// forward orientation: it is the same value Position would report for
// that element, even though the scan visits elements in reverse.
func (it *Iter[T]) RPosition(pred func(T) bool) int {
	return scanRPosition(it, rfoldWhile[T, int], pred)
}

// foldWhile repeatedly applies step to the accumulator and the next
// forward element. step returns the new accumulator and whether the fold
// is done; on done the fold returns immediately without visiting further
// elements. If the range is exhausted first, the last accumulator is
// returned. The loop guard proves non-exhaustion, so the element load is
// unchecked.
func foldWhile[T, A any](it *Iter[T], acc A, step func(A, *T) (A, bool)) A {
	var done bool
	for len(it.rem) != 0 {
		if acc, done = step(acc, it.nextUnchecked()); done {
			return acc
		}
	}
	return acc
}

// rfoldWhile is the mirror image of foldWhile, consuming from the back.
func rfoldWhile[T, A any](it *Iter[T], acc A, step func(A, *T) (A, bool)) A {
	var done bool
	for len(it.rem) != 0 {
		if acc, done = step(acc, it.nextBackUnchecked()); done {
			return acc
		}
	}
	return acc
}

// fold is the shape shared by foldWhile, rfoldWhile and their unrolled
// variants, letting the scan configurations below run under any of them.
type fold[T, A any] func(*Iter[T], A, func(A, *T) (A, bool)) A

func scanAll[T any](it *Iter[T], f fold[T, bool], pred func(T) bool) bool {
	return f(it, true, func(_ bool, e *T) (bool, bool) {
		if pred(*e) {
			return true, false
		}
		return false, true
	})
}

func scanFind[T any](it *Iter[T], f fold[T, *T], pred func(T) bool) *T {
	return f(it, nil, func(_ *T, e *T) (*T, bool) {
		if pred(*e) {
			return e, true
		}
		return nil, false
	})
}

func scanPosition[T any](it *Iter[T], f fold[T, int], pred func(T) bool) int {
	index := 0
	return f(it, -1, func(acc int, e *T) (int, bool) {
		if pred(*e) {
			return index, true
		}
		index++
		return acc, false
	})
}

func scanRPosition[T any](it *Iter[T], f fold[T, int], pred func(T) bool) int {
	// Forward-orientation bookkeeping: total length minus steps taken.
	index := it.Len()
	return f(it, -1, func(acc int, e *T) (int, bool) {
		index--
		if pred(*e) {
			return index, true
		}
		return acc, false
	})
}
