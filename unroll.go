package rawslice

// Unrolled is a reinterpretation of an Iter whose scan operations step
// four elements per loop iteration, falling back to one-at-a-time for the
// 0 to 3 element remainder. It embeds the Iter it was made from, so the
// stepping protocol, accessors and invariants are identical; only the
// granularity inside All, Any, Find, Position and RPosition changes, and
// never their results.
type Unrolled[T any] struct {
	Iter[T]
}

// Unrolled returns a four-wide scanning view over the identical window.
// No data is copied and the receiver is left untouched.
func (it Iter[T]) Unrolled() Unrolled[T] {
	return Unrolled[T]{it}
}

// All reports whether pred holds for every remaining element.
func (u *Unrolled[T]) All(pred func(T) bool) bool {
	return scanAll(&u.Iter, foldWhile4[T, bool], pred)
}

// Any reports whether pred holds for at least one remaining element.
func (u *Unrolled[T]) Any(pred func(T) bool) bool {
	return !u.All(func(v T) bool { return !pred(v) })
}

// Find returns the first remaining element for which pred holds, or nil.
func (u *Unrolled[T]) Find(pred func(T) bool) *T {
	return scanFind(&u.Iter, foldWhile4[T, *T], pred)
}

// Position returns the index of the first forward match, or -1.
func (u *Unrolled[T]) Position(pred func(T) bool) int {
	return scanPosition(&u.Iter, foldWhile4[T, int], pred)
}

// RPosition returns the forward-orientation index of the last match,
// scanning backward, or -1.
func (u *Unrolled[T]) RPosition(pred func(T) bool) int {
	return scanRPosition(&u.Iter, rfoldWhile4[T, int], pred)
}

// foldWhile4 behaves exactly like foldWhile but amortizes the loop bound
// check over four elements. done is still tested after every sub-step, so
// the early-exit point is element-for-element identical to foldWhile.
func foldWhile4[T, A any](it *Iter[T], acc A, step func(A, *T) (A, bool)) A {
	var done bool
	for len(it.rem) >= 4 {
		if acc, done = step(acc, it.nextUnchecked()); done {
			return acc
		}
		if acc, done = step(acc, it.nextUnchecked()); done {
			return acc
		}
		if acc, done = step(acc, it.nextUnchecked()); done {
			return acc
		}
		if acc, done = step(acc, it.nextUnchecked()); done {
			return acc
		}
	}
	return foldWhile(it, acc, step)
}

// rfoldWhile4 is the backward mirror of foldWhile4.
func rfoldWhile4[T, A any](it *Iter[T], acc A, step func(A, *T) (A, bool)) A {
	var done bool
	for len(it.rem) >= 4 {
		if acc, done = step(acc, it.nextBackUnchecked()); done {
			return acc
		}
		if acc, done = step(acc, it.nextBackUnchecked()); done {
			return acc
		}
		if acc, done = step(acc, it.nextBackUnchecked()); done {
			return acc
		}
		if acc, done = step(acc, it.nextBackUnchecked()); done {
			return acc
		}
	}
	return rfoldWhile(it, acc, step)
}
