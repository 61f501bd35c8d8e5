package rawslice_test

import (
	"slices"
	"testing"

	"github.com/lguimbarda/rawslice"
)

// The fuzzers below assert bit-for-bit agreement between every scan
// operation, in both stepping granularities, and a trusted reference over
// the same data: package slices where it has an equivalent, a plain loop
// where it does not. The offset byte exercises scans over sub-windows at
// arbitrary alignment.

func refRIndexFunc(data []byte, pred func(byte) bool) int {
	for i := len(data) - 1; i >= 0; i-- {
		if pred(data[i]) {
			return i
		}
	}
	return -1
}

func FuzzScanEquivalence(f *testing.F) {
	f.Add([]byte{}, byte(0), byte(0))
	f.Add([]byte{0}, byte(0), byte(0))
	f.Add([]byte{1, 2, 3}, byte(1), byte(2))
	f.Add([]byte{0, 0, 0, 0, 1}, byte(0), byte(1))
	f.Add([]byte{5, 5, 5, 5, 5, 5, 5, 5, 5}, byte(3), byte(5))

	f.Fuzz(func(t *testing.T, data []byte, offset, pat byte) {
		if len(data) > 0 {
			data = data[int(offset)%len(data):]
		}
		pred := func(b byte) bool { return b == pat }

		wantPos := slices.IndexFunc(data, pred)
		wantRPos := refRIndexFunc(data, pred)
		wantAny := slices.ContainsFunc(data, pred)
		wantAll := !slices.ContainsFunc(data, func(b byte) bool { return !pred(b) })

		it := rawslice.FromSlice(data)
		if got := it.Position(pred); got != wantPos {
			t.Errorf("Position = %d, want %d", got, wantPos)
		}
		it = rawslice.FromSlice(data)
		if got := it.RPosition(pred); got != wantRPos {
			t.Errorf("RPosition = %d, want %d", got, wantRPos)
		}
		it = rawslice.FromSlice(data)
		if got := it.Any(pred); got != wantAny {
			t.Errorf("Any = %v, want %v", got, wantAny)
		}
		it = rawslice.FromSlice(data)
		if got := it.All(pred); got != wantAll {
			t.Errorf("All = %v, want %v", got, wantAll)
		}
		it = rawslice.FromSlice(data)
		e := it.Find(pred)
		switch {
		case wantPos < 0 && e != nil:
			t.Errorf("Find = %v, want nil", *e)
		case wantPos >= 0 && e != &data[wantPos]:
			t.Errorf("Find did not return a reference to element %d", wantPos)
		}

		u := rawslice.FromSlice(data).Unrolled()
		if got := u.Position(pred); got != wantPos {
			t.Errorf("Unrolled Position = %d, want %d", got, wantPos)
		}
		u = rawslice.FromSlice(data).Unrolled()
		if got := u.RPosition(pred); got != wantRPos {
			t.Errorf("Unrolled RPosition = %d, want %d", got, wantRPos)
		}
		u = rawslice.FromSlice(data).Unrolled()
		if got := u.Any(pred); got != wantAny {
			t.Errorf("Unrolled Any = %v, want %v", got, wantAny)
		}
		u = rawslice.FromSlice(data).Unrolled()
		if got := u.All(pred); got != wantAll {
			t.Errorf("Unrolled All = %v, want %v", got, wantAll)
		}
		u = rawslice.FromSlice(data).Unrolled()
		if e := u.Find(pred); wantPos >= 0 && e != &data[wantPos] {
			t.Errorf("Unrolled Find did not return a reference to element %d", wantPos)
		} else if wantPos < 0 && e != nil {
			t.Errorf("Unrolled Find = %v, want nil", *e)
		}
	})
}

func FuzzSteppingInvariants(f *testing.F) {
	f.Add([]byte{}, byte(0))
	f.Add([]byte{1, 2, 3, 4, 5}, byte(2))
	f.Add([]byte{9}, byte(1))

	f.Fuzz(func(t *testing.T, data []byte, mix byte) {
		it := rawslice.FromSlice(data)

		visited := 0
		for it.Len() > 0 {
			before := it.Len()
			var e *byte
			if mix&1 == 0 {
				e = it.Next()
			} else {
				e = it.NextBack()
			}
			mix = mix>>1 | mix<<7
			if e == nil {
				t.Fatal("step on non-empty iterator returned nil")
			}
			if got := it.Len(); got != before-1 {
				t.Fatalf("Len() = %d after step, want %d", got, before-1)
			}
			visited++
		}

		if visited != len(data) {
			t.Errorf("visited %d elements, want %d", visited, len(data))
		}
		if e := it.Next(); e != nil {
			t.Error("Next() on exhausted iterator returned an element")
		}
		if e := it.NextBack(); e != nil {
			t.Error("NextBack() on exhausted iterator returned an element")
		}
	})
}
