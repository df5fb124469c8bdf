package maxlen

import "fmt"

// BSlice is a bounded view of a native slice. It borrows the backing
// array of the slice it was built from and guarantees len <= Max for its
// entire lifetime. The zero value is an empty view with a bound of 0.
//
// A BSlice follows the usual slice aliasing rules: any number of views
// may read the same backing array, and element writes through Set are
// visible to every alias. No operation on a view can change its length,
// so the bound never needs re-checking after construction.
type BSlice[T any] struct {
	s   []T
	max int
}

// Slice wraps s in a bounded view, checking len(s) against max.
func Slice[T any](s []T, max int) (BSlice[T], error) {
	if err := checkLen(len(s), max); err != nil {
		return BSlice[T]{}, err
	}
	return BSlice[T]{s: s, max: max}, nil
}

// SliceUnchecked wraps s in a bounded view without checking the bound.
//
// The caller is responsible for making sure len(s) <= max. If that does
// not hold, the container invariant is broken and the behavior of all
// further use is undefined.
func SliceUnchecked[T any](s []T, max int) BSlice[T] {
	return BSlice[T]{s: s, max: max}
}

// Len returns the number of elements in the view.
func (b BSlice[T]) Len() int { return len(b.s) }

// Max returns the bound the view was constructed with.
func (b BSlice[T]) Max() int { return b.max }

// IsEmpty reports whether the view has no elements.
func (b BSlice[T]) IsEmpty() bool { return len(b.s) == 0 }

// At returns the element at index i.
func (b BSlice[T]) At(i int) T { return b.s[i] }

// Set stores v at index i. Element writes go through to the backing
// array and cannot change the view's length.
func (b BSlice[T]) Set(i int, v T) { b.s[i] = v }

// Raw returns the native slice the view borrows. Appending to the
// result cannot affect the view; callers that grow it must re-validate
// via Slice to get a bounded value back.
func (b BSlice[T]) Raw() []T { return b.s }

// Sub returns the view of b.s[i:j] under the same bound. A sub-view can
// never be longer than its parent, so no check is performed.
func (b BSlice[T]) Sub(i, j int) BSlice[T] {
	return BSlice[T]{s: b.s[i:j], max: b.max}
}

// Widen returns the same view under a larger bound. It is total and
// free for any max2 >= Max; a smaller max2 is a programmer error and
// panics. Use Rebound to narrow.
func (b BSlice[T]) Widen(max2 int) BSlice[T] {
	if max2 < b.max {
		panic(fmt.Sprintf("maxlen: Widen from %d to %d would narrow", b.max, max2))
	}
	return BSlice[T]{s: b.s, max: max2}
}

// Rebound returns the same view under an arbitrary new bound, checking
// the current length against it.
func (b BSlice[T]) Rebound(max2 int) (BSlice[T], error) {
	return Slice(b.s, max2)
}

// Materialize clones the viewed elements into an owned BVec with the
// same bound.
func (b BSlice[T]) Materialize() *BVec[T] {
	v := make([]T, len(b.s))
	copy(v, b.s)
	return &BVec[T]{v: v, max: b.max}
}

// SliceEqual reports whether two bounded views hold equal elements.
// Bounds do not participate in equality.
func SliceEqual[T comparable](a, b BSlice[T]) bool {
	if len(a.s) != len(b.s) {
		return false
	}
	for i := range a.s {
		if a.s[i] != b.s[i] {
			return false
		}
	}
	return true
}
