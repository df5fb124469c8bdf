package maxlen

import (
	"fmt"
	"slices"
)

// BVec is a bounded owned buffer of elements, the owning counterpart of
// [BSlice]. It holds its backing array exclusively and guarantees
// Len <= Max for its entire lifetime.
//
// The mutating surface is limited to operations that cannot increase
// the length. There is deliberately no append, insert, or extend; a
// caller that needs growth takes the native slice via IntoRaw, grows
// it, and re-validates with Vec.
type BVec[T any] struct {
	v   []T
	max int
}

// NewVec returns an empty bounded buffer. An empty buffer trivially
// satisfies any bound, including 0.
func NewVec[T any](max int) *BVec[T] {
	return &BVec[T]{max: max}
}

// NewVecCap returns an empty bounded buffer with preallocated capacity.
func NewVecCap[T any](max, capacity int) *BVec[T] {
	return &BVec[T]{v: make([]T, 0, capacity), max: max}
}

// Vec adopts v as the backing storage of a bounded buffer, checking
// len(v) against max. The buffer takes ownership: the caller must not
// retain or mutate v afterwards.
func Vec[T any](v []T, max int) (*BVec[T], error) {
	if err := checkLen(len(v), max); err != nil {
		return nil, err
	}
	return &BVec[T]{v: v, max: max}, nil
}

// VecUnchecked adopts v without checking the bound.
//
// The caller is responsible for making sure len(v) <= max; violating
// that breaks the container invariant.
func VecUnchecked[T any](v []T, max int) *BVec[T] {
	return &BVec[T]{v: v, max: max}
}

// VecOfSlice copies s into a new bounded buffer, checking len(s)
// against max. The caller keeps ownership of s.
func VecOfSlice[T any](s []T, max int) (*BVec[T], error) {
	if err := checkLen(len(s), max); err != nil {
		return nil, err
	}
	v := make([]T, len(s))
	copy(v, s)
	return &BVec[T]{v: v, max: max}, nil
}

// Len returns the number of elements.
func (b *BVec[T]) Len() int { return len(b.v) }

// Max returns the bound.
func (b *BVec[T]) Max() int { return b.max }

// Cap returns the capacity of the backing array. Capacity may exceed
// the bound; only length is constrained.
func (b *BVec[T]) Cap() int { return cap(b.v) }

// IsEmpty reports whether the buffer has no elements.
func (b *BVec[T]) IsEmpty() bool { return len(b.v) == 0 }

// Borrow returns a bounded view of the buffer's current contents. The
// view aliases the backing array and is invalidated by any subsequent
// length-changing mutation of the buffer.
func (b *BVec[T]) Borrow() BSlice[T] {
	return BSlice[T]{s: b.v, max: b.max}
}

// Truncate shortens the buffer to n elements. If n >= Len it does
// nothing. The resulting length is min(n, Len), which cannot exceed
// the bound.
func (b *BVec[T]) Truncate(n int) {
	if n < len(b.v) {
		clear(b.v[n:])
		b.v = b.v[:n]
	}
}

// Clear removes all elements, keeping the allocated capacity.
func (b *BVec[T]) Clear() {
	clear(b.v)
	b.v = b.v[:0]
}

// Pop removes and returns the last element. The second result is false
// if the buffer is empty.
func (b *BVec[T]) Pop() (T, bool) {
	var zero T
	if len(b.v) == 0 {
		return zero, false
	}
	last := len(b.v) - 1
	e := b.v[last]
	b.v[last] = zero
	b.v = b.v[:last]
	return e, true
}

// PopIf removes and returns the last element if pred accepts it. pred
// may mutate the element whether or not it is removed.
func (b *BVec[T]) PopIf(pred func(*T) bool) (T, bool) {
	var zero T
	if len(b.v) == 0 || !pred(&b.v[len(b.v)-1]) {
		return zero, false
	}
	return b.Pop()
}

// Remove deletes and returns the element at index i, shifting later
// elements left. It panics if i is out of range.
func (b *BVec[T]) Remove(i int) T {
	e := b.v[i]
	b.v = slices.Delete(b.v, i, i+1)
	return e
}

// SwapRemove deletes and returns the element at index i by moving the
// last element into its place. It does not preserve order but runs in
// O(1). It panics if i is out of range.
func (b *BVec[T]) SwapRemove(i int) T {
	var zero T
	e := b.v[i]
	last := len(b.v) - 1
	b.v[i] = b.v[last]
	b.v[last] = zero
	b.v = b.v[:last]
	return e
}

// Retain keeps only the elements accepted by keep, preserving order.
func (b *BVec[T]) Retain(keep func(T) bool) {
	b.v = slices.DeleteFunc(b.v, func(e T) bool { return !keep(e) })
}

// RetainMut keeps only the elements accepted by keep, preserving order.
// keep may mutate the elements it inspects, whether or not they are
// kept.
func (b *BVec[T]) RetainMut(keep func(*T) bool) {
	out := b.v[:0]
	for i := range b.v {
		if keep(&b.v[i]) {
			out = append(out, b.v[i])
		}
	}
	clear(b.v[len(out):])
	b.v = out
}

// DedupFunc removes consecutive elements that eq reports equal, keeping
// the first of each run.
func (b *BVec[T]) DedupFunc(eq func(a, b T) bool) {
	b.v = slices.CompactFunc(b.v, eq)
}

// Dedup removes consecutive equal elements from a buffer of comparable
// elements, keeping the first of each run.
func Dedup[T comparable](b *BVec[T]) {
	b.v = slices.Compact(b.v)
}

// DedupByKey removes consecutive elements that map to the same key,
// keeping the first of each run.
func DedupByKey[T any, K comparable](b *BVec[T], key func(T) K) {
	b.v = slices.CompactFunc(b.v, func(x, y T) bool { return key(x) == key(y) })
}

// Drain removes the elements in [i, j) and returns them as a fresh
// slice. It panics if the range is invalid.
func (b *BVec[T]) Drain(i, j int) []T {
	out := make([]T, j-i)
	copy(out, b.v[i:j])
	b.v = slices.Delete(b.v, i, j)
	return out
}

// SplitOff removes the elements from index i to the end and returns
// them as a new buffer under the same bound. Each half is no longer
// than the whole, so both sides keep the invariant without a check.
func (b *BVec[T]) SplitOff(i int) *BVec[T] {
	tail := make([]T, len(b.v)-i)
	copy(tail, b.v[i:])
	clear(b.v[i:])
	b.v = b.v[:i]
	return &BVec[T]{v: tail, max: b.max}
}

// Widen returns the buffer under a larger bound, consuming the
// receiver: the backing storage moves to the result and the receiver
// must not be used afterwards. It panics if max2 < Max; use Rebound to
// narrow.
func (b *BVec[T]) Widen(max2 int) *BVec[T] {
	if max2 < b.max {
		panic(fmt.Sprintf("maxlen: Widen from %d to %d would narrow", b.max, max2))
	}
	v := b.v
	b.v = nil
	return &BVec[T]{v: v, max: max2}
}

// Rebound returns the buffer under an arbitrary new bound, checking the
// current length against it. On success it consumes the receiver like
// Widen; on failure the receiver is left intact.
func (b *BVec[T]) Rebound(max2 int) (*BVec[T], error) {
	if err := checkLen(len(b.v), max2); err != nil {
		return nil, err
	}
	v := b.v
	b.v = nil
	return &BVec[T]{v: v, max: max2}, nil
}

// Clone returns an owned copy of the buffer.
func (b *BVec[T]) Clone() *BVec[T] {
	v := make([]T, len(b.v))
	copy(v, b.v)
	return &BVec[T]{v: v, max: b.max}
}

// Leak consumes the buffer and returns a view of its contents with no
// owner. The receiver must not be used afterwards; the backing array
// stays reachable through the view.
func (b *BVec[T]) Leak() BSlice[T] {
	v := b.v
	b.v = nil
	return BSlice[T]{s: v, max: b.max}
}

// IntoRaw consumes the buffer and returns the native backing slice,
// releasing it from the bound. The receiver must not be used afterwards.
func (b *BVec[T]) IntoRaw() []T {
	v := b.v
	b.v = nil
	return v
}
