package maxlen

import (
	"fmt"
	"slices"
	"unicode/utf8"
	"unsafe"
)

// BString is a bounded owned text buffer, the owning counterpart of
// [BStr]. It holds a mutable byte buffer, normally valid UTF-8, and
// guarantees the length under E never exceeds the bound. Construction
// does not validate UTF-8; the mutators preserve whatever bytes they
// were given.
//
// As with [BVec], the mutating surface is limited to operations that
// cannot increase the logical length. ASCII case conversion is allowed
// because a sound encoding is length-invariant under it.
type BString[E Encoding] struct {
	b   []byte
	max int
}

// NewString returns an empty bounded text buffer.
func NewString[E Encoding](max int) *BString[E] {
	return &BString[E]{max: max}
}

// NewStringCap returns an empty bounded text buffer with preallocated
// capacity.
func NewStringCap[E Encoding](max, capacity int) *BString[E] {
	return &BString[E]{b: make([]byte, 0, capacity), max: max}
}

// OwnString copies s into a new bounded text buffer, checking its
// length under E against max.
func OwnString[E Encoding](s string, max int) (*BString[E], error) {
	var e E
	if err := checkLen(e.Length(s), max); err != nil {
		return nil, err
	}
	return &BString[E]{b: []byte(s), max: max}, nil
}

// OwnStringUnchecked copies s into a bounded text buffer without
// checking the bound.
//
// The caller is responsible for making sure the length of s under E is
// at most max; violating that breaks the container invariant.
func OwnStringUnchecked[E Encoding](s string, max int) *BString[E] {
	return &BString[E]{b: []byte(s), max: max}
}

// Len returns the buffer length in native bytes.
func (b *BString[E]) Len() int { return len(b.b) }

// EncodedLen computes the buffer's logical length under E.
func (b *BString[E]) EncodedLen() int {
	var e E
	return e.Length(bytesToString(b.b))
}

// Max returns the bound.
func (b *BString[E]) Max() int { return b.max }

// Cap returns the capacity of the backing buffer.
func (b *BString[E]) Cap() int { return cap(b.b) }

// IsEmpty reports whether the buffer is empty.
func (b *BString[E]) IsEmpty() bool { return len(b.b) == 0 }

// String returns a copy of the buffer's contents as a native string.
func (b *BString[E]) String() string { return string(b.b) }

// Borrow returns a bounded view of the buffer's current contents
// without copying. The view aliases the backing buffer and is
// invalidated by any subsequent mutation of the buffer; callers that
// need a stable string take String instead.
func (b *BString[E]) Borrow() BStr[E] {
	return BStr[E]{s: bytesToString(b.b), max: b.max}
}

// Truncate shortens the buffer to n bytes. If n >= Len it does
// nothing. n must fall on a UTF-8 character boundary; Truncate panics
// otherwise.
func (b *BString[E]) Truncate(n int) {
	if n >= len(b.b) {
		return
	}
	if !utf8.RuneStart(b.b[n]) {
		panic(fmt.Sprintf("maxlen: Truncate(%d) not on character boundary", n))
	}
	b.b = b.b[:n]
}

// Clear empties the buffer, keeping the allocated capacity.
func (b *BString[E]) Clear() {
	b.b = b.b[:0]
}

// Pop removes and returns the last character. The second result is
// false if the buffer is empty.
func (b *BString[E]) Pop() (rune, bool) {
	if len(b.b) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(b.b)
	b.b = b.b[:len(b.b)-size]
	return r, true
}

// Remove deletes and returns the character starting at byte offset i,
// shifting the rest left. It panics if i is out of range or not on a
// character boundary.
func (b *BString[E]) Remove(i int) rune {
	if !utf8.RuneStart(b.b[i]) {
		panic(fmt.Sprintf("maxlen: Remove(%d) not on character boundary", i))
	}
	r, size := utf8.DecodeRune(b.b[i:])
	b.b = slices.Delete(b.b, i, i+size)
	return r
}

// Retain keeps only the characters accepted by keep, preserving order.
// Kept characters are copied byte-for-byte, so the buffer can only
// shrink, whatever its contents decode to.
func (b *BString[E]) Retain(keep func(rune) bool) {
	out := b.b[:0]
	for i := 0; i < len(b.b); {
		r, size := utf8.DecodeRune(b.b[i:])
		if keep(r) {
			out = append(out, b.b[i:i+size]...)
		}
		i += size
	}
	b.b = out
}

// Drain removes the bytes in [i, j) and returns them as a string. Both
// offsets must fall on character boundaries; Drain panics otherwise.
func (b *BString[E]) Drain(i, j int) string {
	if i < len(b.b) && !utf8.RuneStart(b.b[i]) || j < len(b.b) && !utf8.RuneStart(b.b[j]) {
		panic(fmt.Sprintf("maxlen: Drain(%d, %d) not on character boundary", i, j))
	}
	out := string(b.b[i:j])
	b.b = slices.Delete(b.b, i, j)
	return out
}

// SplitOff removes the text from byte offset i to the end and returns
// it as a new buffer under the same bound. i must fall on a character
// boundary. Each half is no longer than the whole, so both sides keep
// the invariant without a check.
func (b *BString[E]) SplitOff(i int) *BString[E] {
	if i < len(b.b) && !utf8.RuneStart(b.b[i]) {
		panic(fmt.Sprintf("maxlen: SplitOff(%d) not on character boundary", i))
	}
	tail := make([]byte, len(b.b)-i)
	copy(tail, b.b[i:])
	b.b = b.b[:i]
	return &BString[E]{b: tail, max: b.max}
}

// MakeASCIIUppercase converts ASCII letters in place to upper case.
// Sound encodings are length-invariant under ASCII case change, so the
// bound holds without a check.
func (b *BString[E]) MakeASCIIUppercase() {
	for i, c := range b.b {
		if 'a' <= c && c <= 'z' {
			b.b[i] = c - ('a' - 'A')
		}
	}
}

// MakeASCIILowercase converts ASCII letters in place to lower case.
func (b *BString[E]) MakeASCIILowercase() {
	for i, c := range b.b {
		if 'A' <= c && c <= 'Z' {
			b.b[i] = c + ('a' - 'A')
		}
	}
}

// Widen returns the buffer under a larger bound, consuming the
// receiver. It panics if max2 < Max; use Rebound to narrow.
func (b *BString[E]) Widen(max2 int) *BString[E] {
	if max2 < b.max {
		panic(fmt.Sprintf("maxlen: Widen from %d to %d would narrow", b.max, max2))
	}
	buf := b.b
	b.b = nil
	return &BString[E]{b: buf, max: max2}
}

// Rebound returns the buffer under an arbitrary new bound, checking the
// logical length against it. On success it consumes the receiver; on
// failure the receiver is left intact. Use ReboundString to change the
// encoding as well.
func (b *BString[E]) Rebound(max2 int) (*BString[E], error) {
	if err := checkLen(b.EncodedLen(), max2); err != nil {
		return nil, err
	}
	buf := b.b
	b.b = nil
	return &BString[E]{b: buf, max: max2}, nil
}

// ReboundString re-checks a buffer under a new encoding E2 and bound.
// On success it consumes the argument; on failure it is left intact.
func ReboundString[E2, E Encoding](b *BString[E], max2 int) (*BString[E2], error) {
	var e2 E2
	if err := checkLen(e2.Length(bytesToString(b.b)), max2); err != nil {
		return nil, err
	}
	buf := b.b
	b.b = nil
	return &BString[E2]{b: buf, max: max2}, nil
}

// Clone returns an owned copy of the buffer.
func (b *BString[E]) Clone() *BString[E] {
	buf := make([]byte, len(b.b))
	copy(buf, b.b)
	return &BString[E]{b: buf, max: b.max}
}

// Leak consumes the buffer and returns a view of its contents with no
// owner. The receiver must not be used afterwards; because ownership is
// given up, the view is stable and no copy is made.
func (b *BString[E]) Leak() BStr[E] {
	buf := b.b
	b.b = nil
	return BStr[E]{s: bytesToString(buf), max: b.max}
}

// IntoString consumes the buffer and returns its contents as a native
// string, releasing them from the bound.
func (b *BString[E]) IntoString() string {
	buf := b.b
	b.b = nil
	return bytesToString(buf)
}

// bytesToString reinterprets b as a string without copying. The result
// must not outlive mutations of b.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
