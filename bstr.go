package maxlen

import (
	"fmt"
	"unicode/utf8"
)

// BStr is a bounded view of a native string, parameterized by the
// [Encoding] that measures it. Its invariant is
// E.Length(s) <= Max, which may differ from len(s) <= Max when the
// encoding re-encodes some characters.
//
// The zero value is an empty view with a bound of 0.
type BStr[E Encoding] struct {
	s   string
	max int
}

// Str wraps s in a bounded view, checking its length under E against
// max.
func Str[E Encoding](s string, max int) (BStr[E], error) {
	var e E
	if err := checkLen(e.Length(s), max); err != nil {
		return BStr[E]{}, err
	}
	return BStr[E]{s: s, max: max}, nil
}

// StrUnchecked wraps s in a bounded view without checking the bound.
//
// The caller is responsible for making sure the length of s under E is
// at most max; violating that breaks the container invariant.
func StrUnchecked[E Encoding](s string, max int) BStr[E] {
	return BStr[E]{s: s, max: max}
}

// Len returns the length of the viewed string in native bytes.
func (b BStr[E]) Len() int { return len(b.s) }

// EncodedLen computes the logical length of the viewed string under E.
func (b BStr[E]) EncodedLen() int {
	var e E
	return e.Length(b.s)
}

// Max returns the bound the view was constructed with.
func (b BStr[E]) Max() int { return b.max }

// IsEmpty reports whether the view is the empty string.
func (b BStr[E]) IsEmpty() bool { return b.s == "" }

// String returns the native string the view borrows.
func (b BStr[E]) String() string { return b.s }

// Sub returns the view of b.s[i:j] under the same bound. i and j are
// byte offsets and must fall on UTF-8 character boundaries; Sub panics
// otherwise. Removing characters never makes a sound encoding longer,
// so the result needs no re-validation.
func (b BStr[E]) Sub(i, j int) BStr[E] {
	sub := b.s[i:j]
	if i < len(b.s) && !utf8.RuneStart(b.s[i]) || j < len(b.s) && !utf8.RuneStart(b.s[j]) {
		panic(fmt.Sprintf("maxlen: Sub(%d, %d) not on character boundary", i, j))
	}
	return BStr[E]{s: sub, max: b.max}
}

// Widen returns the same view under a larger bound. It is total and
// free for any max2 >= Max; a smaller max2 panics. Use Rebound to
// narrow.
func (b BStr[E]) Widen(max2 int) BStr[E] {
	if max2 < b.max {
		panic(fmt.Sprintf("maxlen: Widen from %d to %d would narrow", b.max, max2))
	}
	return BStr[E]{s: b.s, max: max2}
}

// Rebound returns the same view under an arbitrary new bound, checking
// the length under E against it. Use ReboundStr to change the encoding
// as well.
func (b BStr[E]) Rebound(max2 int) (BStr[E], error) {
	return Str[E](b.s, max2)
}

// ReboundStr re-checks a view under a new encoding E2 and bound,
// recomputing the logical length from scratch.
func ReboundStr[E2, E Encoding](b BStr[E], max2 int) (BStr[E2], error) {
	return Str[E2](b.s, max2)
}

// Materialize clones the viewed text into an owned BString with the
// same bound.
func (b BStr[E]) Materialize() *BString[E] {
	return &BString[E]{b: []byte(b.s), max: b.max}
}
